package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collab-srv/internal/middleware"
	"collab-srv/internal/recommendation"
	"collab-srv/pkg/log"
	"collab-srv/pkg/response"
)

type fakeRecommendationUC struct {
	personalized    []recommendation.PersonalizedRecommendation
	personalizedErr error
	lastProfile     recommendation.TeacherProfile
	lastLimit       int

	trending    []recommendation.TrendingContent
	trendingErr error

	interactions []recommendation.InteractionInput
	explanation  string
}

func (f *fakeRecommendationUC) GetPersonalizedRecommendations(_ context.Context, profile recommendation.TeacherProfile, limit int) ([]recommendation.PersonalizedRecommendation, error) {
	f.lastProfile = profile
	f.lastLimit = limit
	return f.personalized, f.personalizedErr
}

func (f *fakeRecommendationUC) GetTrendingContent(_ context.Context, subjects []string, limit int) ([]recommendation.TrendingContent, error) {
	return f.trending, f.trendingErr
}

func (f *fakeRecommendationUC) UpdateUserInteraction(_ context.Context, input recommendation.InteractionInput) {
	f.interactions = append(f.interactions, input)
}

func (f *fakeRecommendationUC) GetRecommendationExplanation(context.Context, string, string) string {
	return f.explanation
}

func newTestRouter(uc recommendation.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)

	l := log.NewNoop()
	r := gin.New()
	r.Use(middleware.Recovery(l))
	New(l, uc).RegisterRoutes(&r.RouterGroup, middleware.New(l))
	return r
}

func TestGetPersonalizedHandler(t *testing.T) {
	t.Run("query parameters map to the profile", func(t *testing.T) {
		uc := &fakeRecommendationUC{
			personalized: []recommendation.PersonalizedRecommendation{
				{ResourceID: "res-1", Title: "Fractions Workbook", RelevanceScore: 0.8},
			},
		}
		r := newTestRouter(uc)

		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/recommendations/personalized?userId=user-1&subjects=math&subjects=physics&limit=5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-1", uc.lastProfile.UserID)
		assert.Equal(t, []string{"math", "physics"}, uc.lastProfile.Subjects)
		assert.Equal(t, 5, uc.lastLimit)

		var resp response.Resp
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data, err := json.Marshal(resp.Data)
		require.NoError(t, err)
		var out personalizedResp
		require.NoError(t, json.Unmarshal(data, &out))
		require.Len(t, out.Recommendations, 1)
		assert.Equal(t, "res-1", out.Recommendations[0].ResourceID)
	})

	t.Run("missing userId is a 400", func(t *testing.T) {
		r := newTestRouter(&fakeRecommendationUC{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations/personalized", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("usecase failure is a 500", func(t *testing.T) {
		r := newTestRouter(&fakeRecommendationUC{personalizedErr: recommendation.ErrQueryFailed})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations/personalized?userId=user-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGetTrendingHandler(t *testing.T) {
	uc := &fakeRecommendationUC{
		trending: []recommendation.TrendingContent{
			{ResourceID: "res-1", TrendingScore: 0.9, GrowthRate: 0.4},
		},
	}
	r := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations/trending?subjects=math", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var out trendingResp
	require.NoError(t, json.Unmarshal(data, &out))
	require.Len(t, out.Trending, 1)
	assert.Equal(t, 0.9, out.Trending[0].TrendingScore)
}

func TestGetExplanationHandler(t *testing.T) {
	uc := &fakeRecommendationUC{explanation: "Matches your subjects."}
	r := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations/res-1/explanation?userId=user-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Matches your subjects.")
}

func TestRecordInteractionHandler(t *testing.T) {
	t.Run("valid interaction is recorded", func(t *testing.T) {
		uc := &fakeRecommendationUC{}
		r := newTestRouter(uc)

		body, _ := json.Marshal(map[string]any{
			"userId":     "user-1",
			"resourceId": "res-1",
			"action":     "download",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/interactions", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, uc.interactions, 1)
		assert.Equal(t, "download", uc.interactions[0].Action)
	})

	t.Run("missing required fields is a 400", func(t *testing.T) {
		r := newTestRouter(&fakeRecommendationUC{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/interactions",
			bytes.NewBufferString(`{"userId":"user-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
