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
	"collab-srv/internal/model"
	"collab-srv/internal/search"
	"collab-srv/pkg/log"
	"collab-srv/pkg/response"
)

type fakeSearchUC struct {
	search.UseCase

	resourceResult search.ResourceResult
	resourceErr    error
	lastQuery      search.ResourceQuery

	ensured []string
	removed []string
	idxErr  error
}

func (f *fakeSearchUC) SearchResources(_ context.Context, in search.ResourceQuery) (search.ResourceResult, error) {
	f.lastQuery = in
	return f.resourceResult, f.resourceErr
}

func (f *fakeSearchUC) EnsureIndex(_ context.Context, name string) error {
	if f.idxErr != nil {
		return f.idxErr
	}
	f.ensured = append(f.ensured, name)
	return nil
}

func (f *fakeSearchUC) RemoveIndex(_ context.Context, name string) error {
	if f.idxErr != nil {
		return f.idxErr
	}
	f.removed = append(f.removed, name)
	return nil
}

func newTestRouter(uc search.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)

	l := log.NewNoop()
	r := gin.New()
	r.Use(middleware.Recovery(l))
	New(l, uc).RegisterRoutes(&r.RouterGroup, middleware.New(l))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSearchResourcesHandler(t *testing.T) {
	t.Run("returns hits in the standard envelope", func(t *testing.T) {
		uc := &fakeSearchUC{
			resourceResult: search.ResourceResult{
				Hits: []search.ResourceHit{
					{
						Resource:       model.Resource{ID: "res-1", Title: "Fractions Workbook"},
						RelevanceScore: 1.5,
					},
				},
				Total:    1,
				MaxScore: 1.5,
			},
		}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/api/v1/search/resources", map[string]any{
			"text": "fractions",
			"filters": map[string]any{
				"subjects": []string{"math"},
			},
			"pagination": map[string]any{"page": 2, "size": 5},
		})

		require.Equal(t, http.StatusOK, w.Code)

		var resp response.Resp
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 0, resp.ErrorCode)

		data, err := json.Marshal(resp.Data)
		require.NoError(t, err)
		var out searchResourcesResp
		require.NoError(t, json.Unmarshal(data, &out))
		require.Len(t, out.Hits, 1)
		assert.Equal(t, "res-1", out.Hits[0].ID)
		assert.Equal(t, 1.5, out.Hits[0].RelevanceScore)

		// request DTO mapped through to the domain query
		assert.Equal(t, "fractions", uc.lastQuery.Text)
		assert.Equal(t, []string{"math"}, uc.lastQuery.Filters.Subjects)
		require.NotNil(t, uc.lastQuery.Pagination)
		assert.Equal(t, 2, uc.lastQuery.Pagination.Page)
	})

	t.Run("sort order defaults to descending", func(t *testing.T) {
		uc := &fakeSearchUC{}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/api/v1/search/resources", map[string]any{
			"sort": []map[string]any{
				{"field": "rating"},
				{"field": "title", "order": "asc"},
			},
		})

		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, uc.lastQuery.Sort, 2)
		assert.True(t, uc.lastQuery.Sort[0].Desc)
		assert.False(t, uc.lastQuery.Sort[1].Desc)
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		r := newTestRouter(&fakeSearchUC{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/search/resources",
			bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("backend failure is a 500", func(t *testing.T) {
		uc := &fakeSearchUC{resourceErr: search.ErrSearchBackend}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPost, "/api/v1/search/resources", map[string]any{"text": "x"})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestIndexLifecycleHandlers(t *testing.T) {
	t.Run("ensure and remove route by name", func(t *testing.T) {
		uc := &fakeSearchUC{}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPut, "/api/v1/search/indexes/resources", nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, r, http.MethodDelete, "/api/v1/search/indexes/users", nil)
		require.Equal(t, http.StatusOK, w.Code)

		assert.Equal(t, []string{"resources"}, uc.ensured)
		assert.Equal(t, []string{"users"}, uc.removed)
	})

	t.Run("unknown index name is a 400", func(t *testing.T) {
		uc := &fakeSearchUC{idxErr: search.ErrUnknownIndex}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPut, "/api/v1/search/indexes/bogus", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
