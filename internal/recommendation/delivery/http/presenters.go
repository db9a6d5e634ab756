package http

import (
	"time"

	"collab-srv/internal/model"
	"collab-srv/internal/recommendation"
)

// =====================================================
// Request DTOs
// =====================================================

type personalizedReq struct {
	UserID      string   `form:"userId" binding:"required"`
	Subjects    []string `form:"subjects"`
	GradeLevels []string `form:"gradeLevels"`
	Limit       int      `form:"limit"`
}

type trendingReq struct {
	Subjects []string `form:"subjects"`
	Limit    int      `form:"limit"`
}

type interactionReq struct {
	UserID     string            `json:"userId" binding:"required"`
	ResourceID string            `json:"resourceId" binding:"required"`
	Action     string            `json:"action" binding:"required"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

func (r personalizedReq) toProfile() recommendation.TeacherProfile {
	return recommendation.TeacherProfile{
		UserID:      r.UserID,
		Subjects:    r.Subjects,
		GradeLevels: r.GradeLevels,
	}
}

func (r interactionReq) toInput() recommendation.InteractionInput {
	return recommendation.InteractionInput{
		UserID:     r.UserID,
		ResourceID: r.ResourceID,
		Action:     r.Action,
		Metadata:   r.Metadata,
	}
}

// =====================================================
// Response DTOs
// =====================================================

type recommendationResp struct {
	ResourceID           string               `json:"resourceId"`
	Title                string               `json:"title"`
	Description          string               `json:"description"`
	Type                 string               `json:"type"`
	Subjects             []string             `json:"subjects"`
	GradeLevels          []string             `json:"gradeLevels"`
	Author               model.ResourceAuthor `json:"author"`
	Rating               float64              `json:"rating"`
	DownloadCount        int                  `json:"downloadCount"`
	RelevanceScore       float64              `json:"relevanceScore"`
	RecommendationReason string               `json:"recommendationReason"`
	CreatedAt            time.Time            `json:"createdAt"`
}

type personalizedResp struct {
	Recommendations []recommendationResp `json:"recommendations"`
}

type trendingItemResp struct {
	ResourceID    string    `json:"resourceId"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Type          string    `json:"type"`
	Subjects      []string  `json:"subjects"`
	GradeLevels   []string  `json:"gradeLevels"`
	DownloadCount int       `json:"downloadCount"`
	Rating        float64   `json:"rating"`
	TrendingScore float64   `json:"trendingScore"`
	GrowthRate    float64   `json:"growthRate"`
	CreatedAt     time.Time `json:"createdAt"`
}

type trendingResp struct {
	Trending []trendingItemResp `json:"trending"`
}

type explanationResp struct {
	Explanation string `json:"explanation"`
}

func (h *handler) newPersonalizedResp(recs []recommendation.PersonalizedRecommendation) personalizedResp {
	resp := personalizedResp{
		Recommendations: make([]recommendationResp, len(recs)),
	}
	for i, rec := range recs {
		resp.Recommendations[i] = recommendationResp{
			ResourceID:           rec.ResourceID,
			Title:                rec.Title,
			Description:          rec.Description,
			Type:                 rec.Type,
			Subjects:             rec.Subjects,
			GradeLevels:          rec.GradeLevels,
			Author:               rec.Author,
			Rating:               rec.Rating,
			DownloadCount:        rec.DownloadCount,
			RelevanceScore:       rec.RelevanceScore,
			RecommendationReason: rec.RecommendationReason,
			CreatedAt:            rec.CreatedAt,
		}
	}
	return resp
}

func (h *handler) newTrendingResp(trending []recommendation.TrendingContent) trendingResp {
	resp := trendingResp{
		Trending: make([]trendingItemResp, len(trending)),
	}
	for i, t := range trending {
		resp.Trending[i] = trendingItemResp{
			ResourceID:    t.ResourceID,
			Title:         t.Title,
			Description:   t.Description,
			Type:          t.Type,
			Subjects:      t.Subjects,
			GradeLevels:   t.GradeLevels,
			DownloadCount: t.DownloadCount,
			Rating:        t.Rating,
			TrendingScore: t.TrendingScore,
			GrowthRate:    t.GrowthRate,
			CreatedAt:     t.CreatedAt,
		}
	}
	return resp
}
