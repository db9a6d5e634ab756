package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"collab-srv/internal/model"
	"collab-srv/internal/recommendation"
	"collab-srv/internal/search"
)

// GetTrendingContent ranks recently created, verified resources by
// trendingScore + growthRate. The candidate query over-fetches 2x the
// limit so the re-rank has room to reorder.
func (uc *implUseCase) GetTrendingContent(ctx context.Context, subjects []string, limit int) ([]recommendation.TrendingContent, error) {
	limit = clampLimit(limit)

	now := uc.now()
	windowStart := now.AddDate(0, 0, -recommendation.TrendingWindowDays)

	out, err := uc.searchUC.SearchResources(ctx, trendingQuery(subjects, windowStart, limit))
	if err != nil {
		uc.l.Errorf(ctx, "recommendation.usecase.GetTrendingContent: %v", err)
		return nil, fmt.Errorf("%w: %v", recommendation.ErrQueryFailed, err)
	}

	trending := make([]recommendation.TrendingContent, 0, len(out.Hits))
	for _, hit := range out.Hits {
		r := hit.Resource
		trending = append(trending, recommendation.TrendingContent{
			ResourceID:    r.ID,
			Title:         r.Title,
			Description:   r.Description,
			Type:          r.Type,
			Subjects:      r.Subjects,
			GradeLevels:   r.GradeLevels,
			DownloadCount: r.DownloadCount,
			Rating:        r.Rating,
			TrendingScore: hit.RelevanceScore,
			GrowthRate:    growthRate(r, now),
			CreatedAt:     r.CreatedAt,
		})
	}

	sort.SliceStable(trending, func(i, j int) bool {
		return trending[i].TrendingScore+trending[i].GrowthRate >
			trending[j].TrendingScore+trending[j].GrowthRate
	})
	if len(trending) > limit {
		trending = trending[:limit]
	}
	return trending, nil
}

func trendingQuery(subjects []string, windowStart time.Time, limit int) search.ResourceQuery {
	return search.ResourceQuery{
		Filters: search.ResourceFilters{
			Subjects:           subjects,
			VerificationStatus: []string{model.VerificationVerified},
			DateRange:          &search.DateRange{From: &windowStart},
		},
		Sort: []search.SortField{
			{Field: "downloadCount", Desc: true},
			{Field: "rating", Desc: true},
			{Field: "relevanceScore", Desc: true},
		},
		Pagination: &search.Pagination{Page: 1, Size: 2 * limit},
	}
}

// growthRate normalizes downloads-per-day into [0,1]. The age divisor
// floors at one day so sub-day resources do not explode the rate.
func growthRate(r model.Resource, now time.Time) float64 {
	perDay := float64(r.DownloadCount) / math.Max(1, daysSince(r.CreatedAt, now))
	return math.Min(perDay/10, 1)
}

// daysSince returns the fractional days between t and now, clamped at
// zero for timestamps in the future.
func daysSince(t time.Time, now time.Time) float64 {
	days := now.Sub(t).Hours() / 24
	if days < 0 {
		return 0
	}
	return days
}
