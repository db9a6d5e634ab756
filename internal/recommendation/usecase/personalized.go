package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"collab-srv/internal/model"
	"collab-srv/internal/recommendation"
	"collab-srv/internal/search"
)

// Blend weights: 60% of the requested budget comes from the
// content-based query, 40% from the collaborative-style query.
const (
	contentShare = 0.6
	collabShare  = 0.4
)

// GetPersonalizedRecommendations blends a content-based and a
// collaborative-style resource query into one ranked, deduplicated
// list. Sub-queries run concurrently and fail fast: one failure fails
// the whole operation rather than degrading to a partial blend.
func (uc *implUseCase) GetPersonalizedRecommendations(ctx context.Context, profile recommendation.TeacherProfile, limit int) ([]recommendation.PersonalizedRecommendation, error) {
	limit = clampLimit(limit)

	var contentHits, collabHits []search.ResourceHit

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := uc.searchUC.SearchResources(gctx, contentQuery(profile, limit))
		if err != nil {
			return err
		}
		contentHits = out.Hits
		return nil
	})
	g.Go(func() error {
		out, err := uc.searchUC.SearchResources(gctx, collabQuery(profile, limit))
		if err != nil {
			return err
		}
		collabHits = out.Hits
		return nil
	})
	// Similar-users lookup. The result does not influence the
	// collaborative filter yet; the query is kept so profiles stay on
	// the hot path and the blend can start consuming it later.
	g.Go(func() error {
		_, err := uc.searchUC.SearchUsers(gctx, similarUsersQuery(profile))
		return err
	})

	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "recommendation.usecase.GetPersonalizedRecommendations: %v", err)
		return nil, fmt.Errorf("%w: %v", recommendation.ErrQueryFailed, err)
	}

	recs := make([]recommendation.PersonalizedRecommendation, 0, len(contentHits)+len(collabHits))
	for _, hit := range contentHits {
		rec := toRecommendation(hit.Resource)
		rec.RelevanceScore = uc.contentScore(profile, hit.Resource)
		rec.RecommendationReason = recommendation.ReasonContentBased
		recs = append(recs, rec)
	}
	for _, hit := range collabHits {
		rec := toRecommendation(hit.Resource)
		rec.RelevanceScore = uc.collabScore(hit.Resource)
		rec.RecommendationReason = recommendation.ReasonCollaborative
		recs = append(recs, rec)
	}

	recs = dedupeKeepFirst(recs)
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].RelevanceScore > recs[j].RelevanceScore
	})
	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

func contentQuery(profile recommendation.TeacherProfile, limit int) search.ResourceQuery {
	return search.ResourceQuery{
		Text: strings.Join(profile.Subjects, " "),
		Filters: search.ResourceFilters{
			Subjects:           profile.Subjects,
			GradeLevels:        profile.GradeLevels,
			VerificationStatus: []string{model.VerificationVerified},
		},
		Sort: []search.SortField{
			{Field: "rating", Desc: true},
			{Field: "downloadCount", Desc: true},
		},
		Pagination: &search.Pagination{Page: 1, Size: shareOf(limit, contentShare)},
	}
}

func collabQuery(profile recommendation.TeacherProfile, limit int) search.ResourceQuery {
	return search.ResourceQuery{
		Filters: search.ResourceFilters{
			Subjects:           profile.Subjects,
			VerificationStatus: []string{model.VerificationVerified},
		},
		Sort: []search.SortField{
			{Field: "rating", Desc: true},
			{Field: "downloadCount", Desc: true},
		},
		Pagination: &search.Pagination{Page: 1, Size: shareOf(limit, collabShare)},
	}
}

func similarUsersQuery(profile recommendation.TeacherProfile) search.UserQuery {
	return search.UserQuery{
		Filters: search.UserFilters{
			Subjects: profile.Subjects,
		},
		Pagination: &search.Pagination{Page: 1, Size: recommendation.DefaultLimit},
	}
}

// contentScore weights subject overlap, grade overlap, rating and
// download volume into [0,1].
func (uc *implUseCase) contentScore(profile recommendation.TeacherProfile, r model.Resource) float64 {
	subjectOverlap := overlapRatio(profile.Subjects, r.Subjects)
	gradeOverlap := overlapRatio(profile.GradeLevels, r.GradeLevels)
	rating := r.Rating / 5
	downloads := math.Min(float64(r.DownloadCount)/1000, 1)
	return 0.4*subjectOverlap + 0.3*gradeOverlap + 0.2*rating + 0.1*downloads
}

// collabScore weights rating, download volume and recency into [0,1].
func (uc *implUseCase) collabScore(r model.Resource) float64 {
	rating := r.Rating / 5
	downloads := math.Min(float64(r.DownloadCount)/500, 1)
	recency := math.Max(0, 1-daysSince(r.CreatedAt, uc.now())/365)
	return 0.5*rating + 0.3*downloads + 0.2*recency
}

// overlapRatio is |profile ∩ candidate| / max(|profile|, 1), counting
// distinct matches.
func overlapRatio(profile, candidate []string) float64 {
	if len(profile) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(profile))
	for _, v := range profile {
		set[v] = struct{}{}
	}

	matched := make(map[string]struct{})
	for _, v := range candidate {
		if _, ok := set[v]; ok {
			matched[v] = struct{}{}
		}
	}
	return float64(len(matched)) / float64(len(profile))
}

// dedupeKeepFirst drops repeated resource ids, keeping the first
// occurrence. Content-based results precede collaborative ones, so
// their score and reason win ties.
func dedupeKeepFirst(recs []recommendation.PersonalizedRecommendation) []recommendation.PersonalizedRecommendation {
	seen := make(map[string]struct{}, len(recs))
	out := recs[:0]
	for _, rec := range recs {
		if _, ok := seen[rec.ResourceID]; ok {
			continue
		}
		seen[rec.ResourceID] = struct{}{}
		out = append(out, rec)
	}
	return out
}

func toRecommendation(r model.Resource) recommendation.PersonalizedRecommendation {
	return recommendation.PersonalizedRecommendation{
		ResourceID:    r.ID,
		Title:         r.Title,
		Description:   r.Description,
		Type:          r.Type,
		Subjects:      r.Subjects,
		GradeLevels:   r.GradeLevels,
		Author:        r.Author,
		Rating:        r.Rating,
		DownloadCount: r.DownloadCount,
		CreatedAt:     r.CreatedAt,
	}
}

func shareOf(limit int, share float64) int {
	return int(math.Ceil(share * float64(limit)))
}

// clampLimit normalizes a requested result count into [1, MaxLimit].
func clampLimit(limit int) int {
	if limit <= 0 {
		return recommendation.DefaultLimit
	}
	if limit > recommendation.MaxLimit {
		return recommendation.MaxLimit
	}
	return limit
}
