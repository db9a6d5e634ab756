package http

import (
	"time"

	"collab-srv/internal/model"
	"collab-srv/internal/search"
)

// =====================================================
// Request DTOs
// =====================================================

type paginationReq struct {
	Page int `json:"page,omitempty"`
	Size int `json:"size,omitempty"`
}

type sortReq struct {
	Field string `json:"field" binding:"required"`
	Order string `json:"order,omitempty"`
}

type dateRangeReq struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

type ratingRangeReq struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

type resourceFiltersReq struct {
	Subjects            []string        `json:"subjects,omitempty"`
	GradeLevels         []string        `json:"gradeLevels,omitempty"`
	ResourceTypes       []string        `json:"resourceTypes,omitempty"`
	VerificationStatus  []string        `json:"verificationStatus,omitempty"`
	IsGovernmentContent *bool           `json:"isGovernmentContent,omitempty"`
	DateRange           *dateRangeReq   `json:"dateRange,omitempty"`
	Rating              *ratingRangeReq `json:"rating,omitempty"`
}

type userFiltersReq struct {
	Subjects           []string `json:"subjects,omitempty"`
	GradeLevels        []string `json:"gradeLevels,omitempty"`
	VerificationStatus []string `json:"verificationStatus,omitempty"`
}

type searchResourcesReq struct {
	Text       string              `json:"text"`
	Filters    *resourceFiltersReq `json:"filters,omitempty"`
	Sort       []sortReq           `json:"sort,omitempty"`
	Pagination *paginationReq      `json:"pagination,omitempty"`
}

type searchUsersReq struct {
	Text       string          `json:"text"`
	Filters    *userFiltersReq `json:"filters,omitempty"`
	Sort       []sortReq       `json:"sort,omitempty"`
	Pagination *paginationReq  `json:"pagination,omitempty"`
}

type searchCommunitiesReq struct {
	Text       string         `json:"text"`
	Sort       []sortReq      `json:"sort,omitempty"`
	Pagination *paginationReq `json:"pagination,omitempty"`
}

func (r searchResourcesReq) toInput() search.ResourceQuery {
	input := search.ResourceQuery{
		Text:       r.Text,
		Sort:       toSortFields(r.Sort),
		Pagination: toPagination(r.Pagination),
	}
	if r.Filters != nil {
		input.Filters = search.ResourceFilters{
			Subjects:            r.Filters.Subjects,
			GradeLevels:         r.Filters.GradeLevels,
			ResourceTypes:       r.Filters.ResourceTypes,
			VerificationStatus:  r.Filters.VerificationStatus,
			IsGovernmentContent: r.Filters.IsGovernmentContent,
		}
		if r.Filters.DateRange != nil {
			input.Filters.DateRange = &search.DateRange{
				From: r.Filters.DateRange.From,
				To:   r.Filters.DateRange.To,
			}
		}
		if r.Filters.Rating != nil {
			input.Filters.Rating = &search.RatingRange{
				Min: r.Filters.Rating.Min,
				Max: r.Filters.Rating.Max,
			}
		}
	}
	return input
}

func (r searchUsersReq) toInput() search.UserQuery {
	input := search.UserQuery{
		Text:       r.Text,
		Sort:       toSortFields(r.Sort),
		Pagination: toPagination(r.Pagination),
	}
	if r.Filters != nil {
		input.Filters = search.UserFilters{
			Subjects:           r.Filters.Subjects,
			GradeLevels:        r.Filters.GradeLevels,
			VerificationStatus: r.Filters.VerificationStatus,
		}
	}
	return input
}

func (r searchCommunitiesReq) toInput() search.CommunityQuery {
	return search.CommunityQuery{
		Text:       r.Text,
		Sort:       toSortFields(r.Sort),
		Pagination: toPagination(r.Pagination),
	}
}

func toSortFields(sorts []sortReq) []search.SortField {
	if len(sorts) == 0 {
		return nil
	}
	out := make([]search.SortField, 0, len(sorts))
	for _, s := range sorts {
		out = append(out, search.SortField{
			Field: s.Field,
			Desc:  s.Order != "asc",
		})
	}
	return out
}

func toPagination(p *paginationReq) *search.Pagination {
	if p == nil {
		return nil
	}
	return &search.Pagination{Page: p.Page, Size: p.Size}
}

// =====================================================
// Response DTOs
// =====================================================

type facetTermResp struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

type facetRangeResp struct {
	Name  string   `json:"name"`
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
	Count int      `json:"count"`
}

type facetResp struct {
	Field   string           `json:"field"`
	Total   int              `json:"total"`
	Missing int              `json:"missing"`
	Other   int              `json:"other"`
	Terms   []facetTermResp  `json:"terms,omitempty"`
	Ranges  []facetRangeResp `json:"ranges,omitempty"`
}

type resourceHitResp struct {
	model.Resource
	RelevanceScore float64 `json:"relevanceScore"`
}

type userHitResp struct {
	model.User
	RelevanceScore float64 `json:"relevanceScore"`
}

type communityHitResp struct {
	model.Community
	RelevanceScore float64 `json:"relevanceScore"`
}

type searchResourcesResp struct {
	Hits     []resourceHitResp    `json:"hits"`
	Total    uint64               `json:"total"`
	MaxScore float64              `json:"maxScore"`
	Facets   map[string]facetResp `json:"facets,omitempty"`
}

type searchUsersResp struct {
	Hits     []userHitResp        `json:"hits"`
	Total    uint64               `json:"total"`
	MaxScore float64              `json:"maxScore"`
	Facets   map[string]facetResp `json:"facets,omitempty"`
}

type searchCommunitiesResp struct {
	Hits     []communityHitResp   `json:"hits"`
	Total    uint64               `json:"total"`
	MaxScore float64              `json:"maxScore"`
	Facets   map[string]facetResp `json:"facets,omitempty"`
}

func (h *handler) newSearchResourcesResp(output search.ResourceResult) searchResourcesResp {
	resp := searchResourcesResp{
		Hits:     make([]resourceHitResp, len(output.Hits)),
		Total:    output.Total,
		MaxScore: output.MaxScore,
		Facets:   toFacetResps(output.Facets),
	}
	for i, hit := range output.Hits {
		resp.Hits[i] = resourceHitResp{Resource: hit.Resource, RelevanceScore: hit.RelevanceScore}
	}
	return resp
}

func (h *handler) newSearchUsersResp(output search.UserResult) searchUsersResp {
	resp := searchUsersResp{
		Hits:     make([]userHitResp, len(output.Hits)),
		Total:    output.Total,
		MaxScore: output.MaxScore,
		Facets:   toFacetResps(output.Facets),
	}
	for i, hit := range output.Hits {
		resp.Hits[i] = userHitResp{User: hit.User, RelevanceScore: hit.RelevanceScore}
	}
	return resp
}

func (h *handler) newSearchCommunitiesResp(output search.CommunityResult) searchCommunitiesResp {
	resp := searchCommunitiesResp{
		Hits:     make([]communityHitResp, len(output.Hits)),
		Total:    output.Total,
		MaxScore: output.MaxScore,
		Facets:   toFacetResps(output.Facets),
	}
	for i, hit := range output.Hits {
		resp.Hits[i] = communityHitResp{Community: hit.Community, RelevanceScore: hit.RelevanceScore}
	}
	return resp
}

func toFacetResps(facets map[string]search.Facet) map[string]facetResp {
	if len(facets) == 0 {
		return nil
	}
	out := make(map[string]facetResp, len(facets))
	for name, f := range facets {
		fr := facetResp{
			Field:   f.Field,
			Total:   f.Total,
			Missing: f.Missing,
			Other:   f.Other,
		}
		for _, t := range f.Terms {
			fr.Terms = append(fr.Terms, facetTermResp{Term: t.Term, Count: t.Count})
		}
		for _, r := range f.Ranges {
			fr.Ranges = append(fr.Ranges, facetRangeResp{Name: r.Name, Min: r.Min, Max: r.Max, Count: r.Count})
		}
		out[name] = fr
	}
	return out
}
