package search

import (
	"time"

	"collab-srv/internal/model"
)

// EntityKind names the searchable entity families.
type EntityKind string

const (
	EntityResource  EntityKind = "resource"
	EntityUser      EntityKind = "user"
	EntityCommunity EntityKind = "community"
)

// Pagination - page-based windowing. Page and Size are 1-based and
// default to 1/20 when absent or non-positive.
type Pagination struct {
	Page int
	Size int
}

// SortField - one sort tie-break. Fields are index field names;
// "relevanceScore" maps to the backend match score.
type SortField struct {
	Field string
	Desc  bool
}

// DateRange - inclusive createdAt bounds. Nil means unbounded.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// RatingRange - inclusive rating bounds. Nil means unbounded.
type RatingRange struct {
	Min *float64
	Max *float64
}

// ResourceFilters - conjunctive resource filter set. Every field is
// optional; empty slices emit no clause.
type ResourceFilters struct {
	Subjects            []string
	GradeLevels         []string
	ResourceTypes       []string
	VerificationStatus  []string
	IsGovernmentContent *bool
	DateRange           *DateRange
	Rating              *RatingRange
}

// UserFilters - conjunctive user filter set.
type UserFilters struct {
	Subjects           []string
	GradeLevels        []string
	VerificationStatus []string
}

// ResourceQuery - input for resource search.
type ResourceQuery struct {
	Text       string
	Filters    ResourceFilters
	Sort       []SortField
	Pagination *Pagination
}

// UserQuery - input for user search.
type UserQuery struct {
	Text       string
	Filters    UserFilters
	Sort       []SortField
	Pagination *Pagination
}

// CommunityQuery - input for community search. Communities define no
// filters; they text-match only.
type CommunityQuery struct {
	Text       string
	Sort       []SortField
	Pagination *Pagination
}

// FacetTerm - one bucketed term count.
type FacetTerm struct {
	Term  string
	Count int
}

// FacetRange - one bucketed numeric range count.
type FacetRange struct {
	Name  string
	Min   *float64
	Max   *float64
	Count int
}

// Facet - bucketed counts for one field, computed by the backend over
// the filtered match set.
type Facet struct {
	Field   string
	Total   int
	Missing int
	Other   int
	Terms   []FacetTerm
	Ranges  []FacetRange
}

// ResourceHit - one matched resource plus its backend match score.
type ResourceHit struct {
	model.Resource
	RelevanceScore float64
}

// UserHit - one matched user plus its backend match score.
type UserHit struct {
	model.User
	RelevanceScore float64
}

// CommunityHit - one matched community plus its backend match score.
type CommunityHit struct {
	model.Community
	RelevanceScore float64
}

// ResourceResult - normalized resource search output.
type ResourceResult struct {
	Hits     []ResourceHit
	Total    uint64
	MaxScore float64
	Facets   map[string]Facet
}

// UserResult - normalized user search output.
type UserResult struct {
	Hits     []UserHit
	Total    uint64
	MaxScore float64
	Facets   map[string]Facet
}

// CommunityResult - normalized community search output.
type CommunityResult struct {
	Hits     []CommunityHit
	Total    uint64
	MaxScore float64
	Facets   map[string]Facet
}
