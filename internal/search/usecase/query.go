package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"

	"collab-srv/internal/search"
	"collab-srv/pkg/paginator"
	"collab-srv/pkg/searchdb"
)

// fieldBoost pairs an index field with its text-match boost multiplier.
type fieldBoost struct {
	field string
	boost float64
}

// Per-entity text match field sets. Match semantics are "best of all
// fields": the disjunction takes the strongest single-field match
// instead of summing them.
var (
	resourceTextFields = []fieldBoost{
		{"title", 3},
		{"description", 2},
		{"tags", 2},
		{"searchText", 1},
		{"author.fullName", 1},
	}
	userTextFields = []fieldBoost{
		{"fullName", 3},
		{"bio", 2},
		{"specializations", 2},
		{"subjects", 1},
		{"schoolLocation.district", 1},
	}
	communityTextFields = []fieldBoost{
		{"name", 3},
		{"description", 2},
		{"tags", 1},
	}
)

// Default sort chains, applied when the caller supplies none.
var (
	resourceDefaultSort  = []string{"-isGovernmentContent", "-_score", "-popularity", "-createdAt"}
	userDefaultSort      = []string{"-verificationStatus", "-_score", "-activityScore", "-lastActive"}
	communityDefaultSort = []string{"-_score", "-activityLevel", "-memberCount", "-createdAt"}
)

// buildResourceQuery translates a resource SearchQuery into a backend
// request: fuzzy multi-field text match, conjunctive filters, sort,
// facets and pagination. Pure and deterministic.
func buildResourceQuery(in search.ResourceQuery) *bleve.SearchRequest {
	clauses := []query.Query{textClause(in.Text, resourceTextFields)}

	f := in.Filters
	if q := termsClause("subjects", f.Subjects); q != nil {
		clauses = append(clauses, q)
	}
	if q := termsClause("gradeLevels", f.GradeLevels); q != nil {
		clauses = append(clauses, q)
	}
	if q := termsClause("type", f.ResourceTypes); q != nil {
		clauses = append(clauses, q)
	}
	if q := termsClause("verificationStatus", f.VerificationStatus); q != nil {
		clauses = append(clauses, q)
	}
	if f.IsGovernmentContent != nil {
		q := bleve.NewBoolFieldQuery(*f.IsGovernmentContent)
		q.SetField("isGovernmentContent")
		clauses = append(clauses, q)
	}
	if f.DateRange != nil && (f.DateRange.From != nil || f.DateRange.To != nil) {
		clauses = append(clauses, dateClause("createdAt", f.DateRange))
	}
	if f.Rating != nil && (f.Rating.Min != nil || f.Rating.Max != nil) {
		inclusive := true
		q := bleve.NewNumericRangeInclusiveQuery(f.Rating.Min, f.Rating.Max, &inclusive, &inclusive)
		q.SetField("rating")
		clauses = append(clauses, q)
	}

	req := newRequest(clauses, in.Pagination)
	req.SortBy(sortOrder(in.Sort, resourceDefaultSort))
	req.AddFacet("subjects", bleve.NewFacetRequest("subjects", 20))
	req.AddFacet("gradeLevels", bleve.NewFacetRequest("gradeLevels", 20))
	req.AddFacet("resourceTypes", bleve.NewFacetRequest("type", 10))
	req.AddFacet("verificationStatus", bleve.NewFacetRequest("verificationStatus", 5))
	return req
}

// buildUserQuery translates a user SearchQuery. User filters are
// exact-match, so they target the keyword sub-fields.
func buildUserQuery(in search.UserQuery) *bleve.SearchRequest {
	clauses := []query.Query{textClause(in.Text, userTextFields)}

	f := in.Filters
	if q := termsClause(searchdb.FieldUserSubjectsKeyword, f.Subjects); q != nil {
		clauses = append(clauses, q)
	}
	if q := termsClause(searchdb.FieldUserGradeLevelsKeyword, f.GradeLevels); q != nil {
		clauses = append(clauses, q)
	}
	if q := termsClause("verificationStatus", f.VerificationStatus); q != nil {
		clauses = append(clauses, q)
	}

	req := newRequest(clauses, in.Pagination)
	req.SortBy(sortOrder(in.Sort, userDefaultSort))
	req.AddFacet("subjects", bleve.NewFacetRequest(searchdb.FieldUserSubjectsKeyword, 20))
	req.AddFacet("gradeLevels", bleve.NewFacetRequest(searchdb.FieldUserGradeLevelsKeyword, 20))
	req.AddFacet("districts", bleve.NewFacetRequest(searchdb.FieldUserDistrictKeyword, 50))
	req.AddFacet("verificationStatus", bleve.NewFacetRequest("verificationStatus", 5))
	return req
}

// buildCommunityQuery translates a community SearchQuery. No filters
// are defined for communities.
func buildCommunityQuery(in search.CommunityQuery) *bleve.SearchRequest {
	clauses := []query.Query{textClause(in.Text, communityTextFields)}

	req := newRequest(clauses, in.Pagination)
	req.SortBy(sortOrder(in.Sort, communityDefaultSort))
	req.AddFacet("types", bleve.NewFacetRequest("type", 10))
	req.AddFacet("memberCount", memberCountFacet())
	return req
}

// textClause builds the free-text clause: a best-of-fields disjunction
// of boosted fuzzy matches, or match-all when the text is blank so an
// empty query returns the full filtered corpus.
func textClause(text string, fields []fieldBoost) query.Query {
	text = strings.TrimSpace(text)
	if text == "" {
		return bleve.NewMatchAllQuery()
	}

	matches := make([]query.Query, 0, len(fields))
	for _, fb := range fields {
		m := bleve.NewMatchQuery(text)
		m.SetField(fb.field)
		m.SetBoost(fb.boost)
		m.SetAutoFuzziness(true)
		matches = append(matches, m)
	}
	return bleve.NewDisjunctionQuery(matches...)
}

// termsClause builds a set-membership clause (any-of) over exact terms.
// Returns nil when values is empty so no clause is emitted.
func termsClause(field string, values []string) query.Query {
	if len(values) == 0 {
		return nil
	}
	terms := make([]query.Query, 0, len(values))
	for _, v := range values {
		t := bleve.NewTermQuery(v)
		t.SetField(field)
		terms = append(terms, t)
	}
	return bleve.NewDisjunctionQuery(terms...)
}

func dateClause(field string, r *search.DateRange) query.Query {
	var from, to time.Time
	if r.From != nil {
		from = *r.From
	}
	if r.To != nil {
		to = *r.To
	}
	inclusive := true
	q := bleve.NewDateRangeInclusiveQuery(from, to, &inclusive, &inclusive)
	q.SetField(field)
	return q
}

func newRequest(clauses []query.Query, p *search.Pagination) *bleve.SearchRequest {
	pager := paginator.PaginateQuery{}
	if p != nil {
		pager.Page = p.Page
		pager.Limit = p.Size
	}
	pager.Adjust()

	var q query.Query
	if len(clauses) == 1 {
		q = clauses[0]
	} else {
		q = bleve.NewConjunctionQuery(clauses...)
	}

	req := bleve.NewSearchRequestOptions(q, pager.Limit, pager.Offset(), false)
	req.Fields = []string{"*"}
	return req
}

// sortOrder maps domain sort fields to backend sort strings, falling
// back to the entity default chain. "relevanceScore" is the backend
// match score.
func sortOrder(sorts []search.SortField, def []string) []string {
	if len(sorts) == 0 {
		return def
	}
	out := make([]string, 0, len(sorts))
	for _, s := range sorts {
		field := s.Field
		if field == "relevanceScore" {
			field = "_score"
		}
		if s.Desc {
			field = "-" + field
		}
		out = append(out, field)
	}
	return out
}

// memberCountFacet buckets communities by member count in bands of 10
// up to 100, with a final open-ended band.
func memberCountFacet() *bleve.FacetRequest {
	fr := bleve.NewFacetRequest("memberCount", 12)
	for lo := 0; lo < 100; lo += 10 {
		min := float64(lo)
		max := float64(lo + 10)
		fr.AddNumericRange(fmt.Sprintf("%d-%d", lo, lo+10), &min, &max)
	}
	open := float64(100)
	fr.AddNumericRange("100+", &open, nil)
	return fr
}
