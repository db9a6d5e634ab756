package usecase

import (
	"context"
	"fmt"

	"github.com/blevesearch/bleve/v2"
	bsearch "github.com/blevesearch/bleve/v2/search"

	"collab-srv/internal/search"
	"collab-srv/pkg/searchdb"
)

// SearchResources executes a resource search and normalizes the raw
// backend response. Backend failures propagate unchanged wrapped in
// ErrSearchBackend; there are no retries at this layer.
func (uc *implUseCase) SearchResources(ctx context.Context, input search.ResourceQuery) (search.ResourceResult, error) {
	raw, err := uc.execute(ctx, searchdb.IndexResources, buildResourceQuery(input))
	if err != nil {
		return search.ResourceResult{}, err
	}

	out := search.ResourceResult{
		Hits:     make([]search.ResourceHit, 0, len(raw.Hits)),
		Total:    raw.Total,
		MaxScore: raw.MaxScore,
		Facets:   decodeFacets(raw),
	}
	for _, hit := range raw.Hits {
		out.Hits = append(out.Hits, decodeResourceHit(hit))
	}
	return out, nil
}

// SearchUsers executes a user search.
func (uc *implUseCase) SearchUsers(ctx context.Context, input search.UserQuery) (search.UserResult, error) {
	raw, err := uc.execute(ctx, searchdb.IndexUsers, buildUserQuery(input))
	if err != nil {
		return search.UserResult{}, err
	}

	out := search.UserResult{
		Hits:     make([]search.UserHit, 0, len(raw.Hits)),
		Total:    raw.Total,
		MaxScore: raw.MaxScore,
		Facets:   decodeFacets(raw),
	}
	for _, hit := range raw.Hits {
		out.Hits = append(out.Hits, decodeUserHit(hit))
	}
	return out, nil
}

// SearchCommunities executes a community search.
func (uc *implUseCase) SearchCommunities(ctx context.Context, input search.CommunityQuery) (search.CommunityResult, error) {
	raw, err := uc.execute(ctx, searchdb.IndexCommunities, buildCommunityQuery(input))
	if err != nil {
		return search.CommunityResult{}, err
	}

	out := search.CommunityResult{
		Hits:     make([]search.CommunityHit, 0, len(raw.Hits)),
		Total:    raw.Total,
		MaxScore: raw.MaxScore,
		Facets:   decodeFacets(raw),
	}
	for _, hit := range raw.Hits {
		out.Hits = append(out.Hits, decodeCommunityHit(hit))
	}
	return out, nil
}

func (uc *implUseCase) execute(ctx context.Context, index string, req *bleve.SearchRequest) (*bleve.SearchResult, error) {
	raw, err := uc.searchDB.Search(ctx, index, req)
	if err != nil {
		uc.l.Errorf(ctx, "search.usecase.execute(%s): %v", index, err)
		return nil, fmt.Errorf("%w: %v", search.ErrSearchBackend, err)
	}
	return raw, nil
}

// decodeFacets passes backend facet data through into the domain shape.
func decodeFacets(raw *bleve.SearchResult) map[string]search.Facet {
	if len(raw.Facets) == 0 {
		return nil
	}

	out := make(map[string]search.Facet, len(raw.Facets))
	for name, fr := range raw.Facets {
		out[name] = decodeFacet(fr)
	}
	return out
}

func decodeFacet(fr *bsearch.FacetResult) search.Facet {
	f := search.Facet{
		Field:   fr.Field,
		Total:   fr.Total,
		Missing: fr.Missing,
		Other:   fr.Other,
	}
	for _, term := range fr.Terms.Terms() {
		f.Terms = append(f.Terms, search.FacetTerm{Term: term.Term, Count: term.Count})
	}
	for _, nr := range fr.NumericRanges {
		f.Ranges = append(f.Ranges, search.FacetRange{
			Name:  nr.Name,
			Min:   nr.Min,
			Max:   nr.Max,
			Count: nr.Count,
		})
	}
	return f
}
