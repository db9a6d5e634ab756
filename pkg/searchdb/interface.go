package searchdb

import (
	"context"

	"github.com/blevesearch/bleve/v2"

	"collab-srv/pkg/log"
)

// ISearchDB aggregates all full-text index operations. It is a pure
// infrastructure wrapper: lifecycle, index management and raw document
// operations. Query construction and ranking live in the search domain.
type ISearchDB interface {
	IndexOps
	DocumentOps

	// Connect opens (creating if necessary) every registered index.
	Connect(ctx context.Context) error
	// Disconnect closes all open indexes.
	Disconnect() error
	// IsHealthy reports whether all registered indexes are open and readable.
	IsHealthy(ctx context.Context) bool
}

// IndexOps defines index lifecycle operations. Both operations are
// idempotent: creating an existing index or deleting a missing one is a
// logged no-op, never an error.
type IndexOps interface {
	CreateIndexIfAbsent(name string) error
	DeleteIndexIfPresent(name string) error
}

// DocumentOps defines raw search/write/delete operations against a named index.
type DocumentOps interface {
	Search(ctx context.Context, index string, req *bleve.SearchRequest) (*bleve.SearchResult, error)
	IndexDocument(ctx context.Context, index string, id string, doc map[string]any) error
	DeleteDocument(ctx context.Context, index string, id string) error
}

// NewSearchDB creates a new search index client rooted at cfg.RootPath.
// Indexes are not opened until Connect is called.
func NewSearchDB(cfg Config, l log.Logger) (ISearchDB, error) {
	if cfg.RootPath == "" {
		return nil, ErrRootPathRequired
	}
	return &searchDBImpl{
		rootPath: cfg.RootPath,
		indexes:  make(map[string]bleve.Index),
		l:        l,
	}, nil
}
