package searchdb

import (
	"sync"

	"github.com/blevesearch/bleve/v2"

	"collab-srv/pkg/log"
)

// Config holds search index configuration.
type Config struct {
	// RootPath is the directory under which each logical index
	// gets its own sub-directory.
	RootPath string
}

// searchDBImpl implements ISearchDB using bleve.
type searchDBImpl struct {
	mu        sync.RWMutex
	rootPath  string
	indexes   map[string]bleve.Index
	connected bool
	l         log.Logger
}
