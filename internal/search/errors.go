package search

import "errors"

// Domain errors
var (
	// ErrSearchBackend - the index backend rejected a search request
	ErrSearchBackend = errors.New("search: backend search failed")

	// ErrIndexWrite - the index backend rejected a document write
	ErrIndexWrite = errors.New("search: index write failed")

	// ErrIndexDelete - the index backend rejected a document delete
	ErrIndexDelete = errors.New("search: index delete failed")

	// ErrUnknownIndex - the named index is not one of the registered indexes
	ErrUnknownIndex = errors.New("search: unknown index")

	// ErrInvalidDocument - the document is missing its id
	ErrInvalidDocument = errors.New("search: invalid document")
)
