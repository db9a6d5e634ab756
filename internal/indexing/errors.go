package indexing

import "errors"

// Domain errors
var (
	// ErrMissingID - the document or delete request has no id
	ErrMissingID = errors.New("indexing: missing document id")

	// ErrWriteFailed - the search index rejected the write
	ErrWriteFailed = errors.New("indexing: write failed")

	// ErrDeleteFailed - the search index rejected the delete
	ErrDeleteFailed = errors.New("indexing: delete failed")
)
