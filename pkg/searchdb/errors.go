package searchdb

import "errors"

var (
	// ErrRootPathRequired - configuration is missing the index root path.
	ErrRootPathRequired = errors.New("searchdb: root path is required")

	// ErrConnectFailed - an index could not be opened or created.
	ErrConnectFailed = errors.New("searchdb: connect failed")

	// ErrNotConnected - an operation was attempted before Connect succeeded.
	// This is a programmer-usage error, not a transient condition.
	ErrNotConnected = errors.New("searchdb: not connected")

	// ErrIndexNotFound - the named index is not registered.
	ErrIndexNotFound = errors.New("searchdb: index not found")
)
