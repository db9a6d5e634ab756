package repository

import "errors"

var (
	// ErrAppendFailed - the interaction could not be recorded
	ErrAppendFailed = errors.New("interaction repository: append failed")

	// ErrReadFailed - the interaction log could not be read
	ErrReadFailed = errors.New("interaction repository: read failed")
)
