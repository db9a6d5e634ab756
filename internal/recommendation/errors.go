package recommendation

import "errors"

// Domain errors
var (
	// ErrQueryFailed - a constituent resource query failed; the whole
	// operation fails rather than returning a partial blend
	ErrQueryFailed = errors.New("recommendation: resource query failed")

	// ErrInvalidProfile - the profile is missing its user id
	ErrInvalidProfile = errors.New("recommendation: invalid profile")
)
