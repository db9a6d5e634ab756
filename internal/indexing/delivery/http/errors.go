package http

import (
	"errors"

	"collab-srv/internal/indexing"
	pkgErrors "collab-srv/pkg/errors"
)

var (
	errWrongBody = pkgErrors.NewHTTPError(
		400, "Wrong body",
	)
	errMissingID = pkgErrors.NewHTTPError(
		400, "Missing document id",
	)
	errWriteFailed = pkgErrors.NewHTTPError(
		500, "Index write failed",
	)
	errDeleteFailed = pkgErrors.NewHTTPError(
		500, "Index delete failed",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, indexing.ErrMissingID):
		return errMissingID
	case errors.Is(err, indexing.ErrWriteFailed):
		return errWriteFailed
	case errors.Is(err, indexing.ErrDeleteFailed):
		return errDeleteFailed
	default:
		panic(err)
	}
}
