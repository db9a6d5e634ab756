package http

import (
	"errors"

	"collab-srv/internal/search"
	pkgErrors "collab-srv/pkg/errors"
)

var (
	errWrongBody = pkgErrors.NewHTTPError(
		400, "Wrong body",
	)
	errUnknownIndex = pkgErrors.NewHTTPError(
		400, "Unknown index",
	)
	errSearchFailed = pkgErrors.NewHTTPError(
		500, "Search failed",
	)
	errIndexWriteFailed = pkgErrors.NewHTTPError(
		500, "Index write failed",
	)
	errIndexDeleteFailed = pkgErrors.NewHTTPError(
		500, "Index delete failed",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, search.ErrUnknownIndex):
		return errUnknownIndex
	case errors.Is(err, search.ErrInvalidDocument):
		return errWrongBody
	case errors.Is(err, search.ErrSearchBackend):
		return errSearchFailed
	case errors.Is(err, search.ErrIndexWrite):
		return errIndexWriteFailed
	case errors.Is(err, search.ErrIndexDelete):
		return errIndexDeleteFailed
	default:
		panic(err)
	}
}
