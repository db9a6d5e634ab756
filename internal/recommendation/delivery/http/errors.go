package http

import (
	"errors"

	"collab-srv/internal/recommendation"
	pkgErrors "collab-srv/pkg/errors"
)

var (
	errWrongQuery = pkgErrors.NewHTTPError(
		400, "Wrong query",
	)
	errWrongBody = pkgErrors.NewHTTPError(
		400, "Wrong body",
	)
	errRecommendationFailed = pkgErrors.NewHTTPError(
		500, "Recommendation failed",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, recommendation.ErrInvalidProfile):
		return errWrongQuery
	case errors.Is(err, recommendation.ErrQueryFailed):
		return errRecommendationFailed
	default:
		panic(err)
	}
}
