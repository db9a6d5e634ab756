package http

import (
	"github.com/gin-gonic/gin"

	"collab-srv/internal/middleware"
	"collab-srv/internal/search"
	"collab-srv/pkg/log"
)

// Handler - Interface for the search HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc search.UseCase
}

// New - Factory
func New(l log.Logger, uc search.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
