package http

import (
	"github.com/gin-gonic/gin"

	"collab-srv/internal/indexing"
	"collab-srv/internal/middleware"
	"collab-srv/pkg/log"
)

// Handler - Interface for the indexing HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc indexing.UseCase
}

// New - Factory
func New(l log.Logger, uc indexing.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
