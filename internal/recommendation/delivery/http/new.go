package http

import (
	"github.com/gin-gonic/gin"

	"collab-srv/internal/middleware"
	"collab-srv/internal/recommendation"
	"collab-srv/pkg/log"
)

// Handler - Interface for the recommendation HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc recommendation.UseCase
}

// New - Factory
func New(l log.Logger, uc recommendation.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
