package http

import (
	"github.com/gin-gonic/gin"

	"collab-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/index")
	{
		api.PUT("/resources", h.UpsertResource)
		api.PUT("/users", h.UpsertUser)
		api.PUT("/communities", h.UpsertCommunity)

		api.DELETE("/resources/:id", h.DeleteResource)
		api.DELETE("/users/:id", h.DeleteUser)
		api.DELETE("/communities/:id", h.DeleteCommunity)
	}
}
