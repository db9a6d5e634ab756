package http

import (
	"github.com/gin-gonic/gin"

	"collab-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/search")
	{
		api.POST("/resources", h.SearchResources)
		api.POST("/users", h.SearchUsers)
		api.POST("/communities", h.SearchCommunities)

		api.PUT("/indexes/:name", h.EnsureIndex)
		api.DELETE("/indexes/:name", h.RemoveIndex)
	}
}
