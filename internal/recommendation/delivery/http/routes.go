package http

import (
	"github.com/gin-gonic/gin"

	"collab-srv/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	{
		api.GET("/recommendations/personalized", h.GetPersonalized)
		api.GET("/recommendations/trending", h.GetTrending)
		api.GET("/recommendations/:resourceId/explanation", h.GetExplanation)
		api.POST("/interactions", h.RecordInteraction)
	}
}
