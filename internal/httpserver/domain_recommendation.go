package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"collab-srv/internal/middleware"
	recommendationHTTP "collab-srv/internal/recommendation/delivery/http"
	"collab-srv/internal/recommendation/repository"
	interactionMemory "collab-srv/internal/recommendation/repository/memory"
	interactionRedis "collab-srv/internal/recommendation/repository/redis"
	recommendationUsecase "collab-srv/internal/recommendation/usecase"
)

func (srv *HTTPServer) setupRecommendationDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	var interactionRepo repository.InteractionRepository
	if srv.redisClient != nil {
		interactionRepo = interactionRedis.New(srv.redisClient)
		srv.l.Infof(ctx, "Interaction log backed by redis")
	} else {
		interactionRepo = interactionMemory.New()
		srv.l.Infof(ctx, "Interaction log backed by process memory")
	}

	uc := recommendationUsecase.New(srv.searchUC, interactionRepo, srv.l)

	handler := recommendationHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Recommendation domain registered")
	return nil
}
