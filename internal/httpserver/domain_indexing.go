package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	indexingHTTP "collab-srv/internal/indexing/delivery/http"
	indexingUsecase "collab-srv/internal/indexing/usecase"
	"collab-srv/internal/middleware"
)

// setupIndexingDomain initializes the indexing domain (usecase -> delivery)
func (srv *HTTPServer) setupIndexingDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := indexingUsecase.New(srv.searchUC, srv.l)

	handler := indexingHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Indexing domain registered")
	return nil
}
