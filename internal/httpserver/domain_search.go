package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"collab-srv/internal/middleware"
	searchHTTP "collab-srv/internal/search/delivery/http"
	searchUsecase "collab-srv/internal/search/usecase"
)

func (srv *HTTPServer) setupSearchDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := searchUsecase.New(srv.searchDB, srv.l)
	srv.searchUC = uc

	handler := searchHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Search domain registered")
	return nil
}
