package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"collab-srv/config"
	"collab-srv/internal/search"
	"collab-srv/pkg/log"
	pkgRedis "collab-srv/pkg/redis"
	"collab-srv/pkg/searchdb"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	config      *config.Config

	// Backend Clients
	searchDB    searchdb.ISearchDB
	redisClient pkgRedis.IRedis

	// Cross-domain usecases, set during handler mapping
	searchUC search.UseCase
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	Config      *config.Config

	// Backend Clients
	SearchDB    searchdb.ISearchDB
	RedisClient pkgRedis.IRedis
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.Config,
		searchDB:    cfg.SearchDB,
		redisClient: cfg.RedisClient,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.searchDB == nil {
		return errors.New("searchDB is required")
	}
	// redisClient is optional; the interaction log falls back to memory
	return nil
}
