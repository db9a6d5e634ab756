package main

import (
	"context"
	"fmt"

	"collab-srv/config"
	configRedis "collab-srv/config/redis"
	configSearchDB "collab-srv/config/searchdb"
	"collab-srv/internal/httpserver"
	"collab-srv/pkg/log"
	pkgRedis "collab-srv/pkg/redis"
)

func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// 3. Open search indexes
	searchDB, err := configSearchDB.Connect(ctx, cfg.SearchDB, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open search indexes: %v", err)
		return
	}
	defer configSearchDB.Disconnect()
	logger.Infof(ctx, "Search indexes opened under %s", cfg.SearchDB.RootPath)

	// 4. Initialize Redis (optional; interaction log falls back to memory)
	var redisClient pkgRedis.IRedis
	redisClient, err = configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Warnf(ctx, "Redis unavailable, interaction log will use process memory: %v", err)
		redisClient = nil
	} else {
		defer configRedis.Disconnect()
		logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	}

	// 5. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Config:      cfg,

		SearchDB:    searchDB,
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
	}
}
