package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"collab-srv/config"
	configSearchDB "collab-srv/config/searchdb"
	"collab-srv/internal/consumer"
	"collab-srv/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Collab Indexing Consumer...")

	// Search indexes
	searchDB, err := configSearchDB.Connect(ctx, cfg.SearchDB, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open search indexes: %v", err)
		return
	}
	defer configSearchDB.Disconnect()
	logger.Info(ctx, "Search indexes opened")

	// Consumer server
	srv, err := consumer.New(consumer.Config{
		Logger:      logger,
		KafkaConfig: cfg.Kafka,
		SearchDB:    searchDB,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create consumer server: %v", err)
		return
	}

	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer server stopped with error: %v", err)
	}
}
