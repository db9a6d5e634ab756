package searchdb

import (
	"context"
	"fmt"
	"sync"

	"collab-srv/config"
	"collab-srv/pkg/log"
	"collab-srv/pkg/searchdb"
)

var (
	instance searchdb.ISearchDB
	once     sync.Once
	mu       sync.RWMutex
	initErr  error
)

// Connect initializes and opens the search indexes using singleton pattern.
func Connect(ctx context.Context, cfg config.SearchDBConfig, l log.Logger) (searchdb.ISearchDB, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	if initErr != nil {
		once = sync.Once{}
		initErr = nil
	}

	var err error
	once.Do(func() {
		clientCfg := searchdb.Config{
			RootPath: cfg.RootPath,
		}

		client, e := searchdb.NewSearchDB(clientCfg, l)
		if e != nil {
			err = fmt.Errorf("failed to initialize search index client: %w", e)
			initErr = err
			return
		}

		if e := client.Connect(ctx); e != nil {
			err = fmt.Errorf("failed to open search indexes: %w", e)
			initErr = err
			return
		}

		instance = client
	})

	return instance, err
}

// GetClient returns the singleton search index client instance.
func GetClient() searchdb.ISearchDB {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("search index client not initialized. Call Connect() first")
	}
	return instance
}

// HealthCheck checks if the search indexes are healthy
func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("search index client not initialized")
	}
	if !instance.IsHealthy(ctx) {
		return fmt.Errorf("search indexes unhealthy")
	}
	return nil
}

// Disconnect closes the search indexes
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		if err := instance.Disconnect(); err != nil {
			return err
		}
		instance = nil
		once = sync.Once{}
		initErr = nil
	}
	return nil
}
