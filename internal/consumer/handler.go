package consumer

import (
	"context"
	"fmt"

	indexingConsumer "collab-srv/internal/indexing/delivery/kafka/consumer"
	indexingProducer "collab-srv/internal/indexing/delivery/kafka/producer"
	indexingUsecase "collab-srv/internal/indexing/usecase"
	searchUsecase "collab-srv/internal/search/usecase"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	indexingConsumer *indexingConsumer.Consumer
	resultsProducer  indexingProducer.Producer
}

// setupDomains initializes all domain layers (usecases, producers, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	searchUC := searchUsecase.New(srv.searchDB, srv.l)
	indexingUC := indexingUsecase.New(searchUC, srv.l)

	resultsProducer, err := indexingProducer.New(srv.l, srv.kafkaConfig.Brokers)
	if err != nil {
		return nil, fmt.Errorf("failed to create results producer: %w", err)
	}

	indexingCons, err := indexingConsumer.New(indexingConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		UseCase:     indexingUC,
		Results:     resultsProducer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create indexing consumer: %w", err)
	}

	srv.l.Infof(ctx, "Indexing domain initialized")

	return &domainConsumers{
		indexingConsumer: indexingCons,
		resultsProducer:  resultsProducer,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.indexingConsumer.ConsumeDocumentEvents(ctx); err != nil {
		return fmt.Errorf("failed to start indexing consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.indexingConsumer != nil {
		if err := consumers.indexingConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing indexing consumer: %v", err)
		}
	}
	if consumers.resultsProducer != nil {
		if err := consumers.resultsProducer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing results producer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
