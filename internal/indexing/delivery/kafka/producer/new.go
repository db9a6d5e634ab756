package producer

import (
	"context"
	"fmt"

	kafkaDelivery "collab-srv/internal/indexing/delivery/kafka"
	pkgKafka "collab-srv/pkg/kafka"
	"collab-srv/pkg/log"
)

// Producer publishes indexing outcome messages.
type Producer interface {
	PublishResult(ctx context.Context, result kafkaDelivery.IndexingResultMessage) error
	Close() error
}

type producer struct {
	l        log.Logger
	delegate pkgKafka.IProducer
}

// New creates a results producer bound to the indexing results topic.
func New(l log.Logger, brokers []string) (Producer, error) {
	delegate, err := pkgKafka.NewProducer(pkgKafka.Config{
		Brokers: brokers,
		Topic:   kafkaDelivery.TopicIndexingResults,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create results producer: %w", err)
	}
	return &producer{l: l, delegate: delegate}, nil
}
