package consumer

import (
	"fmt"

	"collab-srv/config"
	"collab-srv/internal/indexing"
	kafkaDelivery "collab-srv/internal/indexing/delivery/kafka/producer"
	pkgKafka "collab-srv/pkg/kafka"
	"collab-srv/pkg/log"
)

// Config holds the configuration for the indexing consumer
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     indexing.UseCase
	Results     kafkaDelivery.Producer
}

// Consumer manages the Kafka consumer group for the indexing domain
type Consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          indexing.UseCase
	results     kafkaDelivery.Producer

	documentEventsGroup pkgKafka.IConsumer
}

// New creates a new indexing consumer
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	return &Consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,
		results:     cfg.Results,
	}, nil
}

// Close closes the consumer group
func (c *Consumer) Close() error {
	if c.documentEventsGroup != nil {
		if err := c.documentEventsGroup.Close(); err != nil {
			return fmt.Errorf("failed to close document events group: %w", err)
		}
	}
	return nil
}

// createConsumerGroup creates a new Kafka consumer group
func (c *Consumer) createConsumerGroup(groupID string) (pkgKafka.IConsumer, error) {
	consumerConfig := pkgKafka.ConsumerConfig{
		Brokers: c.kafkaConfig.Brokers,
		GroupID: groupID,
	}

	group, err := pkgKafka.NewConsumer(consumerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group %s: %w", groupID, err)
	}

	return group, nil
}
