package producer

import (
	"context"
	"encoding/json"
	"fmt"

	kafkaDelivery "collab-srv/internal/indexing/delivery/kafka"
)

func (p *producer) PublishResult(ctx context.Context, result kafkaDelivery.IndexingResultMessage) error {
	value, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal indexing result: %w", err)
	}

	if err := p.delegate.Publish([]byte(result.DocumentID), value); err != nil {
		return fmt.Errorf("failed to publish indexing result: %w", err)
	}

	p.l.Debugf(ctx, "indexing.delivery.kafka.producer.PublishResult: published %s/%s", result.EventType, result.DocumentID)
	return nil
}

func (p *producer) Close() error {
	return p.delegate.Close()
}
