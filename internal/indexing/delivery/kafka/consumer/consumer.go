package consumer

import (
	"context"

	kafkaDelivery "collab-srv/internal/indexing/delivery/kafka"
)

// ConsumeDocumentEvents starts consuming document change events.
func (c *Consumer) ConsumeDocumentEvents(ctx context.Context) error {
	group, err := c.createConsumerGroup(kafkaDelivery.ConsumerGroupDocumentEvents)
	if err != nil {
		return err
	}
	c.documentEventsGroup = group

	handler := &documentEventsHandler{
		consumer: c,
	}

	// Start consuming in goroutine with context
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{kafkaDelivery.TopicDocumentEvents}, handler); err != nil {
					c.l.Errorf(ctx, "Consumer error: %v", err)
				}
			}
		}
	}()

	// Start error handler
	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", kafkaDelivery.TopicDocumentEvents)

	return nil
}
