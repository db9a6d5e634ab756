package consumer

import (
	"context"
	"errors"

	"github.com/IBM/sarama"
)

type documentEventsHandler struct {
	consumer *Consumer
}

func (h *documentEventsHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *documentEventsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim processes one partition claim. Undecodable events can
// never succeed on retry, so they are marked and skipped; any other
// failure leaves the offset unmarked and surrenders the claim so
// sarama redelivers the event.
func (h *documentEventsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		err := h.consumer.handleDocumentEventMessage(msg)
		switch {
		case err == nil:
			session.MarkMessage(msg, "")
		case errors.Is(err, errMalformedMessage), errors.Is(err, errUnknownEventType):
			h.consumer.l.Errorf(context.Background(), "indexing.delivery.kafka.consumer.ConsumeDocumentEvents: skipping message at offset %d: %v", msg.Offset, err)
			session.MarkMessage(msg, "")
		default:
			h.consumer.l.Errorf(context.Background(), "indexing.delivery.kafka.consumer.ConsumeDocumentEvents: failed to process message at offset %d: %v", msg.Offset, err)
			return err
		}
	}
	return nil
}
