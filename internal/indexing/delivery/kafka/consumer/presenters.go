package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"collab-srv/internal/indexing"
	kafkaDelivery "collab-srv/internal/indexing/delivery/kafka"
	"collab-srv/internal/model"
)

// handleDocumentEventMessage decodes one document event, routes it to
// the usecase and reports the outcome on the results topic.
func (c *Consumer) handleDocumentEventMessage(msg *sarama.ConsumerMessage) error {
	ctx := context.Background()

	var event kafkaDelivery.DocumentEventMessage
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return fmt.Errorf("%w: %v", errMalformedMessage, err)
	}

	err := c.dispatch(ctx, event)
	c.publishResult(ctx, event, err)
	return err
}

func (c *Consumer) dispatch(ctx context.Context, event kafkaDelivery.DocumentEventMessage) error {
	switch event.EventType {
	case kafkaDelivery.EventTypeResourceUpserted:
		var resource model.Resource
		if err := json.Unmarshal(event.Payload, &resource); err != nil {
			return fmt.Errorf("%w: %v", errMalformedMessage, err)
		}
		return c.uc.UpsertResource(ctx, indexing.UpsertResourceInput{Resource: resource})

	case kafkaDelivery.EventTypeResourceDeleted:
		return c.uc.DeleteResource(ctx, indexing.DeleteInput{ID: event.DocumentID})

	case kafkaDelivery.EventTypeUserUpserted:
		var user model.User
		if err := json.Unmarshal(event.Payload, &user); err != nil {
			return fmt.Errorf("%w: %v", errMalformedMessage, err)
		}
		return c.uc.UpsertUser(ctx, indexing.UpsertUserInput{User: user})

	case kafkaDelivery.EventTypeUserDeleted:
		return c.uc.DeleteUser(ctx, indexing.DeleteInput{ID: event.DocumentID})

	case kafkaDelivery.EventTypeCommunityUpserted:
		var community model.Community
		if err := json.Unmarshal(event.Payload, &community); err != nil {
			return fmt.Errorf("%w: %v", errMalformedMessage, err)
		}
		return c.uc.UpsertCommunity(ctx, indexing.UpsertCommunityInput{Community: community})

	case kafkaDelivery.EventTypeCommunityDeleted:
		return c.uc.DeleteCommunity(ctx, indexing.DeleteInput{ID: event.DocumentID})

	default:
		return fmt.Errorf("%w: %s", errUnknownEventType, event.EventType)
	}
}

// publishResult reports the processing outcome. Best-effort: a result
// publish failure never fails event handling.
func (c *Consumer) publishResult(ctx context.Context, event kafkaDelivery.DocumentEventMessage, handleErr error) {
	if c.results == nil {
		return
	}

	result := kafkaDelivery.IndexingResultMessage{
		EventType:   event.EventType,
		DocumentID:  event.DocumentID,
		Status:      "success",
		CompletedAt: time.Now(),
	}
	if handleErr != nil {
		result.Status = "failed"
		result.Error = handleErr.Error()
	}

	if err := c.results.PublishResult(ctx, result); err != nil {
		c.l.Warnf(ctx, "indexing.delivery.kafka.consumer.publishResult(%s): %v", event.DocumentID, err)
	}
}
