package consumer

import (
	"context"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kafkaDelivery "collab-srv/internal/indexing/delivery/kafka"
)

type fakeSession struct {
	marked []int64
}

func (s *fakeSession) Claims() map[string][]int32               { return nil }
func (s *fakeSession) MemberID() string                         { return "test-member" }
func (s *fakeSession) GenerationID() int32                      { return 1 }
func (s *fakeSession) MarkOffset(string, int32, int64, string)  {}
func (s *fakeSession) Commit()                                  {}
func (s *fakeSession) ResetOffset(string, int32, int64, string) {}
func (s *fakeSession) Context() context.Context                 { return context.Background() }

var _ sarama.ConsumerGroupSession = (*fakeSession)(nil)

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	msgs chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Topic() string                            { return kafkaDelivery.TopicDocumentEvents }
func (c *fakeClaim) Partition() int32                         { return 0 }
func (c *fakeClaim) InitialOffset() int64                     { return 0 }
func (c *fakeClaim) HighWaterMarkOffset() int64               { return 0 }
func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.msgs }

func newClaim(msgs ...*sarama.ConsumerMessage) *fakeClaim {
	ch := make(chan *sarama.ConsumerMessage, len(msgs))
	for _, msg := range msgs {
		ch <- msg
	}
	close(ch)
	return &fakeClaim{msgs: ch}
}

func at(offset int64, msg *sarama.ConsumerMessage) *sarama.ConsumerMessage {
	msg.Offset = offset
	return msg
}

func TestConsumeClaim(t *testing.T) {
	t.Run("successful events advance the watermark", func(t *testing.T) {
		uc := &fakeUseCase{}
		handler := &documentEventsHandler{consumer: newTestConsumer(uc, nil)}
		session := &fakeSession{}

		claim := newClaim(
			at(5, eventMessage(t, kafkaDelivery.EventTypeResourceDeleted, "res-1", nil)),
			at(6, eventMessage(t, kafkaDelivery.EventTypeUserDeleted, "user-1", nil)),
		)

		require.NoError(t, handler.ConsumeClaim(session, claim))
		assert.Equal(t, []int64{5, 6}, session.marked)
	})

	t.Run("transient failure stops the claim before the failed offset", func(t *testing.T) {
		uc := &fakeUseCase{failWith: errors.New("index closed")}
		handler := &documentEventsHandler{consumer: newTestConsumer(uc, nil)}
		session := &fakeSession{}

		claim := newClaim(
			at(5, eventMessage(t, kafkaDelivery.EventTypeResourceDeleted, "res-1", nil)),
			at(6, eventMessage(t, kafkaDelivery.EventTypeUserDeleted, "user-1", nil)),
		)

		// the error surfaces so sarama redelivers from the last committed
		// offset; nothing past the failure may be marked, or the watermark
		// would commit over the lost event
		require.Error(t, handler.ConsumeClaim(session, claim))
		assert.Empty(t, session.marked)
	})

	t.Run("malformed events are marked and skipped", func(t *testing.T) {
		uc := &fakeUseCase{}
		handler := &documentEventsHandler{consumer: newTestConsumer(uc, nil)}
		session := &fakeSession{}

		claim := newClaim(
			at(5, &sarama.ConsumerMessage{Offset: 5, Value: []byte("not-json")}),
			at(6, eventMessage(t, kafkaDelivery.EventTypeResourceDeleted, "res-1", nil)),
		)

		// a retry can never decode the same bytes, so the offset commits
		// and the claim keeps going
		require.NoError(t, handler.ConsumeClaim(session, claim))
		assert.Equal(t, []int64{5, 6}, session.marked)
		assert.Equal(t, []string{"resource/res-1"}, uc.deleted)
	})

	t.Run("unknown event types are marked and skipped", func(t *testing.T) {
		handler := &documentEventsHandler{consumer: newTestConsumer(&fakeUseCase{}, nil)}
		session := &fakeSession{}

		claim := newClaim(at(7, eventMessage(t, "resource.renamed", "res-1", nil)))

		require.NoError(t, handler.ConsumeClaim(session, claim))
		assert.Equal(t, []int64{7}, session.marked)
	})
}
