package kafka

import (
	"encoding/json"
	"time"
)

// DocumentEventMessage - envelope for collab.document.events. Payload
// holds the document for upserts and is empty for deletes.
type DocumentEventMessage struct {
	EventType  string          `json:"eventType"`
	DocumentID string          `json:"documentId"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// IndexingResultMessage - published to collab.indexing.results after
// each processed event.
type IndexingResultMessage struct {
	EventType   string    `json:"eventType"`
	DocumentID  string    `json:"documentId"`
	Status      string    `json:"status"` // success, failed
	Error       string    `json:"error,omitempty"`
	CompletedAt time.Time `json:"completedAt"`
}
