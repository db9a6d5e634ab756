package model

import "time"

// Interaction action constants.
const (
	InteractionView     = "view"
	InteractionDownload = "download"
	InteractionRate     = "rate"
	InteractionShare    = "share"
	InteractionBookmark = "bookmark"
)

// Interaction - a single user/resource interaction record. Interactions
// are a write-only audit trail; ranking does not consume them yet.
type Interaction struct {
	ID         string            `json:"id"`
	UserID     string            `json:"userId"`
	ResourceID string            `json:"resourceId"`
	Action     string            `json:"action"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	OccurredAt time.Time         `json:"occurredAt"`
}
