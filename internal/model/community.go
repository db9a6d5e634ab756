package model

import "time"

// Community activity level constants.
const (
	ActivityLevelHigh   = "high"
	ActivityLevelMedium = "medium"
	ActivityLevelLow    = "low"
)

// Community - a teacher community document as held in the search index.
// Communities carry no derived ranking signals; they are indexed as-is.
type Community struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Type          string    `json:"type"`
	MemberCount   int       `json:"memberCount"`
	IsPrivate     bool      `json:"isPrivate"`
	Tags          []string  `json:"tags"`
	ActivityLevel string    `json:"activityLevel"`
	CreatedAt     time.Time `json:"createdAt"`
}
