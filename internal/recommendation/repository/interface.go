package repository

import (
	"context"

	"collab-srv/internal/model"
)

// MaxInteractionsPerUser caps the per-user interaction log; older
// entries are truncated once the cap is reached.
const MaxInteractionsPerUser = 1000

//go:generate mockery --name InteractionRepository
type InteractionRepository interface {
	// Append records an interaction, newest first, truncating the
	// user's log to MaxInteractionsPerUser.
	Append(ctx context.Context, interaction model.Interaction) error

	// Recent returns up to limit interactions for the user, newest
	// first. A missing user yields an empty slice.
	Recent(ctx context.Context, userID string, limit int) ([]model.Interaction, error)
}
