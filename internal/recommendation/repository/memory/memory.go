package memory

import (
	"context"
	"sync"

	"collab-srv/internal/model"
	"collab-srv/internal/recommendation/repository"
)

// interactionRepo is a process-lifetime, in-memory interaction log.
// Appends for the same user are serialized by the lock so the cap
// truncation stays exact under concurrent writers.
type interactionRepo struct {
	mu   sync.Mutex
	logs map[string][]model.Interaction
}

// New creates an in-memory InteractionRepository.
func New() repository.InteractionRepository {
	return &interactionRepo{
		logs: make(map[string][]model.Interaction),
	}
}

func (r *interactionRepo) Append(_ context.Context, interaction model.Interaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := append([]model.Interaction{interaction}, r.logs[interaction.UserID]...)
	if len(log) > repository.MaxInteractionsPerUser {
		log = log[:repository.MaxInteractionsPerUser]
	}
	r.logs[interaction.UserID] = log
	return nil
}

func (r *interactionRepo) Recent(_ context.Context, userID string, limit int) ([]model.Interaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := r.logs[userID]
	if limit <= 0 || limit > len(log) {
		limit = len(log)
	}
	out := make([]model.Interaction, limit)
	copy(out, log[:limit])
	return out, nil
}
