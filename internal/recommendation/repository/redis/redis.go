package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"collab-srv/internal/model"
	"collab-srv/internal/recommendation/repository"
	pkgRedis "collab-srv/pkg/redis"
)

const keyPrefix = "interactions:"

// interactionRepo persists the per-user interaction log in a redis
// list, newest first, trimmed to the cap on every append.
type interactionRepo struct {
	redis pkgRedis.IRedis
}

// New creates a redis-backed InteractionRepository.
func New(redis pkgRedis.IRedis) repository.InteractionRepository {
	return &interactionRepo{redis: redis}
}

func (r *interactionRepo) Append(ctx context.Context, interaction model.Interaction) error {
	raw, err := json.Marshal(interaction)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrAppendFailed, err)
	}

	key := keyPrefix + interaction.UserID
	if err := r.redis.LPush(ctx, key, raw); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrAppendFailed, err)
	}
	if err := r.redis.LTrim(ctx, key, 0, repository.MaxInteractionsPerUser-1); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrAppendFailed, err)
	}
	return nil
}

func (r *interactionRepo) Recent(ctx context.Context, userID string, limit int) ([]model.Interaction, error) {
	if limit <= 0 {
		limit = repository.MaxInteractionsPerUser
	}

	raws, err := r.redis.LRange(ctx, keyPrefix+userID, 0, int64(limit-1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrReadFailed, err)
	}

	out := make([]model.Interaction, 0, len(raws))
	for _, raw := range raws {
		var interaction model.Interaction
		if err := json.Unmarshal([]byte(raw), &interaction); err != nil {
			return nil, fmt.Errorf("%w: %v", repository.ErrReadFailed, err)
		}
		out = append(out, interaction)
	}
	return out, nil
}
