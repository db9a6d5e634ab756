package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collab-srv/internal/model"
	"collab-srv/internal/recommendation/repository"
)

func interaction(userID, resourceID string, at time.Time) model.Interaction {
	return model.Interaction{
		ID:         resourceID + "-log",
		UserID:     userID,
		ResourceID: resourceID,
		Action:     model.InteractionView,
		OccurredAt: at,
	}
}

func TestInteractionRepo(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("recent returns newest first", func(t *testing.T) {
		repo := New()

		require.NoError(t, repo.Append(ctx, interaction("user-1", "res-old", now)))
		require.NoError(t, repo.Append(ctx, interaction("user-1", "res-new", now.Add(time.Minute))))

		recent, err := repo.Recent(ctx, "user-1", 10)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, "res-new", recent[0].ResourceID)
		assert.Equal(t, "res-old", recent[1].ResourceID)
	})

	t.Run("limit windows the log", func(t *testing.T) {
		repo := New()
		for i := 0; i < 5; i++ {
			require.NoError(t, repo.Append(ctx, interaction("user-1", fmt.Sprintf("res-%d", i), now)))
		}

		recent, err := repo.Recent(ctx, "user-1", 2)
		require.NoError(t, err)
		assert.Len(t, recent, 2)

		all, err := repo.Recent(ctx, "user-1", 0)
		require.NoError(t, err)
		assert.Len(t, all, 5)
	})

	t.Run("logs are per user", func(t *testing.T) {
		repo := New()
		require.NoError(t, repo.Append(ctx, interaction("user-1", "res-1", now)))

		recent, err := repo.Recent(ctx, "user-2", 10)
		require.NoError(t, err)
		assert.Empty(t, recent)
	})

	t.Run("log is capped per user", func(t *testing.T) {
		repo := New()
		for i := 0; i < repository.MaxInteractionsPerUser+50; i++ {
			require.NoError(t, repo.Append(ctx, interaction("user-1", fmt.Sprintf("res-%d", i), now)))
		}

		recent, err := repo.Recent(ctx, "user-1", 0)
		require.NoError(t, err)
		require.Len(t, recent, repository.MaxInteractionsPerUser)
		// the newest entry survives, the oldest fell off
		assert.Equal(t, fmt.Sprintf("res-%d", repository.MaxInteractionsPerUser+49), recent[0].ResourceID)
	})

	t.Run("cap holds under concurrent appends", func(t *testing.T) {
		repo := New()

		var wg sync.WaitGroup
		for w := 0; w < 8; w++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				for i := 0; i < 200; i++ {
					_ = repo.Append(ctx, interaction("user-1", fmt.Sprintf("res-%d-%d", w, i), now))
				}
			}(w)
		}
		wg.Wait()

		recent, err := repo.Recent(ctx, "user-1", 0)
		require.NoError(t, err)
		assert.Len(t, recent, repository.MaxInteractionsPerUser)
	})
}
