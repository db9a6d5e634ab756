package usecase

import (
	"context"

	"github.com/google/uuid"

	"collab-srv/internal/model"
	"collab-srv/internal/recommendation"
)

// UpdateUserInteraction records an interaction in the per-user log.
// Fire-and-forget: a repository failure is logged and swallowed so an
// analytics side channel can never fail the caller.
func (uc *implUseCase) UpdateUserInteraction(ctx context.Context, input recommendation.InteractionInput) {
	interaction := model.Interaction{
		ID:         uuid.NewString(),
		UserID:     input.UserID,
		ResourceID: input.ResourceID,
		Action:     input.Action,
		Metadata:   input.Metadata,
		OccurredAt: uc.now(),
	}

	if err := uc.interactionRepo.Append(ctx, interaction); err != nil {
		uc.l.Warnf(ctx, "recommendation.usecase.UpdateUserInteraction(%s, %s): %v",
			input.UserID, input.ResourceID, err)
	}
}
