package recommendation

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	GetPersonalizedRecommendations(ctx context.Context, profile TeacherProfile, limit int) ([]PersonalizedRecommendation, error)
	GetTrendingContent(ctx context.Context, subjects []string, limit int) ([]TrendingContent, error)

	// UpdateUserInteraction is best-effort: failures are logged, never
	// returned, so recording activity cannot fail the caller.
	UpdateUserInteraction(ctx context.Context, input InteractionInput)

	// GetRecommendationExplanation never fails; on any internal error it
	// returns a generic fallback sentence.
	GetRecommendationExplanation(ctx context.Context, userID, resourceID string) string
}
