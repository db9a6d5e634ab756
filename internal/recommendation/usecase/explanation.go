package usecase

import (
	"context"
)

// explanationTemplates are the candidate sentences returned by
// GetRecommendationExplanation. Selection is uniformly random rather
// than derived from the scoring path that actually produced the
// recommendation.
// TODO: thread the blend source through so the explanation reflects
// the real scoring path instead of a random template.
var explanationTemplates = []string{
	"This resource matches your teaching subjects and grade levels.",
	"Teachers with profiles similar to yours found this resource helpful.",
	"This is a highly rated resource in one of your subject areas.",
	"This resource is trending among teachers on the platform right now.",
	"Based on your recent activity, this resource may fit your classes.",
}

const fallbackExplanation = "This resource was recommended based on your profile and activity."

// GetRecommendationExplanation returns a human-readable sentence for a
// recommendation. It never fails; any internal problem yields a
// generic fallback.
func (uc *implUseCase) GetRecommendationExplanation(ctx context.Context, userID, resourceID string) (explanation string) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Warnf(ctx, "recommendation.usecase.GetRecommendationExplanation(%s, %s): recovered: %v",
				userID, resourceID, r)
			explanation = fallbackExplanation
		}
	}()

	if userID == "" || resourceID == "" {
		return fallbackExplanation
	}
	return explanationTemplates[uc.randIntn(len(explanationTemplates))]
}
