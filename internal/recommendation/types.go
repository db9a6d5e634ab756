package recommendation

import (
	"time"

	"collab-srv/internal/model"
)

const (
	// DefaultLimit applies when a caller asks for a non-positive number
	// of recommendations.
	DefaultLimit = 10

	// MaxLimit bounds a single recommendation request. The trending
	// candidate query over-fetches twice the limit, and the backend caps
	// any page at 100 results, so limits beyond 50 could not be honored
	// anyway.
	MaxLimit = 50

	// TrendingWindowDays is how far back trending candidates may have
	// been created.
	TrendingWindowDays = 30
)

// Recommendation reasons, tagged by blend source.
const (
	ReasonContentBased  = "Matches your subject interests and grade levels"
	ReasonCollaborative = "Popular among teachers with similar profiles"
)

// TeacherProfile - the caller-supplied profile recommendations are
// computed against.
type TeacherProfile struct {
	UserID      string
	Subjects    []string
	GradeLevels []string
}

// PersonalizedRecommendation - one scored resource recommendation.
// Ephemeral; computed per request and never persisted.
type PersonalizedRecommendation struct {
	ResourceID           string
	Title                string
	Description          string
	Type                 string
	Subjects             []string
	GradeLevels          []string
	Author               model.ResourceAuthor
	Rating               float64
	DownloadCount        int
	RelevanceScore       float64
	RecommendationReason string
	CreatedAt            time.Time
}

// TrendingContent - one trending resource with its blend components.
type TrendingContent struct {
	ResourceID    string
	Title         string
	Description   string
	Type          string
	Subjects      []string
	GradeLevels   []string
	DownloadCount int
	Rating        float64
	TrendingScore float64
	GrowthRate    float64
	CreatedAt     time.Time
}

// InteractionInput - a user/resource interaction to record.
type InteractionInput struct {
	UserID     string
	ResourceID string
	Action     string
	Metadata   map[string]string
}
