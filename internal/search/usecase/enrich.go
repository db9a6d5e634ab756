package usecase

import (
	"strings"
	"time"

	"collab-srv/internal/model"
)

// enrichResource computes the derived ranking signals for a resource:
// searchText (title + description + tags) and popularity, a [0,1]
// weighted sum of download volume, rating and recency. Deterministic
// for a fixed "now"; applying it twice yields the same result.
func enrichResource(r model.Resource, now time.Time) model.Resource {
	parts := []string{r.Title, r.Description, strings.Join(r.Tags, " ")}
	r.SearchText = strings.Join(parts, " ")

	downloads := minf(float64(r.DownloadCount)/1000, 1)
	rating := r.Rating / 5
	recency := maxf(0, 1-daysSince(r.CreatedAt, now)/365)
	r.Popularity = 0.4*downloads + 0.4*rating + 0.2*recency
	return r
}

// enrichUser computes the derived activityScore for a user, a [0,1]
// weighted sum of connections, authored resources and recency of
// activity. A user with no lastActive gets zero recency contribution.
func enrichUser(u model.User, now time.Time) model.User {
	connections := minf(float64(u.ConnectionCount)/100, 1)
	resources := minf(float64(u.ResourceCount)/50, 1)

	daysIdle := 365.0
	if u.LastActive != nil {
		daysIdle = daysSince(*u.LastActive, now)
	}
	recency := maxf(0, 1-daysIdle/30)

	u.ActivityScore = 0.3*connections + 0.4*resources + 0.3*recency
	return u
}

// daysSince returns the fractional number of days between t and now,
// clamped at zero for timestamps in the future.
func daysSince(t time.Time, now time.Time) float64 {
	days := now.Sub(t).Hours() / 24
	if days < 0 {
		return 0
	}
	return days
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
