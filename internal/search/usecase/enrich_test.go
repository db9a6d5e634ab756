package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"collab-srv/internal/model"
)

func TestEnrichResource(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("search text concatenates title, description and tags", func(t *testing.T) {
		r := enrichResource(model.Resource{
			Title:       "Fractions Workbook",
			Description: "Practice problems for grade 5",
			Tags:        []string{"math", "fractions"},
			CreatedAt:   now.AddDate(0, 0, -10),
		}, now)

		assert.Equal(t, "Fractions Workbook Practice problems for grade 5 math fractions", r.SearchText)
	})

	t.Run("popularity blends downloads, rating and recency", func(t *testing.T) {
		r := enrichResource(model.Resource{
			DownloadCount: 500,
			Rating:        4.8,
			CreatedAt:     now.AddDate(0, 0, -30),
		}, now)

		// 0.4*0.5 + 0.4*0.96 + 0.2*(1-30/365)
		assert.InDelta(t, 0.2+0.384+0.2*(1-30.0/365), r.Popularity, 1e-9)
		assert.Greater(t, r.Popularity, 0.0)
		assert.Less(t, r.Popularity, 1.0)
	})

	t.Run("a brand-new resource gets the full recency contribution", func(t *testing.T) {
		r := enrichResource(model.Resource{CreatedAt: now}, now)
		assert.InDelta(t, 0.2, r.Popularity, 1e-9)
	})

	t.Run("download component saturates at 1000", func(t *testing.T) {
		low := enrichResource(model.Resource{DownloadCount: 1000, CreatedAt: now}, now)
		high := enrichResource(model.Resource{DownloadCount: 250000, CreatedAt: now}, now)

		assert.Equal(t, low.Popularity, high.Popularity)
	})

	t.Run("popularity stays within zero and one", func(t *testing.T) {
		best := enrichResource(model.Resource{
			DownloadCount: 1_000_000,
			Rating:        5,
			CreatedAt:     now,
		}, now)
		worst := enrichResource(model.Resource{
			CreatedAt: now.AddDate(-3, 0, 0),
		}, now)

		assert.LessOrEqual(t, best.Popularity, 1.0)
		assert.GreaterOrEqual(t, worst.Popularity, 0.0)
	})

	t.Run("idempotent for a fixed clock", func(t *testing.T) {
		r := model.Resource{
			Title:         "Cell Biology Slides",
			Tags:          []string{"biology"},
			DownloadCount: 120,
			Rating:        4.1,
			CreatedAt:     now.AddDate(0, -2, 0),
		}

		once := enrichResource(r, now)
		twice := enrichResource(once, now)
		assert.Equal(t, once, twice)
	})
}

func TestEnrichUser(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("activity score blends connections, resources and recency", func(t *testing.T) {
		lastActive := now.AddDate(0, 0, -3)
		u := enrichUser(model.User{
			ConnectionCount: 50,
			ResourceCount:   25,
			LastActive:      &lastActive,
		}, now)

		// 0.3*0.5 + 0.4*0.5 + 0.3*(1-3/30)
		assert.InDelta(t, 0.15+0.2+0.3*(1-3.0/30), u.ActivityScore, 1e-9)
	})

	t.Run("no lastActive means zero recency contribution", func(t *testing.T) {
		u := enrichUser(model.User{
			ConnectionCount: 100,
			ResourceCount:   50,
		}, now)

		assert.InDelta(t, 0.7, u.ActivityScore, 1e-9)
	})

	t.Run("idle longer than the window also contributes nothing", func(t *testing.T) {
		stale := now.AddDate(0, -6, 0)
		withStale := enrichUser(model.User{ConnectionCount: 100, LastActive: &stale}, now)
		without := enrichUser(model.User{ConnectionCount: 100}, now)

		assert.Equal(t, without.ActivityScore, withStale.ActivityScore)
	})

	t.Run("score stays within zero and one", func(t *testing.T) {
		active := now
		best := enrichUser(model.User{
			ConnectionCount: 10_000,
			ResourceCount:   10_000,
			LastActive:      &active,
		}, now)

		assert.LessOrEqual(t, best.ActivityScore, 1.0)
		assert.GreaterOrEqual(t, enrichUser(model.User{}, now).ActivityScore, 0.0)
	})
}

func TestDaysSince(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0.0, daysSince(now, now))
	assert.InDelta(t, 1.0/24, daysSince(now.Add(-time.Hour), now), 1e-9, "sub-day ages stay fractional")
	assert.InDelta(t, 10.0, daysSince(now.AddDate(0, 0, -10), now), 1e-9)
	assert.Equal(t, 0.0, daysSince(now.Add(time.Hour), now), "future timestamps clamp to zero")
}
