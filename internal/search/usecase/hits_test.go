package usecase

import (
	"testing"
	"time"

	bsearch "github.com/blevesearch/bleve/v2/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Stored fields come back from the backend flattened by dotted path,
// with single-element arrays collapsed to scalars and numbers widened
// to float64. These tests exercise that shape directly.

func TestDecodeResourceHit(t *testing.T) {
	hit := &bsearch.DocumentMatch{
		ID:    "res-1",
		Score: 2.3,
		Fields: map[string]interface{}{
			"title":                      "Fractions Workbook",
			"description":                "Practice problems",
			"type":                       "worksheet",
			"format":                     "pdf",
			"size":                       float64(2048),
			"subjects":                   []interface{}{"math", "logic"},
			"gradeLevels":                "grade5",
			"tags":                       []interface{}{"fractions"},
			"author.id":                  "user-9",
			"author.fullName":            "Tran Thi B",
			"author.verificationStatus":  "verified",
			"isGovernmentContent":        true,
			"verificationStatus":         "verified",
			"downloadCount":              float64(512),
			"rating":                     4.5,
			"searchText":                 "Fractions Workbook Practice problems fractions",
			"popularity":                 0.71,
			"createdAt":                  "2026-01-15T08:30:00Z",
			"updatedAt":                  "2026-02-01T10:00:00Z",
		},
	}

	out := decodeResourceHit(hit)

	assert.Equal(t, "res-1", out.ID)
	assert.Equal(t, 2.3, out.RelevanceScore)
	assert.Equal(t, "Fractions Workbook", out.Title)
	assert.Equal(t, int64(2048), out.Size)
	assert.Equal(t, []string{"math", "logic"}, out.Subjects)
	assert.Equal(t, []string{"grade5"}, out.GradeLevels, "collapsed scalar rebuilds as a slice")
	assert.Equal(t, "Tran Thi B", out.Author.FullName)
	assert.True(t, out.IsGovernmentContent)
	assert.Equal(t, 512, out.DownloadCount)
	assert.Equal(t, 0.71, out.Popularity)
	assert.Equal(t, time.Date(2026, 1, 15, 8, 30, 0, 0, time.UTC), out.CreatedAt)
}

func TestDecodeUserHit(t *testing.T) {
	t.Run("lastActive present", func(t *testing.T) {
		hit := &bsearch.DocumentMatch{
			ID:    "user-1",
			Score: 1.1,
			Fields: map[string]interface{}{
				"fullName":                "Nguyen Van A",
				"subjects":                []interface{}{"math"},
				"schoolLocation.district": "District 1",
				"schoolLocation.region":   "south",
				"connectionCount":         float64(30),
				"activityScore":           0.45,
				"lastActive":              "2026-02-20T00:00:00Z",
			},
		}

		out := decodeUserHit(hit)

		assert.Equal(t, "user-1", out.ID)
		assert.Equal(t, "Nguyen Van A", out.FullName)
		assert.Equal(t, "District 1", out.SchoolLocation.District)
		assert.Equal(t, 30, out.ConnectionCount)
		assert.Equal(t, 0.45, out.ActivityScore)
		require.NotNil(t, out.LastActive)
		assert.Equal(t, time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC), *out.LastActive)
	})

	t.Run("lastActive absent stays nil", func(t *testing.T) {
		out := decodeUserHit(&bsearch.DocumentMatch{
			ID:     "user-2",
			Fields: map[string]interface{}{"fullName": "Le Thi C"},
		})

		assert.Nil(t, out.LastActive)
	})
}

func TestDecodeCommunityHit(t *testing.T) {
	hit := &bsearch.DocumentMatch{
		ID:    "com-1",
		Score: 0.9,
		Fields: map[string]interface{}{
			"name":          "STEM Teachers HCMC",
			"type":          "subject",
			"memberCount":   float64(87),
			"isPrivate":     false,
			"activityLevel": "high",
		},
	}

	out := decodeCommunityHit(hit)

	assert.Equal(t, "com-1", out.ID)
	assert.Equal(t, "STEM Teachers HCMC", out.Name)
	assert.Equal(t, 87, out.MemberCount)
	assert.False(t, out.IsPrivate)
	assert.Equal(t, "high", out.ActivityLevel)
}

func TestFieldGetters(t *testing.T) {
	fields := map[string]interface{}{
		"scalar":  "one",
		"slice":   []interface{}{"a", "b"},
		"number":  float64(7),
		"badDate": "not-a-date",
	}

	assert.Equal(t, "one", fieldString(fields, "scalar"))
	assert.Equal(t, "a", fieldString(fields, "slice"))
	assert.Equal(t, "", fieldString(fields, "missing"))

	assert.Equal(t, []string{"one"}, fieldStrings(fields, "scalar"))
	assert.Equal(t, []string{"a", "b"}, fieldStrings(fields, "slice"))
	assert.Nil(t, fieldStrings(fields, "missing"))

	assert.Equal(t, 7.0, fieldFloat(fields, "number"))
	assert.Equal(t, 0.0, fieldFloat(fields, "scalar"))

	assert.True(t, fieldTime(fields, "badDate").IsZero())
	assert.True(t, fieldTime(fields, "missing").IsZero())
}
