package usecase

import (
	"time"

	bsearch "github.com/blevesearch/bleve/v2/search"

	"collab-srv/internal/model"
	"collab-srv/internal/search"
)

// The backend returns stored fields flattened by dotted path, with
// single-element arrays collapsed to scalars. These decoders rebuild
// the typed documents from that shape.

func decodeResourceHit(hit *bsearch.DocumentMatch) search.ResourceHit {
	f := hit.Fields
	return search.ResourceHit{
		Resource: model.Resource{
			ID:          hit.ID,
			Title:       fieldString(f, "title"),
			Description: fieldString(f, "description"),
			Type:        fieldString(f, "type"),
			Format:      fieldString(f, "format"),
			Size:        int64(fieldFloat(f, "size")),
			Subjects:    fieldStrings(f, "subjects"),
			GradeLevels: fieldStrings(f, "gradeLevels"),
			Tags:        fieldStrings(f, "tags"),
			Author: model.ResourceAuthor{
				ID:                 fieldString(f, "author.id"),
				FullName:           fieldString(f, "author.fullName"),
				VerificationStatus: fieldString(f, "author.verificationStatus"),
			},
			IsGovernmentContent: fieldBool(f, "isGovernmentContent"),
			VerificationStatus:  fieldString(f, "verificationStatus"),
			DownloadCount:       int(fieldFloat(f, "downloadCount")),
			Rating:              fieldFloat(f, "rating"),
			SearchText:          fieldString(f, "searchText"),
			Popularity:          fieldFloat(f, "popularity"),
			CreatedAt:           fieldTime(f, "createdAt"),
			UpdatedAt:           fieldTime(f, "updatedAt"),
		},
		RelevanceScore: hit.Score,
	}
}

func decodeUserHit(hit *bsearch.DocumentMatch) search.UserHit {
	f := hit.Fields
	u := model.User{
		ID:              hit.ID,
		Email:           fieldString(f, "email"),
		FullName:        fieldString(f, "fullName"),
		Bio:             fieldString(f, "bio"),
		Subjects:        fieldStrings(f, "subjects"),
		GradeLevels:     fieldStrings(f, "gradeLevels"),
		Specializations: fieldStrings(f, "specializations"),
		SchoolLocation: model.SchoolLocation{
			District: fieldString(f, "schoolLocation.district"),
			Region:   fieldString(f, "schoolLocation.region"),
		},
		YearsExperience:    int(fieldFloat(f, "yearsExperience")),
		VerificationStatus: fieldString(f, "verificationStatus"),
		ConnectionCount:    int(fieldFloat(f, "connectionCount")),
		ResourceCount:      int(fieldFloat(f, "resourceCount")),
		ActivityScore:      fieldFloat(f, "activityScore"),
		CreatedAt:          fieldTime(f, "createdAt"),
	}
	if t := fieldTime(f, "lastActive"); !t.IsZero() {
		u.LastActive = &t
	}
	return search.UserHit{User: u, RelevanceScore: hit.Score}
}

func decodeCommunityHit(hit *bsearch.DocumentMatch) search.CommunityHit {
	f := hit.Fields
	return search.CommunityHit{
		Community: model.Community{
			ID:            hit.ID,
			Name:          fieldString(f, "name"),
			Description:   fieldString(f, "description"),
			Type:          fieldString(f, "type"),
			MemberCount:   int(fieldFloat(f, "memberCount")),
			IsPrivate:     fieldBool(f, "isPrivate"),
			Tags:          fieldStrings(f, "tags"),
			ActivityLevel: fieldString(f, "activityLevel"),
			CreatedAt:     fieldTime(f, "createdAt"),
		},
		RelevanceScore: hit.Score,
	}
}

func fieldString(fields map[string]interface{}, key string) string {
	switch v := fields[key].(type) {
	case string:
		return v
	case []interface{}:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return s
			}
		}
	}
	return ""
}

func fieldStrings(fields map[string]interface{}, key string) []string {
	switch v := fields[key].(type) {
	case string:
		return []string{v}
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func fieldFloat(fields map[string]interface{}, key string) float64 {
	switch v := fields[key].(type) {
	case float64:
		return v
	case []interface{}:
		if len(v) > 0 {
			if n, ok := v[0].(float64); ok {
				return n
			}
		}
	}
	return 0
}

func fieldBool(fields map[string]interface{}, key string) bool {
	switch v := fields[key].(type) {
	case bool:
		return v
	case []interface{}:
		if len(v) > 0 {
			if b, ok := v[0].(bool); ok {
				return b
			}
		}
	}
	return false
}

func fieldTime(fields map[string]interface{}, key string) time.Time {
	s := fieldString(fields, key)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
