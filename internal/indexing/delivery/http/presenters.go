package http

import (
	"time"

	"collab-srv/internal/indexing"
	"collab-srv/internal/model"
)

// =====================================================
// Request DTOs
// =====================================================

type resourceAuthorReq struct {
	ID                 string `json:"id"`
	FullName           string `json:"fullName"`
	VerificationStatus string `json:"verificationStatus"`
}

type resourceReq struct {
	ID                  string            `json:"id" binding:"required"`
	Title               string            `json:"title"`
	Description         string            `json:"description"`
	Type                string            `json:"type"`
	Format              string            `json:"format"`
	Size                int64             `json:"size"`
	Subjects            []string          `json:"subjects"`
	GradeLevels         []string          `json:"gradeLevels"`
	Tags                []string          `json:"tags"`
	Author              resourceAuthorReq `json:"author"`
	IsGovernmentContent bool              `json:"isGovernmentContent"`
	VerificationStatus  string            `json:"verificationStatus"`
	DownloadCount       int               `json:"downloadCount"`
	Rating              float64           `json:"rating"`
	CreatedAt           time.Time         `json:"createdAt"`
	UpdatedAt           time.Time         `json:"updatedAt"`
}

type schoolLocationReq struct {
	District    string          `json:"district"`
	Region      string          `json:"region"`
	Coordinates *model.GeoPoint `json:"coordinates,omitempty"`
}

type userReq struct {
	ID                 string            `json:"id" binding:"required"`
	Email              string            `json:"email"`
	FullName           string            `json:"fullName"`
	Bio                string            `json:"bio"`
	Subjects           []string          `json:"subjects"`
	GradeLevels        []string          `json:"gradeLevels"`
	Specializations    []string          `json:"specializations"`
	SchoolLocation     schoolLocationReq `json:"schoolLocation"`
	YearsExperience    int               `json:"yearsExperience"`
	VerificationStatus string            `json:"verificationStatus"`
	ConnectionCount    int               `json:"connectionCount"`
	ResourceCount      int               `json:"resourceCount"`
	LastActive         *time.Time        `json:"lastActive,omitempty"`
	CreatedAt          time.Time         `json:"createdAt"`
}

type communityReq struct {
	ID            string    `json:"id" binding:"required"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Type          string    `json:"type"`
	MemberCount   int       `json:"memberCount"`
	IsPrivate     bool      `json:"isPrivate"`
	Tags          []string  `json:"tags"`
	ActivityLevel string    `json:"activityLevel"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (r resourceReq) toInput() indexing.UpsertResourceInput {
	return indexing.UpsertResourceInput{
		Resource: model.Resource{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Type:        r.Type,
			Format:      r.Format,
			Size:        r.Size,
			Subjects:    r.Subjects,
			GradeLevels: r.GradeLevels,
			Tags:        r.Tags,
			Author: model.ResourceAuthor{
				ID:                 r.Author.ID,
				FullName:           r.Author.FullName,
				VerificationStatus: r.Author.VerificationStatus,
			},
			IsGovernmentContent: r.IsGovernmentContent,
			VerificationStatus:  r.VerificationStatus,
			DownloadCount:       r.DownloadCount,
			Rating:              r.Rating,
			CreatedAt:           r.CreatedAt,
			UpdatedAt:           r.UpdatedAt,
		},
	}
}

func (r userReq) toInput() indexing.UpsertUserInput {
	return indexing.UpsertUserInput{
		User: model.User{
			ID:              r.ID,
			Email:           r.Email,
			FullName:        r.FullName,
			Bio:             r.Bio,
			Subjects:        r.Subjects,
			GradeLevels:     r.GradeLevels,
			Specializations: r.Specializations,
			SchoolLocation: model.SchoolLocation{
				District:    r.SchoolLocation.District,
				Region:      r.SchoolLocation.Region,
				Coordinates: r.SchoolLocation.Coordinates,
			},
			YearsExperience:    r.YearsExperience,
			VerificationStatus: r.VerificationStatus,
			ConnectionCount:    r.ConnectionCount,
			ResourceCount:      r.ResourceCount,
			LastActive:         r.LastActive,
			CreatedAt:          r.CreatedAt,
		},
	}
}

func (r communityReq) toInput() indexing.UpsertCommunityInput {
	return indexing.UpsertCommunityInput{
		Community: model.Community{
			ID:            r.ID,
			Name:          r.Name,
			Description:   r.Description,
			Type:          r.Type,
			MemberCount:   r.MemberCount,
			IsPrivate:     r.IsPrivate,
			Tags:          r.Tags,
			ActivityLevel: r.ActivityLevel,
			CreatedAt:     r.CreatedAt,
		},
	}
}
