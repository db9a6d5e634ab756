package model

import "time"

// Verification status constants shared by resources and users.
const (
	VerificationVerified   = "verified"
	VerificationPending    = "pending"
	VerificationUnverified = "unverified"
)

// Resource - a teaching resource document as held in the search index.
// JSON tags double as index field names, so they must stay in sync with
// the index mapping.
type Resource struct {
	// Core Identity
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Format      string `json:"format"`
	Size        int64  `json:"size"`

	// Classification
	Subjects    []string `json:"subjects"`
	GradeLevels []string `json:"gradeLevels"`
	Tags        []string `json:"tags"`

	// Provenance
	Author              ResourceAuthor `json:"author"`
	IsGovernmentContent bool           `json:"isGovernmentContent"`
	VerificationStatus  string         `json:"verificationStatus"`

	// Engagement
	DownloadCount int     `json:"downloadCount"`
	Rating        float64 `json:"rating"`

	// Derived ranking signals, set by enrichment before indexing.
	SearchText string  `json:"searchText"`
	Popularity float64 `json:"popularity"`

	// Timestamps
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ResourceAuthor - embedded author summary on a resource document.
type ResourceAuthor struct {
	ID                 string `json:"id"`
	FullName           string `json:"fullName"`
	VerificationStatus string `json:"verificationStatus"`
}
