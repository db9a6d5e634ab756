package model

import "time"

// User - a teacher profile document as held in the search index.
type User struct {
	// Core Identity
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Bio      string `json:"bio"`

	// Teaching Profile
	Subjects        []string       `json:"subjects"`
	GradeLevels     []string       `json:"gradeLevels"`
	Specializations []string       `json:"specializations"`
	SchoolLocation  SchoolLocation `json:"schoolLocation"`
	YearsExperience int            `json:"yearsExperience"`

	// Standing
	VerificationStatus string `json:"verificationStatus"`
	ConnectionCount    int    `json:"connectionCount"`
	ResourceCount      int    `json:"resourceCount"`

	// Derived ranking signal, set by enrichment before indexing.
	ActivityScore float64 `json:"activityScore"`

	// Timestamps
	LastActive *time.Time `json:"lastActive,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// SchoolLocation - where the teacher's school is.
type SchoolLocation struct {
	District    string    `json:"district"`
	Region      string    `json:"region"`
	Coordinates *GeoPoint `json:"coordinates,omitempty"`
}

// GeoPoint - latitude/longitude pair.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
