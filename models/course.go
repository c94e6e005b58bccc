package models

import "time"

// Course listing states.
const (
	CourseActive  = "active"
	CoursePaused  = "paused"
	CourseRemoved = "removed"
)

// Course is a tutor-owned listing students browse and book against. Rates
// are per hour in VND; a zero rate means "contact for price".
type Course struct {
	ID          string    `bson:"id" json:"id"`
	TutorID     string    `bson:"tutorId" json:"tutorId"`
	Title       string    `bson:"title" json:"title"`
	Subject     string    `bson:"subject" json:"subject"`
	Level       string    `bson:"level,omitempty" json:"level,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	HourlyRate  float64   `bson:"hourlyRate" json:"hourlyRate"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// IsBookable reports whether students may book against the listing.
func (c *Course) IsBookable() bool {
	return c.Status == CourseActive
}

// CourseCreateRequest is the payload for creating a listing.
type CourseCreateRequest struct {
	Title       string  `json:"title" binding:"required"`
	Subject     string  `json:"subject" binding:"required"`
	Level       string  `json:"level"`
	Description string  `json:"description"`
	HourlyRate  float64 `json:"hourlyRate"`
}

// CourseUpdateRequest carries the mutable listing fields.
type CourseUpdateRequest struct {
	Title       *string  `json:"title,omitempty"`
	Subject     *string  `json:"subject,omitempty"`
	Level       *string  `json:"level,omitempty"`
	Description *string  `json:"description,omitempty"`
	HourlyRate  *float64 `json:"hourlyRate,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

// CourseFilter narrows a public course search.
type CourseFilter struct {
	Subject string
	Level   string
	MaxRate float64
	Text    string
	TutorID string
}
