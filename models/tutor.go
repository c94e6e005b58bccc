package models

import "time"

// Tutor verification states. Rejected tutors may resubmit, which moves them
// back to pending.
const (
	VerificationUnverified = "unverified"
	VerificationPending    = "pending"
	VerificationApproved   = "approved"
	VerificationRejected   = "rejected"
)

// Education is one credential a tutor declares.
type Education struct {
	Institution string `bson:"institution" json:"institution"`
	Degree      string `bson:"degree" json:"degree"`
	Major       string `bson:"major,omitempty" json:"major,omitempty"`
	StartYear   int    `bson:"startYear,omitempty" json:"startYear,omitempty"`
	EndYear     int    `bson:"endYear,omitempty" json:"endYear,omitempty"`
}

// Verification tracks the tutor's verification workflow state.
type Verification struct {
	Status          string    `bson:"status" json:"status"`
	DocumentURLs    []string  `bson:"documentUrls,omitempty" json:"documentUrls,omitempty"`
	RejectionReason string    `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
	SubmittedAt     time.Time `bson:"submittedAt,omitzero" json:"submittedAt,omitzero"`
	ReviewedAt      time.Time `bson:"reviewedAt,omitzero" json:"reviewedAt,omitzero"`
	ReviewedBy      string    `bson:"reviewedBy,omitempty" json:"reviewedBy,omitempty"`
}

// TutorProfile is the tutor-specific extension of a User document.
//
// Availability is kept exactly as the tutor's client submitted it: a JSON
// array of {type,date,startTime,endTime} objects, stored as a string. It is
// decoded on demand by services/availability, which tolerates malformed
// values by exposing no bookable slots.
type TutorProfile struct {
	Bio            string      `bson:"bio,omitempty" json:"bio,omitempty"`
	Subjects       []string    `bson:"subjects,omitempty" json:"subjects,omitempty"`
	Education      []Education `bson:"education,omitempty" json:"education,omitempty"`
	ExperienceYrs  int         `bson:"experienceYears,omitempty" json:"experienceYears,omitempty"`
	HourlyRateHint float64     `bson:"hourlyRateHint,omitempty" json:"hourlyRateHint,omitempty"`
	Availability   string      `bson:"availability,omitempty" json:"availability,omitempty"`
	Verification   Verification `bson:"verification" json:"verification"`
	Rating         float64     `bson:"rating,omitempty" json:"rating,omitempty"`
	RatingCount    int         `bson:"ratingCount,omitempty" json:"ratingCount,omitempty"`
	CompletedCount int         `bson:"completedCount,omitempty" json:"completedCount,omitempty"`
}

// IsApproved reports whether the tutor passed verification.
func (p *TutorProfile) IsApproved() bool {
	return p.Verification.Status == VerificationApproved
}

// CanSubmitVerification reports whether a new verification request is allowed.
func (p *TutorProfile) CanSubmitVerification() bool {
	return p.Verification.Status == VerificationUnverified ||
		p.Verification.Status == VerificationRejected
}

// TutorUpdateRequest carries the mutable tutor-profile fields.
type TutorUpdateRequest struct {
	Bio            *string     `json:"bio,omitempty"`
	Subjects       []string    `json:"subjects,omitempty"`
	Education      []Education `json:"education,omitempty"`
	ExperienceYrs  *int        `json:"experienceYears,omitempty"`
	HourlyRateHint *float64    `json:"hourlyRateHint,omitempty"`
}

// VerificationSubmission is the payload for requesting verification.
type VerificationSubmission struct {
	DocumentURLs []string `json:"documentUrls" binding:"required"`
}

// VerificationReview is an admin's decision on a pending request.
type VerificationReview struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason,omitempty"`
}
