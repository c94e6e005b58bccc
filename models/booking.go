package models

import "time"

// Booking lifecycle states.
const (
	BookingPending            = "pending"
	BookingConfirmed          = "confirmed"
	BookingCompleted          = "completed"
	BookingExpired            = "expired"
	BookingCancelledByStudent = "cancelled_by_student"
	BookingCancelledByTutor   = "cancelled_by_tutor"
)

// Payment states for a booking.
const (
	PaymentUnpaid    = "unpaid"
	PaymentRequested = "requested"
	PaymentPaid      = "paid"
)

// Quote is the derived duration and total for a booking selection, priced
// per hour in VND.
type Quote struct {
	Date          string  `bson:"date" json:"date"`
	StartTime     string  `bson:"startTime" json:"startTime"`
	EndTime       string  `bson:"endTime" json:"endTime"`
	DurationHours float64 `bson:"durationHours" json:"durationHours"`
	HourlyRate    float64 `bson:"hourlyRate" json:"hourlyRate"`
	TotalAmount   float64 `bson:"totalAmount" json:"totalAmount"`
}

// Booking is one student/tutor lesson reservation. Course title and rate are
// denormalized so history survives listing edits.
type Booking struct {
	ID          string `bson:"id" json:"id"`
	StudentID   string `bson:"studentId" json:"studentId"`
	TutorID     string `bson:"tutorId" json:"tutorId"`
	CourseID    string `bson:"courseId" json:"courseId"`
	CourseTitle string `bson:"courseTitle" json:"courseTitle"`

	Quote Quote `bson:"quote" json:"quote"`

	Status          string `bson:"status" json:"status"`
	PaymentStatus   string `bson:"paymentStatus" json:"paymentStatus"`
	PaymentIntentID string `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	Note            string `bson:"note,omitempty" json:"note,omitempty"`

	CancellationReason string     `bson:"cancellationReason,omitempty" json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// IsActive reports whether the booking still occupies the tutor's time.
func (b *Booking) IsActive() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}

// CanBeConfirmed reports whether a tutor may confirm the booking.
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == BookingPending
}

// CanBeCancelled reports whether either party may still cancel.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}

// BookingCreateRequest is a student's booking selection against a course.
type BookingCreateRequest struct {
	CourseID  string `json:"courseId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	Note      string `json:"note"`
}

// QuoteRequest asks for price/end-time resolution without persisting.
type QuoteRequest struct {
	CourseID  string `json:"courseId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
}

// CancelRequest carries the cancelling party's reason.
type CancelRequest struct {
	Reason string `json:"reason"`
}

// BookingFilter narrows booking listings.
type BookingFilter struct {
	StudentID string
	TutorID   string
	Status    string
	FromDate  string
	ToDate    string
}
