package models

import "time"

// PlatformReport is the admin dashboard snapshot.
type PlatformReport struct {
	TotalStudents   int64 `json:"totalStudents"`
	TotalTutors     int64 `json:"totalTutors"`
	PendingTutors   int64 `json:"pendingTutors"`
	ActiveCourses   int64 `json:"activeCourses"`
	TotalBookings   int64 `json:"totalBookings"`
	BookingsByState map[string]int64 `json:"bookingsByState"`

	// CompletedRevenue sums the quoted totals of completed bookings, VND.
	CompletedRevenue float64 `json:"completedRevenue"`

	GeneratedAt time.Time `json:"generatedAt"`
}

// ReminderPayload is the asynq task body for lesson reminders.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	UserID    string `json:"userId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
}
