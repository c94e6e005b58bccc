package bookingRepo

import (
	"tutorhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingRepository defines persistence for lesson bookings.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	UpdateSetDocument(id string, updateDoc bson.M) error
	List(filter models.BookingFilter) ([]models.Booking, error)

	// HasActiveAt reports whether the tutor already holds an active booking
	// at the exact date and start time.
	HasActiveAt(tutorID, date, startTime string) (bool, error)

	// ListActiveBefore returns active bookings whose date is strictly before
	// the given YYYY-MM-DD key. Used by the nightly sweeper.
	ListActiveBefore(dateKey string) ([]models.Booking, error)

	CountAll() (int64, error)
	StatusCounts() (map[string]int64, error)
	SumCompletedRevenue() (float64, error)
}
