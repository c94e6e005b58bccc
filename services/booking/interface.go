package booking

import (
	bookingRepo "tutorhub/database/repository/booking"
	courseRepo "tutorhub/database/repository/course"
	userRepo "tutorhub/database/repository/user"
	"tutorhub/models"
	"tutorhub/services/notification"

	"github.com/hibiken/asynq"
)

// BookingService defines quoting and the booking lifecycle.
type BookingService interface {
	// QuoteSelection resolves a date/start-time selection against the
	// tutor's published availability and prices it, without persisting.
	QuoteSelection(req models.QuoteRequest) (*models.Quote, error)

	CreateBooking(studentID string, req models.BookingCreateRequest) (*models.Booking, error)
	ConfirmBooking(tutorID, bookingID string) (*models.Booking, error)
	CancelBooking(actorID, actorRole, bookingID string, req models.CancelRequest) (*models.Booking, error)
	CompleteBooking(tutorID, bookingID string) (*models.Booking, error)
	MarkBookingPaid(bookingID string) (*models.Booking, error)

	GetBooking(actorID, actorRole, bookingID string) (*models.Booking, error)
	ListBookings(filter models.BookingFilter) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo       bookingRepo.BookingRepository
	CourseRepo courseRepo.CourseRepository
	UserRepo   userRepo.UserRepository
	Notif      notification.NotificationService

	// QueueClient schedules lesson reminder tasks. Optional; when nil,
	// bookings are confirmed without a reminder.
	QueueClient *asynq.Client
}
