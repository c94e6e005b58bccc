package booking

import (
	"context"
	"fmt"
	"time"

	"tutorhub/models"
	"tutorhub/services/tasks"
	"tutorhub/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// CreateBooking quotes the selection, checks the tutor's calendar for an
// exact-slot conflict and persists a pending booking.
func (s *DefaultBookingService) CreateBooking(studentID string, req models.BookingCreateRequest) (*models.Booking, error) {
	quote, err := s.QuoteSelection(models.QuoteRequest{
		CourseID:  req.CourseID,
		Date:      req.Date,
		StartTime: req.StartTime,
	})
	if err != nil {
		return nil, err
	}

	course, err := s.CourseRepo.GetByID(req.CourseID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch course %s: %w", req.CourseID, err)
	}
	if course.TutorID == studentID {
		return nil, NewForbiddenError("tutors cannot book their own courses")
	}

	taken, err := s.Repo.HasActiveAt(course.TutorID, quote.Date, quote.StartTime)
	if err != nil {
		return nil, fmt.Errorf("conflict check failed: %w", err)
	}
	if taken {
		return nil, NewConflictError("the slot was just taken by another booking")
	}

	now := time.Now()
	booking := &models.Booking{
		ID:            uuid.NewString(),
		StudentID:     studentID,
		TutorID:       course.TutorID,
		CourseID:      course.ID,
		CourseTitle:   course.Title,
		Quote:         *quote,
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentUnpaid,
		Note:          req.Note,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Repo.Create(booking); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	s.notify(course.TutorID, "New booking request",
		fmt.Sprintf("%s on %s at %s", course.Title, quote.Date, quote.StartTime), booking.ID)

	utils.GetLogger().Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("tutorID", booking.TutorID),
		zap.Float64("totalAmount", quote.TotalAmount))
	return booking, nil
}

// ConfirmBooking moves a pending booking to confirmed, requests payment and
// schedules a lesson reminder an hour before start.
func (s *DefaultBookingService) ConfirmBooking(tutorID, bookingID string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
	}
	if booking.TutorID != tutorID {
		return nil, NewForbiddenError("only the booked tutor can confirm")
	}
	if !booking.CanBeConfirmed() {
		return nil, NewStateError(fmt.Sprintf("cannot confirm a booking in state %q", booking.Status))
	}

	update := bson.M{"status": models.BookingConfirmed}

	if booking.Quote.TotalAmount > 0 {
		intentID, err := s.requestPayment(booking)
		if err != nil {
			return nil, err
		}
		update["paymentStatus"] = models.PaymentRequested
		update["paymentIntentId"] = intentID
		booking.PaymentStatus = models.PaymentRequested
		booking.PaymentIntentID = intentID
	}

	if err := s.Repo.UpdateSetDocument(bookingID, update); err != nil {
		return nil, fmt.Errorf("failed to update booking %s: %w", bookingID, err)
	}
	booking.Status = models.BookingConfirmed

	s.scheduleReminder(booking)
	s.notify(booking.StudentID, "Booking confirmed",
		fmt.Sprintf("%s on %s at %s", booking.CourseTitle, booking.Quote.Date, booking.Quote.StartTime), booking.ID)

	return booking, nil
}

// CancelBooking lets the student, the tutor, or an admin cancel an active
// booking. Admin cancellations are recorded as tutor-side.
func (s *DefaultBookingService) CancelBooking(actorID, actorRole, bookingID string, req models.CancelRequest) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
	}
	if !booking.CanBeCancelled() {
		return nil, NewStateError(fmt.Sprintf("cannot cancel a booking in state %q", booking.Status))
	}

	var status, counterparty string
	switch {
	case actorID == booking.StudentID:
		status, counterparty = models.BookingCancelledByStudent, booking.TutorID
	case actorID == booking.TutorID, actorRole == models.RoleAdmin:
		status, counterparty = models.BookingCancelledByTutor, booking.StudentID
	default:
		return nil, NewForbiddenError("only a booking participant can cancel")
	}

	now := time.Now()
	update := bson.M{
		"status":             status,
		"cancellationReason": req.Reason,
		"cancelledAt":        now,
	}
	if err := s.Repo.UpdateSetDocument(bookingID, update); err != nil {
		return nil, fmt.Errorf("failed to update booking %s: %w", bookingID, err)
	}
	booking.Status = status
	booking.CancellationReason = req.Reason
	booking.CancelledAt = &now

	s.notify(counterparty, "Booking cancelled",
		fmt.Sprintf("%s on %s at %s was cancelled", booking.CourseTitle, booking.Quote.Date, booking.Quote.StartTime), booking.ID)

	return booking, nil
}

// CompleteBooking marks a confirmed booking as delivered.
func (s *DefaultBookingService) CompleteBooking(tutorID, bookingID string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
	}
	if booking.TutorID != tutorID {
		return nil, NewForbiddenError("only the booked tutor can complete")
	}
	if booking.Status != models.BookingConfirmed {
		return nil, NewStateError(fmt.Sprintf("cannot complete a booking in state %q", booking.Status))
	}

	if err := s.Repo.UpdateSetDocument(bookingID, bson.M{"status": models.BookingCompleted}); err != nil {
		return nil, fmt.Errorf("failed to update booking %s: %w", bookingID, err)
	}
	booking.Status = models.BookingCompleted
	return booking, nil
}

// MarkBookingPaid records a settled payment against the booking.
func (s *DefaultBookingService) MarkBookingPaid(bookingID string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
	}
	if booking.PaymentStatus == models.PaymentPaid {
		return booking, nil
	}

	if err := s.Repo.UpdateSetDocument(bookingID, bson.M{"paymentStatus": models.PaymentPaid}); err != nil {
		return nil, fmt.Errorf("failed to update booking %s: %w", bookingID, err)
	}
	booking.PaymentStatus = models.PaymentPaid

	s.notify(booking.TutorID, "Payment received",
		fmt.Sprintf("Payment settled for %s on %s", booking.CourseTitle, booking.Quote.Date), booking.ID)
	return booking, nil
}

// GetBooking returns a booking visible to the actor. Admins see everything;
// students and tutors see only their own.
func (s *DefaultBookingService) GetBooking(actorID, actorRole, bookingID string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
	}
	if actorRole != models.RoleAdmin && actorID != booking.StudentID && actorID != booking.TutorID {
		return nil, NewForbiddenError("booking is not visible to this account")
	}
	return booking, nil
}

func (s *DefaultBookingService) ListBookings(filter models.BookingFilter) ([]models.Booking, error) {
	bookings, err := s.Repo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// scheduleReminder enqueues a push reminder an hour before the lesson. Best
// effort: scheduling failures are logged, never surfaced to the caller.
func (s *DefaultBookingService) scheduleReminder(booking *models.Booking) {
	if s.QueueClient == nil {
		return
	}

	start, err := time.ParseInLocation("2006-01-02 15:04",
		booking.Quote.Date+" "+booking.Quote.StartTime, time.Local)
	if err != nil {
		utils.GetLogger().Warn("reminder skipped: unparseable lesson start",
			zap.String("bookingID", booking.ID), zap.Error(err))
		return
	}
	fireAt := start.Add(-time.Hour)
	if !fireAt.After(time.Now()) {
		return
	}

	task, err := tasks.NewReminderTask(models.ReminderPayload{
		BookingID: booking.ID,
		UserID:    booking.StudentID,
		Title:     "Upcoming lesson",
		Body:      fmt.Sprintf("%s starts at %s", booking.CourseTitle, booking.Quote.StartTime),
	})
	if err != nil {
		utils.GetLogger().Error("reminder task build failed", zap.Error(err))
		return
	}
	if _, err := s.QueueClient.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		utils.GetLogger().Error("reminder enqueue failed",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}
}

func (s *DefaultBookingService) notify(userID, title, body, bookingID string) {
	if s.Notif == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Notif.SendPushNotification(ctx, userID, title, body,
		map[string]string{"bookingId": bookingID}); err != nil {
		utils.GetLogger().Warn("booking push failed",
			zap.String("userID", userID), zap.Error(err))
	}
}
