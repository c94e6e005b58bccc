package admin

import (
	"context"
	"fmt"
	"time"

	bookingRepo "tutorhub/database/repository/booking"
	courseRepo "tutorhub/database/repository/course"
	userRepo "tutorhub/database/repository/user"
	"tutorhub/models"
	"tutorhub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// AdminService defines platform administration operations.
type AdminService interface {
	PlatformReport() (*models.PlatformReport, error)
	SetAccountSuspended(userID string, suspended bool) error
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	UserRepo    userRepo.UserRepository
	CourseRepo  courseRepo.CourseRepository
	BookingRepo bookingRepo.BookingRepository
}

// PlatformReport assembles the dashboard snapshot from account counts,
// course counts and booking aggregates.
func (s *DefaultAdminService) PlatformReport() (*models.PlatformReport, error) {
	students, err := s.UserRepo.CountByRole(models.RoleStudent)
	if err != nil {
		return nil, fmt.Errorf("failed to count students: %w", err)
	}
	tutors, err := s.UserRepo.CountByRole(models.RoleTutor)
	if err != nil {
		return nil, fmt.Errorf("failed to count tutors: %w", err)
	}
	pending, err := s.UserRepo.CountTutorsByVerification(models.VerificationPending)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending tutors: %w", err)
	}
	activeCourses, err := s.CourseRepo.CountByStatus(models.CourseActive)
	if err != nil {
		return nil, fmt.Errorf("failed to count active courses: %w", err)
	}
	totalBookings, err := s.BookingRepo.CountAll()
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}
	byState, err := s.BookingRepo.StatusCounts()
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate booking states: %w", err)
	}
	revenue, err := s.BookingRepo.SumCompletedRevenue()
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue: %w", err)
	}

	return &models.PlatformReport{
		TotalStudents:    students,
		TotalTutors:      tutors,
		PendingTutors:    pending,
		ActiveCourses:    activeCourses,
		TotalBookings:    totalBookings,
		BookingsByState:  byState,
		CompletedRevenue: revenue,
		GeneratedAt:      time.Now(),
	}, nil
}

// SetAccountSuspended toggles platform access for an account. Suspension
// also revokes the active session.
func (s *DefaultAdminService) SetAccountSuspended(userID string, suspended bool) error {
	account, err := s.UserRepo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("failed to fetch account %s: %w", userID, err)
	}
	if account.Role == models.RoleAdmin {
		return fmt.Errorf("admin accounts cannot be suspended")
	}

	update := bson.M{"suspended": suspended}
	if suspended {
		update["security.tokenHash"] = ""
	}
	if err := s.UserRepo.UpdateSetDocument(userID, update); err != nil {
		return fmt.Errorf("failed to update account %s: %w", userID, err)
	}
	if suspended {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := utils.DropAuthToken(ctx, userID); err != nil {
			utils.GetLogger().Warn("failed to drop cached token",
				zap.String("userID", userID), zap.Error(err))
		}
	}
	return nil
}
