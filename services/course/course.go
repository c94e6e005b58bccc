package course

import (
	"fmt"

	"tutorhub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// CreateCourse publishes a new listing for an approved tutor. Rates are per
// hour in VND; zero means "contact for price".
func (s *DefaultCourseService) CreateCourse(tutorID string, req models.CourseCreateRequest) (*models.Course, error) {
	tutorAcc, err := s.UserRepo.GetByID(tutorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tutor: %w", err)
	}
	if !tutorAcc.IsTutor() || tutorAcc.TutorProfile == nil {
		return nil, fmt.Errorf("account %s is not a tutor", tutorID)
	}
	if !tutorAcc.TutorProfile.IsApproved() {
		return nil, fmt.Errorf("only verified tutors can publish courses")
	}
	if req.HourlyRate < 0 {
		return nil, fmt.Errorf("hourlyRate must not be negative")
	}

	courseObj := models.Course{
		ID:          uuid.NewString(),
		TutorID:     tutorID,
		Title:       req.Title,
		Subject:     req.Subject,
		Level:       req.Level,
		Description: req.Description,
		HourlyRate:  req.HourlyRate,
		Status:      models.CourseActive,
	}
	if err := s.Repo.Create(&courseObj); err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}
	return &courseObj, nil
}

// UpdateCourse applies the provided listing fields. Only the owner may edit.
func (s *DefaultCourseService) UpdateCourse(tutorID, courseID string, req models.CourseUpdateRequest) (*models.Course, error) {
	courseObj, err := s.Repo.GetByID(courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch course: %w", err)
	}
	if courseObj.TutorID != tutorID {
		return nil, fmt.Errorf("course %s does not belong to tutor %s", courseID, tutorID)
	}

	update := bson.M{}
	if req.Title != nil {
		update["title"] = *req.Title
	}
	if req.Subject != nil {
		update["subject"] = *req.Subject
	}
	if req.Level != nil {
		update["level"] = *req.Level
	}
	if req.Description != nil {
		update["description"] = *req.Description
	}
	if req.HourlyRate != nil {
		if *req.HourlyRate < 0 {
			return nil, fmt.Errorf("hourlyRate must not be negative")
		}
		update["hourlyRate"] = *req.HourlyRate
	}
	if req.Status != nil {
		if *req.Status != models.CourseActive && *req.Status != models.CoursePaused {
			return nil, fmt.Errorf("status must be %q or %q", models.CourseActive, models.CoursePaused)
		}
		update["status"] = *req.Status
	}
	if len(update) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	if err := s.Repo.UpdateSetDocument(courseID, update); err != nil {
		return nil, fmt.Errorf("failed to update course: %w", err)
	}
	return s.Repo.GetByID(courseID)
}

// RemoveCourse retires a listing. History keeps the document around since
// bookings denormalize from it.
func (s *DefaultCourseService) RemoveCourse(tutorID, courseID string) error {
	courseObj, err := s.Repo.GetByID(courseID)
	if err != nil {
		return fmt.Errorf("failed to fetch course: %w", err)
	}
	if courseObj.TutorID != tutorID {
		return fmt.Errorf("course %s does not belong to tutor %s", courseID, tutorID)
	}
	if err := s.Repo.UpdateSetDocument(courseID, bson.M{"status": models.CourseRemoved}); err != nil {
		return fmt.Errorf("failed to remove course: %w", err)
	}
	return nil
}

// GetCourseByID retrieves one listing.
func (s *DefaultCourseService) GetCourseByID(courseID string) (*models.Course, error) {
	courseObj, err := s.Repo.GetByID(courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch course: %w", err)
	}
	return courseObj, nil
}

// ListByTutor retrieves a tutor's own listings, all states included.
func (s *DefaultCourseService) ListByTutor(tutorID string) ([]models.Course, error) {
	return s.Repo.ListByTutor(tutorID)
}

// Search runs a public catalogue query over active listings.
func (s *DefaultCourseService) Search(filter models.CourseFilter) ([]models.Course, error) {
	return s.Repo.Search(filter)
}
