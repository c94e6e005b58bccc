package course

import (
	courseRepo "tutorhub/database/repository/course"
	userRepo "tutorhub/database/repository/user"
	"tutorhub/models"
)

// CourseService manages tutor course listings and the public catalogue.
type CourseService interface {
	CreateCourse(tutorID string, req models.CourseCreateRequest) (*models.Course, error)
	UpdateCourse(tutorID, courseID string, req models.CourseUpdateRequest) (*models.Course, error)
	RemoveCourse(tutorID, courseID string) error
	GetCourseByID(courseID string) (*models.Course, error)
	ListByTutor(tutorID string) ([]models.Course, error)
	Search(filter models.CourseFilter) ([]models.Course, error)
}

// DefaultCourseService is the production implementation.
type DefaultCourseService struct {
	Repo     courseRepo.CourseRepository
	UserRepo userRepo.UserRepository
}
