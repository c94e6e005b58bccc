package courseRepo

import (
	"tutorhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// CourseRepository defines persistence for course listings.
type CourseRepository interface {
	Create(course *models.Course) error
	GetByID(id string) (*models.Course, error)
	UpdateSetDocument(id string, updateDoc bson.M) error
	ListByTutor(tutorID string) ([]models.Course, error)
	Search(filter models.CourseFilter) ([]models.Course, error)
	CountByStatus(status string) (int64, error)
}
