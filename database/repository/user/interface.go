package userRepo

import (
	"tutorhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines persistence for platform accounts. Tutor profiles
// are embedded in the user document, so tutor queries live here too.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	// GetByEmail returns (nil, nil) when no account matches.
	GetByEmail(email string) (*models.User, error)
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	UpdateSetDocument(id string, updateDoc bson.M) error
	Delete(id string) error

	GetAllByRole(role string) ([]models.User, error)
	CountByRole(role string) (int64, error)
	ListTutorsByVerification(status string) ([]models.User, error)
	CountTutorsByVerification(status string) (int64, error)
}
