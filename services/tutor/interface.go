package tutor

import (
	userRepo "tutorhub/database/repository/user"
	"tutorhub/models"
)

// TutorService manages tutor profiles, their availability payloads, and the
// verification workflow.
type TutorService interface {
	GetTutorByID(tutorID string) (*models.User, error)
	UpdateProfile(tutorID string, req models.TutorUpdateRequest) (*models.User, error)

	// Availability management. The payload is stored verbatim; it only has
	// to be JSON the resolver can decode, and even that is enforced softly.
	SetAvailability(tutorID string, raw string) error
	GetAvailability(tutorID string) (models.AvailabilityView, error)

	// Verification workflow.
	SubmitVerification(tutorID string, req models.VerificationSubmission) error
	ReviewVerification(tutorID, adminID string, review models.VerificationReview) error
	ListPendingVerifications() ([]models.User, error)
}

// DefaultTutorService is the production implementation.
type DefaultTutorService struct {
	Repo userRepo.UserRepository
}
