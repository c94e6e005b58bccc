package user

import (
	userRepo "tutorhub/database/repository/user"
	"tutorhub/models"
)

// UserService defines account management for students and tutors.
type UserService interface {
	// Registration & authentication
	Register(req models.RegisterRequest) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	RevokeAuthToken(userID string) error
	UpdatePassword(userID, currentPassword, newPassword string) error

	// Password reset
	RequestPasswordReset(email string) error
	ResetPassword(email, providedOTP, newPassword string) error

	// Account management
	GetUserByID(userID string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(userID string, req models.UserUpdateRequest) (*models.User, error)
	DeleteUser(userID string) error

	// Admin / utility
	GetAllByRole(role string) ([]models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// AuthResponse contains the account's ID, role, and session token.
type AuthResponse struct {
	ID           string `json:"id"`
	Role         string `json:"role"`
	Token        string `json:"token"`
	FullName     string `json:"fullName,omitempty"`
	Email        string `json:"email,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}
