package user

import (
	"fmt"

	"tutorhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetUserByID retrieves an account with credentials stripped.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	account, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	account.Sanitize()
	return account, nil
}

// GetUserByEmail retrieves an account by email with credentials stripped.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	account, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if account == nil {
		return nil, fmt.Errorf("no account with email %s", email)
	}
	account.Sanitize()
	return account, nil
}

// UpdateUser applies the provided profile fields and returns the fresh record.
func (s *DefaultUserService) UpdateUser(userID string, req models.UserUpdateRequest) (*models.User, error) {
	update := bson.M{}
	if req.FullName != nil {
		update["fullName"] = *req.FullName
	}
	if req.PhoneNumber != nil {
		update["phoneNumber"] = *req.PhoneNumber
	}
	if req.ProfileImage != nil {
		update["profileImage"] = *req.ProfileImage
	}
	if req.FCMToken != nil {
		update["fcmToken"] = *req.FCMToken
	}
	if len(update) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	if err := s.Repo.UpdateSetDocument(userID, update); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.GetUserByID(userID)
}

// DeleteUser removes the account entirely.
func (s *DefaultUserService) DeleteUser(userID string) error {
	if err := s.Repo.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// GetAllByRole retrieves all accounts with the given role for admin access,
// excluding sensitive fields.
func (s *DefaultUserService) GetAllByRole(role string) ([]models.User, error) {
	users, err := s.Repo.GetAllByRole(role)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}
