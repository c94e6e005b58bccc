package user

import (
	"context"
	"fmt"
	"time"

	"tutorhub/models"
	"tutorhub/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// Register validates the payload, hashes the password, persists the account,
// and returns a signed session token. Tutor accounts start unverified.
func (s *DefaultUserService) Register(req models.RegisterRequest) (*AuthResponse, error) {
	if req.Role != models.RoleStudent && req.Role != models.RoleTutor {
		return nil, fmt.Errorf("role must be %q or %q", models.RoleStudent, models.RoleTutor)
	}
	if err := VerifyPasswordComplexity(req.Password); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing account", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	userObj := models.User{
		ID:          uuid.NewString(),
		Role:        req.Role,
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Security:    models.Security{PasswordHash: string(hashedPassword)},
	}
	if req.Role == models.RoleTutor {
		userObj.TutorProfile = &models.TutorProfile{
			Verification: models.Verification{Status: models.VerificationUnverified},
		}
	}

	if err := s.Repo.Create(&userObj); err != nil {
		utils.GetLogger().Error("Register: failed to persist account", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueToken(&userObj)
}

// Authenticate verifies credentials and returns a fresh session token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	account, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if account == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if account.Suspended {
		return nil, fmt.Errorf("this account has been suspended")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Security.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueToken(account)
}

// issueToken mints a JWT, stores its hash on the account and in the auth
// cache, and builds the response.
func (s *DefaultUserService) issueToken(account *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(account.ID, account.Role, tokenTTL)
	if err != nil {
		utils.GetLogger().Error("issueToken: failed to sign token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateSetDocument(account.ID, bson.M{"security.tokenHash": tokenHash}); err != nil {
		utils.GetLogger().Error("issueToken: failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if err := utils.CacheAuthToken(context.Background(), account.ID, tokenHash, time.Hour); err != nil {
		utils.GetLogger().Warn("issueToken: failed to cache token hash", zap.Error(err))
	}

	return &AuthResponse{
		ID:           account.ID,
		Role:         account.Role,
		Token:        token,
		FullName:     account.FullName,
		Email:        account.Email,
		ProfileImage: account.ProfileImage,
	}, nil
}

// RevokeAuthToken invalidates the account's current session.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"security.tokenHash": ""}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	if err := utils.DropAuthToken(context.Background(), userID); err != nil {
		utils.GetLogger().Warn("RevokeAuthToken: failed to evict cached token", zap.Error(err))
	}
	return nil
}

// UpdatePassword verifies the current password before storing a new hash and
// revoking the active session.
func (s *DefaultUserService) UpdatePassword(userID, currentPassword, newPassword string) error {
	account, err := s.Repo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("failed to fetch account: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.Security.PasswordHash), []byte(currentPassword)); err != nil {
		return fmt.Errorf("current password is incorrect")
	}
	if err := VerifyPasswordComplexity(newPassword); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"security.passwordHash": string(hashed)}); err != nil {
		return fmt.Errorf("failed to store new password: %w", err)
	}
	return s.RevokeAuthToken(userID)
}

// RequestPasswordReset sends a reset OTP to the account's address. Unknown
// addresses do not leak: the call succeeds either way.
func (s *DefaultUserService) RequestPasswordReset(email string) error {
	account, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("RequestPasswordReset: lookup failed", zap.Error(err))
		return fmt.Errorf("failed to start password reset, please try again")
	}
	if account == nil {
		utils.GetLogger().Info("RequestPasswordReset: unknown email", zap.String("email", email))
		return nil
	}
	return utils.InitiatePasswordResetOTP(email)
}

// ResetPassword verifies the OTP and stores the new password hash.
func (s *DefaultUserService) ResetPassword(email, providedOTP, newPassword string) error {
	account, err := s.Repo.GetByEmail(email)
	if err != nil || account == nil {
		return fmt.Errorf("password reset failed")
	}
	if err := utils.VerifyPasswordResetOTP(email, providedOTP); err != nil {
		return fmt.Errorf("password reset failed: %w", err)
	}
	if err := VerifyPasswordComplexity(newPassword); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}
	if err := s.Repo.UpdateSetDocument(account.ID, bson.M{"security.passwordHash": string(hashed)}); err != nil {
		return fmt.Errorf("failed to store new password: %w", err)
	}
	return s.RevokeAuthToken(account.ID)
}

// VerifyPasswordComplexity enforces the minimum password policy.
func VerifyPasswordComplexity(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	return nil
}
