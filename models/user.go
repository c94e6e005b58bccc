package models

import "time"

// Roles a platform account can hold.
const (
	RoleStudent = "student"
	RoleTutor   = "tutor"
	RoleAdmin   = "admin"
)

// Security holds credentials material. Plaintext fields never reach Mongo;
// hashes never reach JSON.
type Security struct {
	Password     string `bson:"-" json:"password,omitempty"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Token        string `bson:"-" json:"token,omitempty"`
	TokenHash    string `bson:"tokenHash,omitempty" json:"-"`
}

// User represents a platform account, student or tutor. Tutors additionally
// carry a TutorProfile.
type User struct {
	ID           string        `bson:"id" json:"id"`
	Role         string        `bson:"role" json:"role"`
	FullName     string        `bson:"fullName" json:"fullName"`
	Email        string        `bson:"email" json:"email"`
	PhoneNumber  string        `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	ProfileImage string        `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	Security     Security      `bson:"security" json:"security,omitzero"`
	FCMToken     string        `bson:"fcmToken,omitempty" json:"fcmToken,omitempty"`
	TutorProfile *TutorProfile `bson:"tutorProfile,omitempty" json:"tutorProfile,omitempty"`
	Suspended    bool          `bson:"suspended" json:"suspended,omitempty"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// IsTutor reports whether the account is a tutor account.
func (u *User) IsTutor() bool {
	return u.Role == RoleTutor
}

// Sanitize strips credential material before the record leaves the service.
func (u *User) Sanitize() {
	u.Security = Security{}
}

// RegisterRequest is the payload for account creation.
type RegisterRequest struct {
	Role        string `json:"role" binding:"required"`
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password" binding:"required"`
}

// AuthRequest is the payload for email/password sign-in.
type AuthRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserUpdateRequest carries the mutable profile fields.
type UserUpdateRequest struct {
	FullName     *string `json:"fullName,omitempty"`
	PhoneNumber  *string `json:"phoneNumber,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
	FCMToken     *string `json:"fcmToken,omitempty"`
}
