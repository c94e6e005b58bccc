package storage

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"mime/multipart"
	"time"

	"tutorhub/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService defines document storage for tutor verification uploads.
type StorageService interface {
	// UploadVerificationDoc stores an uploaded document under the tutor's
	// folder and returns its permanent public ID.
	UploadVerificationDoc(ctx context.Context, tutorID string, file *multipart.FileHeader) (string, error)
	DeleteFile(ctx context.Context, publicID string) error

	// GetSecureDownloadURL returns a signed, short-lived URL for an
	// authenticated resource. Admin review uses these.
	GetSecureDownloadURL(publicID string, expires time.Duration) (string, error)
}

// CloudinaryStorageService implements StorageService on Cloudinary.
type CloudinaryStorageService struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	apiSecret string
}

// NewCloudinaryStorageService builds the service from app configuration.
func NewCloudinaryStorageService() (*CloudinaryStorageService, error) {
	cfg := config.AppConfig
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &CloudinaryStorageService{
		cld:       cld,
		cloudName: cfg.CloudinaryCloudName,
		apiSecret: cfg.CloudinaryAPISecret,
	}, nil
}

func (s *CloudinaryStorageService) UploadVerificationDoc(ctx context.Context, tutorID string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	result, err := s.cld.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder: "verification/" + tutorID,
		Type:   "authenticated",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload verification document: %w", err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("upload returned no public ID")
	}
	return result.PublicID, nil
}

func (s *CloudinaryStorageService) DeleteFile(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete file %s: %w", publicID, err)
	}
	return nil
}

// GetSecureDownloadURL signs "expires_at" and "public_id" with the API
// secret using SHA-1, matching Cloudinary's authenticated URL scheme.
func (s *CloudinaryStorageService) GetSecureDownloadURL(publicID string, expires time.Duration) (string, error) {
	expiresAt := time.Now().Add(expires).Unix()
	stringToSign := fmt.Sprintf("expires_at=%d&public_id=%s%s", expiresAt, publicID, s.apiSecret)
	signature := computeSHA1(stringToSign)
	return fmt.Sprintf("https://res.cloudinary.com/%s/image/authenticated/s--%s--/expires_%d/%s",
		s.cloudName, signature, expiresAt, publicID), nil
}

func computeSHA1(input string) string {
	h := sha1.New()
	h.Write([]byte(input))
	return hex.EncodeToString(h.Sum(nil))
}
