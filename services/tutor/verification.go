package tutor

import (
	"fmt"
	"time"

	"tutorhub/models"
	"tutorhub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// SubmitVerification files a verification request with the uploaded document
// references. Allowed from the unverified and rejected states.
func (s *DefaultTutorService) SubmitVerification(tutorID string, req models.VerificationSubmission) error {
	account, err := s.GetTutorByID(tutorID)
	if err != nil {
		return err
	}
	if len(req.DocumentURLs) == 0 {
		return fmt.Errorf("at least one document is required")
	}
	if !account.TutorProfile.CanSubmitVerification() {
		return fmt.Errorf("verification is already %s", account.TutorProfile.Verification.Status)
	}

	update := bson.M{
		"tutorProfile.verification.status":          models.VerificationPending,
		"tutorProfile.verification.documentUrls":    req.DocumentURLs,
		"tutorProfile.verification.rejectionReason": "",
		"tutorProfile.verification.submittedAt":     time.Now(),
	}
	if err := s.Repo.UpdateSetDocument(tutorID, update); err != nil {
		return fmt.Errorf("failed to submit verification: %w", err)
	}

	utils.GetLogger().Info("verification submitted",
		zap.String("tutorID", tutorID), zap.Int("documents", len(req.DocumentURLs)))
	return nil
}

// ReviewVerification records an admin decision on a pending request.
func (s *DefaultTutorService) ReviewVerification(tutorID, adminID string, review models.VerificationReview) error {
	account, err := s.GetTutorByID(tutorID)
	if err != nil {
		return err
	}
	if account.TutorProfile.Verification.Status != models.VerificationPending {
		return fmt.Errorf("tutor %s has no pending verification", tutorID)
	}
	if !review.Approve && review.Reason == "" {
		return fmt.Errorf("a rejection requires a reason")
	}

	status := models.VerificationApproved
	if !review.Approve {
		status = models.VerificationRejected
	}

	update := bson.M{
		"tutorProfile.verification.status":          status,
		"tutorProfile.verification.rejectionReason": review.Reason,
		"tutorProfile.verification.reviewedAt":      time.Now(),
		"tutorProfile.verification.reviewedBy":      adminID,
	}
	if err := s.Repo.UpdateSetDocument(tutorID, update); err != nil {
		return fmt.Errorf("failed to record verification review: %w", err)
	}

	utils.GetLogger().Info("verification reviewed",
		zap.String("tutorID", tutorID), zap.String("status", status), zap.String("by", adminID))
	return nil
}

// ListPendingVerifications returns the admin review queue.
func (s *DefaultTutorService) ListPendingVerifications() ([]models.User, error) {
	tutors, err := s.Repo.ListTutorsByVerification(models.VerificationPending)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pending verifications: %w", err)
	}
	return tutors, nil
}
