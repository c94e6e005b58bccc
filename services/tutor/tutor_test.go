package tutor

import (
	"fmt"
	"testing"

	"tutorhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type stubUserRepo struct {
	users   map[string]*models.User
	updates []bson.M
}

func (s *stubUserRepo) Create(u *models.User) error { s.users[u.ID] = u; return nil }
func (s *stubUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s not found", id)
	}
	cp := *u
	return &cp, nil
}
func (s *stubUserRepo) GetByEmail(string) (*models.User, error) { return nil, nil }
func (s *stubUserRepo) GetByIDWithProjection(id string, _ bson.M) (*models.User, error) {
	return s.GetByID(id)
}
func (s *stubUserRepo) UpdateSetDocument(id string, doc bson.M) error {
	s.updates = append(s.updates, doc)
	if raw, ok := doc["tutorProfile.availability"].(string); ok {
		s.users[id].TutorProfile.Availability = raw
	}
	return nil
}
func (s *stubUserRepo) Delete(string) error { return nil }
func (s *stubUserRepo) GetAllByRole(string) ([]models.User, error) { return nil, nil }
func (s *stubUserRepo) CountByRole(string) (int64, error) { return 0, nil }
func (s *stubUserRepo) ListTutorsByVerification(string) ([]models.User, error) { return nil, nil }
func (s *stubUserRepo) CountTutorsByVerification(string) (int64, error) { return 0, nil }

func newStubRepo() *stubUserRepo {
	return &stubUserRepo{users: map[string]*models.User{
		"tutor-1": {
			ID:           "tutor-1",
			Role:         models.RoleTutor,
			TutorProfile: &models.TutorProfile{},
		},
		"student-1": {ID: "student-1", Role: models.RoleStudent},
	}}
}

func TestGetTutorRejectsNonTutorAccounts(t *testing.T) {
	svc := &DefaultTutorService{Repo: newStubRepo()}

	_, err := svc.GetTutorByID("student-1")
	assert.Error(t, err)
}

func TestSetAvailabilityStoresPayloadVerbatim(t *testing.T) {
	repo := newStubRepo()
	svc := &DefaultTutorService{Repo: repo}

	payload := `[{"type":"specific","date":"2099-03-01","startTime":"08:00","endTime":"09:00"}]`
	require.NoError(t, svc.SetAvailability("tutor-1", payload))
	assert.Equal(t, payload, repo.users["tutor-1"].TutorProfile.Availability)
}

func TestSetAvailabilityAcceptsUndecodablePayload(t *testing.T) {
	repo := newStubRepo()
	svc := &DefaultTutorService{Repo: repo}

	// Tutor-entered garbage is stored anyway; it just presents no slots.
	require.NoError(t, svc.SetAvailability("tutor-1", "{broken"))
	assert.Equal(t, "{broken", repo.users["tutor-1"].TutorProfile.Availability)

	view, err := svc.GetAvailability("tutor-1")
	require.NoError(t, err)
	assert.Empty(t, view.Dates)
}

func TestGetAvailabilityProjectsResolvedWindows(t *testing.T) {
	repo := newStubRepo()
	svc := &DefaultTutorService{Repo: repo}

	payload := `[
		{"type":"specific","date":"2099-03-02","startTime":"10:00","endTime":"11:30"},
		{"type":"specific","date":"2099-03-01","startTime":"08:00","endTime":"09:00"},
		{"type":"weekly","date":"2099-03-03","startTime":"08:00","endTime":"09:00"}
	]`
	require.NoError(t, svc.SetAvailability("tutor-1", payload))

	view, err := svc.GetAvailability("tutor-1")
	require.NoError(t, err)

	assert.Equal(t, "tutor-1", view.TutorID)
	assert.Equal(t, []string{"2099-03-01", "2099-03-02"}, view.Dates)
	require.Len(t, view.Windows["2099-03-02"], 1)
	assert.Equal(t, "11:30", view.Windows["2099-03-02"][0].EndTime)
}

func TestReviewVerificationRequiresPendingState(t *testing.T) {
	repo := newStubRepo()
	repo.users["tutor-1"].TutorProfile.Verification.Status = models.VerificationUnverified
	svc := &DefaultTutorService{Repo: repo}

	err := svc.ReviewVerification("tutor-1", "admin-1", models.VerificationReview{Approve: true})
	assert.Error(t, err)
}

func TestReviewVerificationRejectionNeedsReason(t *testing.T) {
	repo := newStubRepo()
	repo.users["tutor-1"].TutorProfile.Verification.Status = models.VerificationPending
	svc := &DefaultTutorService{Repo: repo}

	err := svc.ReviewVerification("tutor-1", "admin-1", models.VerificationReview{Approve: false})
	assert.Error(t, err)

	err = svc.ReviewVerification("tutor-1", "admin-1",
		models.VerificationReview{Approve: false, Reason: "documents unreadable"})
	assert.NoError(t, err)
}
