package booking

import (
	"errors"
	"fmt"
	"testing"

	"tutorhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

const futureDate = "2099-06-10"

var tutorAvailability = fmt.Sprintf(`[
	{"type":"specific","date":"%s","startTime":"09:00","endTime":"10:30"},
	{"type":"specific","date":"%s","startTime":"14:00","endTime":"15:00"}
]`, futureDate, futureDate)

// --- in-memory fakes ---

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) Create(u *models.User) error { f.users[u.ID] = u; return nil }
func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s not found", id)
	}
	cp := *u
	return &cp, nil
}
func (f *fakeUserRepo) GetByEmail(string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) GetByIDWithProjection(id string, _ bson.M) (*models.User, error) {
	return f.GetByID(id)
}
func (f *fakeUserRepo) UpdateSetDocument(string, bson.M) error { return nil }
func (f *fakeUserRepo) Delete(string) error { return nil }
func (f *fakeUserRepo) GetAllByRole(string) ([]models.User, error) { return nil, nil }
func (f *fakeUserRepo) CountByRole(string) (int64, error) { return 0, nil }
func (f *fakeUserRepo) ListTutorsByVerification(string) ([]models.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) CountTutorsByVerification(string) (int64, error) { return 0, nil }

type fakeCourseRepo struct {
	courses map[string]*models.Course
}

func (f *fakeCourseRepo) Create(c *models.Course) error { f.courses[c.ID] = c; return nil }
func (f *fakeCourseRepo) GetByID(id string) (*models.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, fmt.Errorf("course %s not found", id)
	}
	cp := *c
	return &cp, nil
}
func (f *fakeCourseRepo) UpdateSetDocument(string, bson.M) error { return nil }
func (f *fakeCourseRepo) ListByTutor(string) ([]models.Course, error) { return nil, nil }
func (f *fakeCourseRepo) Search(models.CourseFilter) ([]models.Course, error) { return nil, nil }
func (f *fakeCourseRepo) CountByStatus(string) (int64, error) { return 0, nil }

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}
func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %s not found", id)
	}
	cp := *b
	return &cp, nil
}
func (f *fakeBookingRepo) UpdateSetDocument(id string, doc bson.M) error {
	b, ok := f.bookings[id]
	if !ok {
		return fmt.Errorf("booking %s not found", id)
	}
	if v, ok := doc["status"].(string); ok {
		b.Status = v
	}
	if v, ok := doc["paymentStatus"].(string); ok {
		b.PaymentStatus = v
	}
	if v, ok := doc["cancellationReason"].(string); ok {
		b.CancellationReason = v
	}
	return nil
}
func (f *fakeBookingRepo) List(models.BookingFilter) ([]models.Booking, error) { return nil, nil }
func (f *fakeBookingRepo) HasActiveAt(tutorID, date, startTime string) (bool, error) {
	for _, b := range f.bookings {
		if b.TutorID == tutorID && b.Quote.Date == date && b.Quote.StartTime == startTime && b.IsActive() {
			return true, nil
		}
	}
	return false, nil
}
func (f *fakeBookingRepo) ListActiveBefore(dateKey string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Quote.Date < dateKey && b.IsActive() {
			out = append(out, *b)
		}
	}
	return out, nil
}
func (f *fakeBookingRepo) CountAll() (int64, error) { return int64(len(f.bookings)), nil }
func (f *fakeBookingRepo) StatusCounts() (map[string]int64, error) { return nil, nil }
func (f *fakeBookingRepo) SumCompletedRevenue() (float64, error) { return 0, nil }

func newTestService(hourlyRate float64) (*DefaultBookingService, *fakeBookingRepo) {
	users := &fakeUserRepo{users: map[string]*models.User{
		"tutor-1": {
			ID:   "tutor-1",
			Role: models.RoleTutor,
			TutorProfile: &models.TutorProfile{
				Availability: tutorAvailability,
				Verification: models.Verification{Status: models.VerificationApproved},
			},
		},
		"student-1": {ID: "student-1", Role: models.RoleStudent},
	}}
	courses := &fakeCourseRepo{courses: map[string]*models.Course{
		"course-1": {
			ID:         "course-1",
			TutorID:    "tutor-1",
			Title:      "IELTS Writing",
			HourlyRate: hourlyRate,
			Status:     models.CourseActive,
		},
	}}
	bookings := &fakeBookingRepo{bookings: map[string]*models.Booking{}}
	return &DefaultBookingService{
		Repo:       bookings,
		CourseRepo: courses,
		UserRepo:   users,
	}, bookings
}

func bookingErrCode(t *testing.T, err error) string {
	t.Helper()
	var bErr *BookingError
	require.ErrorAs(t, err, &bErr)
	return bErr.Code
}

// --- quoting ---

func TestQuoteSelectionResolvesDeclaredWindow(t *testing.T) {
	svc, _ := newTestService(200000)

	quote, err := svc.QuoteSelection(models.QuoteRequest{
		CourseID:  "course-1",
		Date:      futureDate,
		StartTime: "09:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "10:30", quote.EndTime)
	assert.Equal(t, 1.5, quote.DurationHours)
	assert.Equal(t, float64(300000), quote.TotalAmount)
}

func TestQuoteSelectionRejectsUnknownDate(t *testing.T) {
	svc, _ := newTestService(200000)

	_, err := svc.QuoteSelection(models.QuoteRequest{
		CourseID:  "course-1",
		Date:      "2099-07-01",
		StartTime: "09:00",
	})
	assert.Equal(t, "slotUnavailable", bookingErrCode(t, err))
}

func TestQuoteSelectionRejectsUnknownStartTime(t *testing.T) {
	svc, _ := newTestService(200000)

	_, err := svc.QuoteSelection(models.QuoteRequest{
		CourseID:  "course-1",
		Date:      futureDate,
		StartTime: "11:00",
	})
	assert.Equal(t, "slotUnavailable", bookingErrCode(t, err))
}

func TestQuoteSelectionRejectsPausedCourse(t *testing.T) {
	svc, _ := newTestService(200000)
	repo := svc.CourseRepo.(*fakeCourseRepo)
	repo.courses["course-1"].Status = models.CoursePaused

	_, err := svc.QuoteSelection(models.QuoteRequest{
		CourseID:  "course-1",
		Date:      futureDate,
		StartTime: "09:00",
	})
	assert.Equal(t, "notBookable", bookingErrCode(t, err))
}

func TestQuoteSelectionTreatsMalformedAvailabilityAsNoSlots(t *testing.T) {
	svc, _ := newTestService(200000)
	users := svc.UserRepo.(*fakeUserRepo)
	users.users["tutor-1"].TutorProfile.Availability = "{not json"

	_, err := svc.QuoteSelection(models.QuoteRequest{
		CourseID:  "course-1",
		Date:      futureDate,
		StartTime: "09:00",
	})
	assert.Equal(t, "slotUnavailable", bookingErrCode(t, err))
}

// --- lifecycle ---

func TestCreateBookingPersistsPendingWithQuote(t *testing.T) {
	svc, repo := newTestService(200000)

	bk, err := svc.CreateBooking("student-1", models.BookingCreateRequest{
		CourseID:  "course-1",
		Date:      futureDate,
		StartTime: "14:00",
	})
	require.NoError(t, err)

	assert.Equal(t, models.BookingPending, bk.Status)
	assert.Equal(t, models.PaymentUnpaid, bk.PaymentStatus)
	assert.Equal(t, "15:00", bk.Quote.EndTime)
	assert.Equal(t, float64(200000), bk.Quote.TotalAmount)
	assert.Equal(t, "IELTS Writing", bk.CourseTitle)

	stored, err := repo.GetByID(bk.ID)
	require.NoError(t, err)
	assert.Equal(t, bk.Quote, stored.Quote)
}

func TestCreateBookingRejectsTakenSlot(t *testing.T) {
	svc, _ := newTestService(200000)

	_, err := svc.CreateBooking("student-1", models.BookingCreateRequest{
		CourseID: "course-1", Date: futureDate, StartTime: "09:00",
	})
	require.NoError(t, err)

	_, err = svc.CreateBooking("student-1", models.BookingCreateRequest{
		CourseID: "course-1", Date: futureDate, StartTime: "09:00",
	})
	assert.Equal(t, "conflict", bookingErrCode(t, err))
}

func TestCreateBookingRejectsOwnCourse(t *testing.T) {
	svc, _ := newTestService(200000)

	_, err := svc.CreateBooking("tutor-1", models.BookingCreateRequest{
		CourseID: "course-1", Date: futureDate, StartTime: "09:00",
	})
	assert.Equal(t, "forbidden", bookingErrCode(t, err))
}

func TestConfirmBookingByBookedTutor(t *testing.T) {
	svc, _ := newTestService(0)

	bk, err := svc.CreateBooking("student-1", models.BookingCreateRequest{
		CourseID: "course-1", Date: futureDate, StartTime: "09:00",
	})
	require.NoError(t, err)

	confirmed, err := svc.ConfirmBooking("tutor-1", bk.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, confirmed.Status)
	// Zero-total bookings skip the payment request.
	assert.Equal(t, models.PaymentUnpaid, confirmed.PaymentStatus)
}

func TestConfirmBookingRejectsOtherTutor(t *testing.T) {
	svc, _ := newTestService(0)

	bk, err := svc.CreateBooking("student-1", models.BookingCreateRequest{
		CourseID: "course-1", Date: futureDate, StartTime: "09:00",
	})
	require.NoError(t, err)

	_, err = svc.ConfirmBooking("tutor-2", bk.ID)
	assert.Equal(t, "forbidden", bookingErrCode(t, err))
}

func TestConfirmBookingRejectsNonPendingState(t *testing.T) {
	svc, _ := newTestService(0)

	bk, err := svc.CreateBooking("student-1", models.BookingCreateRequest{
		CourseID: "course-1", Date: futureDate, StartTime: "09:00",
	})
	require.NoError(t, err)

	_, err = svc.ConfirmBooking("tutor-1", bk.ID)
	require.NoError(t, err)
	_, err = svc.ConfirmBooking("tutor-1", bk.ID)
	assert.Equal(t, "invalidState", bookingErrCode(t, err))
}

func TestCancelBookingRecordsCancellingSide(t *testing.T) {
	svc, _ := newTestService(0)

	bk, err := svc.CreateBooking("student-1", models.BookingCreateRequest{
		CourseID: "course-1", Date: futureDate, StartTime: "09:00",
	})
	require.NoError(t, err)

	cancelled, err := svc.CancelBooking("student-1", models.RoleStudent, bk.ID,
		models.CancelRequest{Reason: "schedule clash"})
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelledByStudent, cancelled.Status)
	assert.Equal(t, "schedule clash", cancelled.CancellationReason)
}

func TestCancelBookingRejectsStrangers(t *testing.T) {
	svc, _ := newTestService(0)

	bk, err := svc.CreateBooking("student-1", models.BookingCreateRequest{
		CourseID: "course-1", Date: futureDate, StartTime: "09:00",
	})
	require.NoError(t, err)

	_, err = svc.CancelBooking("student-2", models.RoleStudent, bk.ID, models.CancelRequest{})
	assert.Equal(t, "forbidden", bookingErrCode(t, err))
}

func TestCompleteBookingRequiresConfirmedState(t *testing.T) {
	svc, _ := newTestService(0)

	bk, err := svc.CreateBooking("student-1", models.BookingCreateRequest{
		CourseID: "course-1", Date: futureDate, StartTime: "09:00",
	})
	require.NoError(t, err)

	_, err = svc.CompleteBooking("tutor-1", bk.ID)
	assert.Equal(t, "invalidState", bookingErrCode(t, err))

	_, err = svc.ConfirmBooking("tutor-1", bk.ID)
	require.NoError(t, err)

	done, err := svc.CompleteBooking("tutor-1", bk.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, done.Status)
}

func TestGetBookingVisibility(t *testing.T) {
	svc, _ := newTestService(0)

	bk, err := svc.CreateBooking("student-1", models.BookingCreateRequest{
		CourseID: "course-1", Date: futureDate, StartTime: "09:00",
	})
	require.NoError(t, err)

	_, err = svc.GetBooking("student-1", models.RoleStudent, bk.ID)
	assert.NoError(t, err)
	_, err = svc.GetBooking("admin-1", models.RoleAdmin, bk.ID)
	assert.NoError(t, err)

	_, err = svc.GetBooking("student-2", models.RoleStudent, bk.ID)
	var bErr *BookingError
	assert.True(t, errors.As(err, &bErr))
}
