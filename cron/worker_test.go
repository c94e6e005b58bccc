package cron

import (
	"testing"
	"time"

	"tutorhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type memoryBookingRepo struct {
	bookings map[string]*models.Booking
}

func (m *memoryBookingRepo) Create(b *models.Booking) error {
	m.bookings[b.ID] = b
	return nil
}
func (m *memoryBookingRepo) GetByID(id string) (*models.Booking, error) {
	return m.bookings[id], nil
}
func (m *memoryBookingRepo) UpdateSetDocument(id string, doc bson.M) error {
	if v, ok := doc["status"].(string); ok {
		m.bookings[id].Status = v
	}
	return nil
}
func (m *memoryBookingRepo) List(models.BookingFilter) ([]models.Booking, error) { return nil, nil }
func (m *memoryBookingRepo) HasActiveAt(string, string, string) (bool, error) { return false, nil }
func (m *memoryBookingRepo) ListActiveBefore(dateKey string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.Quote.Date < dateKey && b.IsActive() {
			out = append(out, *b)
		}
	}
	return out, nil
}
func (m *memoryBookingRepo) CountAll() (int64, error) { return 0, nil }
func (m *memoryBookingRepo) StatusCounts() (map[string]int64, error) { return nil, nil }
func (m *memoryBookingRepo) SumCompletedRevenue() (float64, error) { return 0, nil }

func TestSweepPastBookingsSettlesByState(t *testing.T) {
	repo := &memoryBookingRepo{bookings: map[string]*models.Booking{
		"past-pending": {
			ID: "past-pending", Status: models.BookingPending,
			Quote: models.Quote{Date: "2025-01-10"},
		},
		"past-confirmed": {
			ID: "past-confirmed", Status: models.BookingConfirmed,
			Quote: models.Quote{Date: "2025-01-11"},
		},
		"future-pending": {
			ID: "future-pending", Status: models.BookingPending,
			Quote: models.Quote{Date: "2099-01-10"},
		},
		"past-cancelled": {
			ID: "past-cancelled", Status: models.BookingCancelledByStudent,
			Quote: models.Quote{Date: "2025-01-10"},
		},
	}}

	now, err := time.Parse("2006-01-02", "2025-06-01")
	require.NoError(t, err)
	SweepPastBookings(repo, now)

	assert.Equal(t, models.BookingExpired, repo.bookings["past-pending"].Status)
	assert.Equal(t, models.BookingCompleted, repo.bookings["past-confirmed"].Status)
	assert.Equal(t, models.BookingPending, repo.bookings["future-pending"].Status)
	assert.Equal(t, models.BookingCancelledByStudent, repo.bookings["past-cancelled"].Status)
}

func TestSweepSameDayBookingStaysActive(t *testing.T) {
	repo := &memoryBookingRepo{bookings: map[string]*models.Booking{
		"today": {
			ID: "today", Status: models.BookingConfirmed,
			Quote: models.Quote{Date: "2025-06-01"},
		},
	}}

	now, err := time.Parse("2006-01-02", "2025-06-01")
	require.NoError(t, err)
	SweepPastBookings(repo, now)

	assert.Equal(t, models.BookingConfirmed, repo.bookings["today"].Status)
}
