package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStateHelpers(t *testing.T) {
	cases := []struct {
		status      string
		active      bool
		confirmable bool
		cancellable bool
	}{
		{BookingPending, true, true, true},
		{BookingConfirmed, true, false, true},
		{BookingCompleted, false, false, false},
		{BookingExpired, false, false, false},
		{BookingCancelledByStudent, false, false, false},
		{BookingCancelledByTutor, false, false, false},
	}

	for _, tc := range cases {
		b := Booking{Status: tc.status}
		assert.Equal(t, tc.active, b.IsActive(), tc.status)
		assert.Equal(t, tc.confirmable, b.CanBeConfirmed(), tc.status)
		assert.Equal(t, tc.cancellable, b.CanBeCancelled(), tc.status)
	}
}

func TestVerificationStateHelpers(t *testing.T) {
	assert.True(t, (&TutorProfile{Verification: Verification{Status: VerificationUnverified}}).CanSubmitVerification())
	assert.True(t, (&TutorProfile{Verification: Verification{Status: VerificationRejected}}).CanSubmitVerification())
	assert.False(t, (&TutorProfile{Verification: Verification{Status: VerificationPending}}).CanSubmitVerification())
	assert.False(t, (&TutorProfile{Verification: Verification{Status: VerificationApproved}}).CanSubmitVerification())

	assert.True(t, (&TutorProfile{Verification: Verification{Status: VerificationApproved}}).IsApproved())
	assert.False(t, (&TutorProfile{Verification: Verification{Status: VerificationPending}}).IsApproved())
}

func TestCourseIsBookable(t *testing.T) {
	assert.True(t, (&Course{Status: CourseActive}).IsBookable())
	assert.False(t, (&Course{Status: CoursePaused}).IsBookable())
	assert.False(t, (&Course{Status: CourseRemoved}).IsBookable())
}
