package booking

import (
	"fmt"
	"math"

	"tutorhub/models"
	"tutorhub/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// requestPayment opens a Stripe PaymentIntent for the booking total. VND is
// a zero-decimal currency, so the rounded total maps directly to the minor
// unit amount.
func (s *DefaultBookingService) requestPayment(booking *models.Booking) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(booking.Quote.TotalAmount))),
		Currency: stripe.String(string(stripe.CurrencyVND)),
		Metadata: map[string]string{
			"bookingId": booking.ID,
			"courseId":  booking.CourseID,
			"studentId": booking.StudentID,
		},
	}
	params.SetIdempotencyKey("booking-" + booking.ID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent for booking %s: %w", booking.ID, err)
	}

	utils.GetLogger().Info("payment intent created",
		zap.String("bookingID", booking.ID),
		zap.String("intentID", intent.ID),
		zap.Int64("amount", intent.Amount))
	return intent.ID, nil
}
