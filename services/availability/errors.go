package availability

import (
	"errors"
	"fmt"
)

// ErrMalformedAvailability marks a raw availability payload that could not be
// decoded into a slot list. BuildIndex recovers from it by returning an empty
// index; it is only surfaced by Parse.
var ErrMalformedAvailability = errors.New("availability: malformed payload")

// InvalidDurationError is returned when a selection's end time is not strictly
// after its start time. The caller is expected to block submission.
type InvalidDurationError struct {
	StartTime string
	EndTime   string
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("availability: invalid duration: end %q is not after start %q", e.EndTime, e.StartTime)
}

// InvalidRateError is returned when a negative hourly rate reaches the price
// computation. This is an upstream data defect, not a user input error.
type InvalidRateError struct {
	Rate float64
}

func (e *InvalidRateError) Error() string {
	return fmt.Sprintf("availability: invalid hourly rate %v", e.Rate)
}
