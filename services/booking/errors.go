package booking

import "fmt"

// BookingError carries a stable code the handlers map to HTTP statuses.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSlotUnavailableError(msg string) error {
	return &BookingError{Code: "slotUnavailable", Message: msg}
}

func NewConflictError(msg string) error {
	return &BookingError{Code: "conflict", Message: msg}
}

func NewStateError(msg string) error {
	return &BookingError{Code: "invalidState", Message: msg}
}

func NewForbiddenError(msg string) error {
	return &BookingError{Code: "forbidden", Message: msg}
}

func NewNotBookableError(msg string) error {
	return &BookingError{Code: "notBookable", Message: msg}
}
