package booking

import "fmt"

// BookingError is a caller-facing booking failure with a stable code.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &BookingError{Code: "invalidBooking", Message: msg}
}
