package consultation

import (
	"errors"
	"fmt"
)

// Rejection codes for booking and cancellation requests. These are
// user-facing validation outcomes, not system faults.
const (
	CodeInvalidInput        = "invalidInput"
	CodeInvalidDuration     = "invalidDuration"
	CodeOutsideAvailability = "outsideAvailability"
	CodeSlotConflict        = "slotConflict"
	CodeDateOutOfWindow     = "dateOutOfWindow"
	CodeForbidden           = "forbidden"
	CodeNotFound            = "notFound"
)

type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewBookingError(code, msg string) error {
	return &BookingError{
		Code:    code,
		Message: msg,
	}
}

// AsBookingError unwraps err into a *BookingError if it is one.
func AsBookingError(err error) (*BookingError, bool) {
	var be *BookingError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
