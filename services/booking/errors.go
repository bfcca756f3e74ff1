package booking

import "fmt"

// Error codes for the booking wizard's failure taxonomy.
const (
	CodeValidation      = "validationError"
	CodeVehicle         = "vehicleError"
	CodeStep            = "stepError"
	CodeSession         = "sessionError"
	CodeServerError     = "serverError"
	CodeBookingRejected = "bookingRejected"
	CodeNetworkError    = "networkError"
)

// Canonical user-facing messages. These are part of the API contract with
// the frontend and must not be reworded casually.
const (
	MsgVehicleRequired = "At least one vehicle is required"
	MsgPromoEmpty      = "Please enter a promo code"
	MsgPromoInvalid    = "Invalid promo code"
	MsgServerError     = "Server error - please contact support"
	MsgBookingFailed   = "Booking failed"
	MsgNetworkError    = "Network error - please try again"
)

type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &BookingError{Code: CodeValidation, Message: msg}
}

func NewVehicleError(msg string) error {
	return &BookingError{Code: CodeVehicle, Message: msg}
}

func NewStepError(msg string) error {
	return &BookingError{Code: CodeStep, Message: msg}
}

func NewServerError() error {
	return &BookingError{Code: CodeServerError, Message: MsgServerError}
}

func NewNetworkError() error {
	return &BookingError{Code: CodeNetworkError, Message: MsgNetworkError}
}

func NewRejectedError(msg string) error {
	if msg == "" {
		msg = MsgBookingFailed
	}
	return &BookingError{Code: CodeBookingRejected, Message: msg}
}
