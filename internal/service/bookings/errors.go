package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when a booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied is returned when a user has no access to the booking
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel is returned when the booking is not in a cancellable state
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidTransition is returned when a lifecycle transition is not
	// allowed from the booking's current status
	ErrInvalidTransition = errors.New("invalid booking status transition")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrPaymentNotFound is returned when a booking has no payments
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
