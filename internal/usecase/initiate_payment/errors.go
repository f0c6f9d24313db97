package initiate_payment

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("initiate_payment: booking not found")

	// ErrAccessDenied is returned when the user does not own the booking
	ErrAccessDenied = errors.New("initiate_payment: access denied")

	// ErrNotPayable is returned when the booking is not awaiting payment
	ErrNotPayable = errors.New("initiate_payment: booking is not awaiting payment")

	// ErrGatewayRejected is returned when the gateway refuses the session
	ErrGatewayRejected = errors.New("initiate_payment: gateway rejected the session")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("initiate_payment: internal error")
)
