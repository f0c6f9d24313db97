package sslcommerz

import "errors"

var (
	// ErrSessionRejected is returned when the gateway refuses to open a payment session
	ErrSessionRejected = errors.New("sslcommerz client: session rejected by gateway")

	// ErrInternal is returned on internal client errors
	ErrInternal = errors.New("sslcommerz client: internal error")

	// ErrInvalidResponse is returned when the gateway response cannot be parsed
	ErrInvalidResponse = errors.New("sslcommerz client: invalid response")

	// ErrGatewayUnavailable is returned when the gateway cannot be reached.
	// Reconciliation treats this as retriable and leaves the payment pending.
	ErrGatewayUnavailable = errors.New("sslcommerz unavailable: verification deferred")
)
