package policies

import "errors"

var (
	// ErrPolicyNotFound is returned when a cancellation policy does not exist
	ErrPolicyNotFound = errors.New("cancellation policy not found")

	// ErrInvalidInput is returned on malformed policy data
	ErrInvalidInput = errors.New("invalid policy data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("policies service: internal error")
)
