package reconcile_payment

import "errors"

var (
	// ErrVerificationUnavailable is returned when the gateway validation
	// API cannot be reached. No state is mutated; the callback can be
	// redelivered and reconciled later.
	ErrVerificationUnavailable = errors.New("reconcile_payment: gateway verification unavailable")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("reconcile_payment: internal error")
)
