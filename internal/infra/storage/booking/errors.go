package booking

import "errors"

var (
	// ErrBookingNotFound is returned when a booking does not exist
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDuplicateRef is returned when a generated booking reference
	// collides with an existing one; the caller may regenerate and retry
	ErrDuplicateRef = errors.New("booking.repository: duplicate booking reference")

	// ErrBuildQuery is returned when building an SQL query fails
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned when executing an SQL query fails
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
