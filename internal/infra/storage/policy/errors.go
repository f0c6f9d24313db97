package policy

import "errors"

var (
	// ErrPolicyNotFound is returned when a cancellation policy does not exist
	ErrPolicyNotFound = errors.New("policy.repository: cancellation policy not found")

	// ErrBuildQuery is returned when building an SQL query fails
	ErrBuildQuery = errors.New("policy.repository: failed to build query")

	// ErrExecQuery is returned when executing an SQL query fails
	ErrExecQuery = errors.New("policy.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("policy.repository: failed to scan row")
)
