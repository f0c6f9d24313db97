package profile

import "errors"

var (
	// ErrBuildQuery is returned when building an SQL query fails
	ErrBuildQuery = errors.New("profile.repository: failed to build query")

	// ErrExecQuery is returned when executing an SQL query fails
	ErrExecQuery = errors.New("profile.repository: failed to execute query")
)
