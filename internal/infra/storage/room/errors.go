package room

import "errors"

var (
	// ErrRoomNotFound is returned when a room does not exist
	ErrRoomNotFound = errors.New("room.repository: room not found")

	// ErrBuildQuery is returned when building an SQL query fails
	ErrBuildQuery = errors.New("room.repository: failed to build query")

	// ErrExecQuery is returned when executing an SQL query fails
	ErrExecQuery = errors.New("room.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("room.repository: failed to scan row")
)
