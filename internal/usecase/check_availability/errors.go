package check_availability

import "errors"

var (
	// ErrRoomNotFound is returned when the room does not exist
	ErrRoomNotFound = errors.New("check_availability: room not found")

	// ErrInvalidDateRange is returned when check-out is not after check-in
	ErrInvalidDateRange = errors.New("check_availability: check-out date must be after check-in date")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("check_availability: internal error")
)
