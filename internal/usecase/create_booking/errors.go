package create_booking

import "errors"

var (
	// ErrRoomNotFound is returned when the room does not exist
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrRoomNotBookable is returned when the room cannot accept bookings
	// (inactive, under maintenance or blocked)
	ErrRoomNotBookable = errors.New("create_booking: room is not bookable")

	// ErrRoomNotAvailable is returned when the room is already booked for
	// an overlapping date range
	ErrRoomNotAvailable = errors.New("create_booking: room is not available for these dates")

	// ErrInvalidDateRange is returned when check-out is not after check-in
	ErrInvalidDateRange = errors.New("create_booking: check-out date must be after check-in date")

	// ErrDateInPast is returned when check-in is before today
	ErrDateInPast = errors.New("create_booking: check-in date cannot be in the past")

	// ErrTooManyGuests is returned when the guest count exceeds room capacity
	ErrTooManyGuests = errors.New("create_booking: too many guests for this room")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("create_booking: internal error")
)
