package domain

// Business validation constants
const (
	MinGuests                = 1
	MaxGuestNameLength       = 100
	MaxGuestPhoneLength      = 20
	MaxSpecialRequestsLength = 1000
	MaxNotesLength           = 1000

	MinRefundPercentage = 0
	MaxRefundPercentage = 100
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses lists booking statuses that never block room
// availability
var InactiveStatuses = []BookingStatus{
	StatusPending,
	StatusCancelled,
}

// BlockingStatuses lists booking statuses that make a room unavailable
// for overlapping date ranges
var BlockingStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCheckedIn,
}
