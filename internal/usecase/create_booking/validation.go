package create_booking

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/sumonben/hotelmanagement/internal/domain"
)

// validateRequest validates the request fields that need no database state
func validateRequest(req *Request, now time.Time) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.CheckInDate.IsZero() || req.CheckOutDate.IsZero() {
		return fmt.Errorf("%w: check-in and check-out dates are required", ErrInvalidInput)
	}

	if !domain.DateOnly(req.CheckOutDate).After(domain.DateOnly(req.CheckInDate)) {
		return ErrInvalidDateRange
	}

	if domain.DateOnly(req.CheckInDate).Before(domain.DateOnly(now)) {
		return ErrDateInPast
	}

	if req.NumberOfGuests < domain.MinGuests {
		return fmt.Errorf("%w: at least %d guest is required", ErrInvalidInput, domain.MinGuests)
	}

	if req.GuestName == "" || len(req.GuestName) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: guest name is required, at most %d characters", ErrInvalidInput, domain.MaxGuestNameLength)
	}

	if _, err := mail.ParseAddress(req.GuestEmail); err != nil {
		return fmt.Errorf("%w: invalid guest email", ErrInvalidInput)
	}

	if req.GuestPhone == "" || len(req.GuestPhone) > domain.MaxGuestPhoneLength {
		return fmt.Errorf("%w: guest phone is required, at most %d characters", ErrInvalidInput, domain.MaxGuestPhoneLength)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: special requests too long", ErrInvalidInput)
	}

	return nil
}

// hasOverlap reports whether any blocking booking overlaps the requested
// stay. Ranges are half-open: back-to-back stays do not collide.
func hasOverlap(bookings []*domain.Booking, checkIn, checkOut time.Time) bool {
	for _, b := range bookings {
		if !b.BlocksAvailability() {
			continue
		}
		if b.Overlaps(domain.DateOnly(checkIn), domain.DateOnly(checkOut)) {
			return true
		}
	}
	return false
}
