package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusCheckedOut BookingStatus = "checked_out"
	StatusCancelled  BookingStatus = "cancelled"
)

// PaymentState represents the payment status of a booking.
// It is tracked independently from BookingStatus; ValidStateCombination
// documents which combinations are legal.
type PaymentState string

const (
	PaymentStatePending   PaymentState = "pending"
	PaymentStateCompleted PaymentState = "completed"
	PaymentStateFailed    PaymentState = "failed"
	PaymentStateRefunded  PaymentState = "refunded"
)

// Booking represents one guest's reservation of one room for a contiguous
// date range. Monetary fields use fixed-point decimals with two places.
type Booking struct {
	ID         int64
	BookingRef string // human-readable external id, BK + date + 8 hex
	UserID     int64
	RoomID     int64
	HotelID    int64

	CheckInDate  time.Time // date only
	CheckOutDate time.Time // date only

	NumberOfGuests int
	GuestName      string
	GuestEmail     string
	GuestPhone     string

	RoomPricePerNight decimal.Decimal
	NumberOfNights    int
	Subtotal          decimal.Decimal
	TaxAmount         decimal.Decimal
	DiscountAmount    decimal.Decimal
	TotalPrice        decimal.Decimal

	Status       BookingStatus
	PaymentState PaymentState

	SpecialRequests *string
	Notes           *string

	CreatedAt    time.Time
	UpdatedAt    time.Time
	ConfirmedAt  *time.Time
	CheckedInAt  *time.Time
	CheckedOutAt *time.Time
	CancelledAt  *time.Time
}

// CanConfirm returns true if the booking may transition to confirmed
func (b *Booking) CanConfirm() bool {
	return b.Status == StatusPending
}

// CanCheckIn returns true if the booking may transition to checked_in
func (b *Booking) CanCheckIn() bool {
	return b.Status == StatusConfirmed
}

// CanCheckOut returns true if the booking may transition to checked_out
func (b *Booking) CanCheckOut() bool {
	return b.Status == StatusConfirmed || b.Status == StatusCheckedIn
}

// CanCancel returns true if the booking may still be cancelled.
// Once a guest has checked in, cancellation is no longer possible.
func (b *Booking) CanCancel() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// BlocksAvailability returns true if this booking makes its room
// unavailable for overlapping date ranges. Pending and cancelled
// bookings never block a room.
func (b *Booking) BlocksAvailability() bool {
	return b.Status == StatusConfirmed || b.Status == StatusCheckedIn
}

// Overlaps reports whether the booking's stay overlaps [checkIn, checkOut).
// Ranges are half-open: a check-out on the same day as a new check-in
// does not count as an overlap.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckInDate.Before(checkOut) && b.CheckOutDate.After(checkIn)
}

// DaysUntilCheckIn returns the number of whole days between now and
// check-in. Negative when check-in has already passed.
func (b *Booking) DaysUntilCheckIn(now time.Time) int {
	return int(DateOnly(b.CheckInDate).Sub(DateOnly(now)).Hours() / 24)
}

// ValidStateCombination reports whether a booking status / payment state
// pair is legal:
//
//	pending     -> pending, failed
//	confirmed   -> completed
//	checked_in  -> completed
//	checked_out -> completed
//	cancelled   -> pending, completed, refunded
func ValidStateCombination(status BookingStatus, payment PaymentState) bool {
	switch status {
	case StatusPending:
		return payment == PaymentStatePending || payment == PaymentStateFailed
	case StatusConfirmed, StatusCheckedIn, StatusCheckedOut:
		return payment == PaymentStateCompleted
	case StatusCancelled:
		return payment == PaymentStatePending ||
			payment == PaymentStateCompleted ||
			payment == PaymentStateRefunded
	default:
		return false
	}
}

// DateOnly truncates a timestamp to its calendar date in its location
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
