package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoomStatus operational status of a room
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
	RoomUnavailable RoomStatus = "unavailable"
)

// Room is an individual hotel room. MaxGuests is denormalized from the
// room type at read time.
type Room struct {
	ID            int64
	HotelID       int64
	RoomTypeID    *int64
	RoomNumber    string
	Floor         int
	PricePerNight decimal.Decimal
	DiscountPrice *decimal.Decimal
	Status        RoomStatus
	IsActive      bool
	MaxGuests     int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EffectivePrice returns the discounted price when one is set,
// otherwise the regular nightly price
func (r *Room) EffectivePrice() decimal.Decimal {
	if r.DiscountPrice != nil {
		return *r.DiscountPrice
	}
	return r.PricePerNight
}

// IsBookable returns true if the room can accept new bookings at all.
// Date-range availability is checked separately against existing bookings.
func (r *Room) IsBookable() bool {
	return r.IsActive && r.Status != RoomMaintenance && r.Status != RoomUnavailable
}
