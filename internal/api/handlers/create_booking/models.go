package create_booking

import (
	"time"

	"github.com/sumonben/hotelmanagement/internal/domain"
	uc "github.com/sumonben/hotelmanagement/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID          int64   `json:"roomId"`
	CheckInDate     string  `json:"checkInDate"`  // "2026-01-10"
	CheckOutDate    string  `json:"checkOutDate"` // "2026-01-13"
	NumberOfGuests  int     `json:"numberOfGuests"`
	GuestName       string  `json:"guestName"`
	GuestEmail      string  `json:"guestEmail"`
	GuestPhone      string  `json:"guestPhone"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

// ToUseCaseRequest converts the HTTP request to the use case model
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*uc.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckInDate)
	if err != nil {
		return nil, err
	}
	checkOut, err := time.Parse(domain.DateFormat, r.CheckOutDate)
	if err != nil {
		return nil, err
	}

	return &uc.Request{
		UserID:          userID,
		RoomID:          r.RoomID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumberOfGuests:  r.NumberOfGuests,
		GuestName:       r.GuestName,
		GuestEmail:      r.GuestEmail,
		GuestPhone:      r.GuestPhone,
		SpecialRequests: r.SpecialRequests,
	}, nil
}
