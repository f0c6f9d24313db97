package create_booking

import (
	"time"

	"github.com/sumonben/hotelmanagement/internal/domain"
	"github.com/sumonben/hotelmanagement/internal/service/bookings/models"
)

// Request booking creation request
type Request struct {
	UserID          int64
	RoomID          int64
	CheckInDate     time.Time // date only
	CheckOutDate    time.Time // date only
	NumberOfGuests  int
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	SpecialRequests *string
}

// Response created booking
type Response = models.BookingResponse

func toResponse(b *domain.Booking) *Response {
	return models.FromDomainBooking(b)
}
