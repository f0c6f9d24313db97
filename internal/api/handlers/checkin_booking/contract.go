package checkin_booking

import (
	"context"

	"github.com/sumonben/hotelmanagement/internal/service/bookings/models"
)

type BookingService interface {
	CheckIn(ctx context.Context, bookingID int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
