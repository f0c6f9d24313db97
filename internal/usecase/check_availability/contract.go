package check_availability

import (
	"context"
	"time"

	"github.com/sumonben/hotelmanagement/internal/domain"
)

// BookingRepository booking persistence interface
type BookingRepository interface {
	GetBlockingByRoom(ctx context.Context, roomID int64) ([]*domain.Booking, error)
}

// RoomRepository room persistence interface
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// TimeProvider clock interface, injectable for tests
type TimeProvider interface {
	Now() time.Time
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider production clock
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
