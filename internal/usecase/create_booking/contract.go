package create_booking

import (
	"context"
	"time"

	"github.com/sumonben/hotelmanagement/internal/domain"
)

// BookingRepository booking persistence interface
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetBlockingByRoom(ctx context.Context, roomID int64) ([]*domain.Booking, error)
}

// RoomRepository room persistence interface
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// ProfileRepository user profile persistence interface
type ProfileRepository interface {
	IncrementTotalBookings(ctx context.Context, userID int64) error
}

// TransactionManager transaction control interface
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
