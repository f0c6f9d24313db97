package bookings

import (
	"context"
	"time"

	"github.com/sumonben/hotelmanagement/internal/domain"
)

// BookingRepository booking persistence interface
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByRef(ctx context.Context, ref string) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	Search(ctx context.Context, ref, guestEmail *string) ([]*domain.Booking, error)
	Confirm(ctx context.Context, id int64, at time.Time) error
	CheckIn(ctx context.Context, id int64, at time.Time) error
	CheckOut(ctx context.Context, id int64, at time.Time) error
	Cancel(ctx context.Context, id int64, paymentState domain.PaymentState, at time.Time) error
}

// PaymentRepository payment persistence interface
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]*domain.Payment, error)
	GetLatestByBookingRef(ctx context.Context, ref string) (*domain.Payment, error)
}

// PolicyRepository cancellation policy persistence interface
type PolicyRepository interface {
	GetActiveByHotel(ctx context.Context, hotelID int64) ([]*domain.CancellationPolicy, error)
}

// RoomRepository room persistence interface
type RoomRepository interface {
	UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error
}

// TransactionManager transaction control interface
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
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
