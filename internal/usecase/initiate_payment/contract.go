package initiate_payment

import (
	"context"
	"time"

	"github.com/sumonben/hotelmanagement/internal/domain"
	"github.com/sumonben/hotelmanagement/internal/integrations/sslcommerz"
)

// BookingRepository booking persistence interface
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// PaymentRepository payment persistence interface
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	GetPendingByBooking(ctx context.Context, bookingID int64, method *domain.PaymentMethod) (*domain.Payment, error)
}

// GatewayClient payment gateway interface
type GatewayClient interface {
	CreateSession(ctx context.Context, sr sslcommerz.SessionRequest) (*sslcommerz.SessionResponse, error)
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
