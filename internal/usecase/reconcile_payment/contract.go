package reconcile_payment

import (
	"context"
	"time"

	"github.com/sumonben/hotelmanagement/internal/domain"
	"github.com/sumonben/hotelmanagement/internal/integrations/sslcommerz"
)

// BookingRepository booking persistence interface
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByRef(ctx context.Context, ref string) (*domain.Booking, error)
	Confirm(ctx context.Context, id int64, at time.Time) error
	MarkPaymentState(ctx context.Context, id int64, state domain.PaymentState) error
}

// PaymentRepository payment persistence interface
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	GetBySessionKey(ctx context.Context, sessionKey string) (*domain.Payment, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error)
	GetPendingByBooking(ctx context.Context, bookingID int64, method *domain.PaymentMethod) (*domain.Payment, error)
	GetLatestPendingByMethod(ctx context.Context, method domain.PaymentMethod) (*domain.Payment, error)
	MarkCompleted(ctx context.Context, id int64, transactionID string) error
	MarkFailed(ctx context.Context, id int64) error
}

// GatewayClient payment gateway interface
type GatewayClient interface {
	ValidateTransaction(ctx context.Context, valID string) (*sslcommerz.ValidationResponse, error)
}

// TransactionManager transaction control interface
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
