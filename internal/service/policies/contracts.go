package policies

import (
	"context"

	"github.com/sumonben/hotelmanagement/internal/domain"
)

// PolicyRepository cancellation policy persistence interface
type PolicyRepository interface {
	GetAllByHotel(ctx context.Context, hotelID int64) ([]*domain.CancellationPolicy, error)
	GetActiveByHotel(ctx context.Context, hotelID int64) ([]*domain.CancellationPolicy, error)
	GetByID(ctx context.Context, id int64) (*domain.CancellationPolicy, error)
	Update(ctx context.Context, p *domain.CancellationPolicy) error
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
