package check_availability

import (
	"context"

	uc "github.com/sumonben/hotelmanagement/internal/usecase/check_availability"
)

type AvailabilityUseCase interface {
	Execute(ctx context.Context, req *uc.Request) (*uc.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
