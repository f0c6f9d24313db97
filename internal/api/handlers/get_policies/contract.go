package get_policies

import (
	"context"

	"github.com/sumonben/hotelmanagement/internal/service/policies/models"
)

type PolicyService interface {
	List(ctx context.Context, hotelID int64, includeInactive bool) (*models.PolicyListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
