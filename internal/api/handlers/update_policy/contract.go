package update_policy

import (
	"context"

	"github.com/sumonben/hotelmanagement/internal/service/policies/models"
)

type PolicyService interface {
	Update(ctx context.Context, hotelID, policyID int64, req *models.UpdatePolicyRequest) (*models.PolicyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
