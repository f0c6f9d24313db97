package policies

import (
	"context"
	"errors"
	"fmt"

	policyRepo "github.com/sumonben/hotelmanagement/internal/infra/storage/policy"
	"github.com/sumonben/hotelmanagement/internal/service/policies/models"
)

// Service manages a hotel's cancellation policy tiers
type Service struct {
	policyRepo PolicyRepository
	logger     Logger
}

// NewService creates a policies service
func NewService(policyRepo PolicyRepository, logger Logger) *Service {
	return &Service{
		policyRepo: policyRepo,
		logger:     logger,
	}
}

// List fetches a hotel's policy tiers, optionally including inactive ones
func (s *Service) List(ctx context.Context, hotelID int64, includeInactive bool) (*models.PolicyListResponse, error) {
	s.logger.Info("List: fetching policies for hotel=%d, includeInactive=%t", hotelID, includeInactive)

	fetch := s.policyRepo.GetActiveByHotel
	if includeInactive {
		fetch = s.policyRepo.GetAllByHotel
	}

	list, err := fetch(ctx, hotelID)
	if err != nil {
		s.logger.Error("List: repository error for hotel=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPolicyList(list), nil
}

// Update rewrites one policy tier
func (s *Service) Update(ctx context.Context, hotelID, policyID int64, req *models.UpdatePolicyRequest) (*models.PolicyResponse, error) {
	s.logger.Info("Update: updating policy id=%d for hotel=%d", policyID, hotelID)

	if req.RefundPercentage < 0 || req.RefundPercentage > 100 {
		return nil, fmt.Errorf("%w: refund percentage must be between 0 and 100", ErrInvalidInput)
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	policy, err := s.policyRepo.GetByID(ctx, policyID)
	if err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			s.logger.Warn("Update: policy id=%d not found", policyID)
			return nil, ErrPolicyNotFound
		}
		s.logger.Error("Update: repository error for policy id=%d: %v", policyID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if policy.HotelID != hotelID {
		s.logger.Warn("Update: policy id=%d does not belong to hotel=%d", policyID, hotelID)
		return nil, ErrPolicyNotFound
	}

	policy.Name = req.Name
	policy.DaysBeforeCheckIn = req.DaysBeforeCheckIn
	policy.RefundPercentage = req.RefundPercentage
	policy.Description = req.Description
	policy.IsActive = req.IsActive

	if err := s.policyRepo.Update(ctx, policy); err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			return nil, ErrPolicyNotFound
		}
		s.logger.Error("Update: repository error for policy id=%d: %v", policyID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: policy id=%d updated, days=%d, refund=%d%%",
		policyID, policy.DaysBeforeCheckIn, policy.RefundPercentage)
	return models.FromDomainPolicy(policy), nil
}
