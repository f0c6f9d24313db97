package models

import "github.com/sumonben/hotelmanagement/internal/domain"

// UpdatePolicyRequest request to rewrite a policy tier
type UpdatePolicyRequest struct {
	Name              string `json:"name"`
	DaysBeforeCheckIn int    `json:"daysBeforeCheckin"`
	RefundPercentage  int    `json:"refundPercentage"`
	Description       string `json:"description,omitempty"`
	IsActive          bool   `json:"isActive"`
}

// PolicyResponse one refund tier
type PolicyResponse struct {
	ID                int64  `json:"id"`
	HotelID           int64  `json:"hotelId"`
	Name              string `json:"name"`
	DaysBeforeCheckIn int    `json:"daysBeforeCheckin"`
	RefundPercentage  int    `json:"refundPercentage"`
	Description       string `json:"description,omitempty"`
	IsActive          bool   `json:"isActive"`
}

// PolicyListResponse tier list, ordered by days before check-in descending
type PolicyListResponse struct {
	Policies []PolicyResponse `json:"policies"`
}

// FromDomainPolicy converts a domain model to a DTO
func FromDomainPolicy(p *domain.CancellationPolicy) *PolicyResponse {
	if p == nil {
		return nil
	}
	return &PolicyResponse{
		ID:                p.ID,
		HotelID:           p.HotelID,
		Name:              p.Name,
		DaysBeforeCheckIn: p.DaysBeforeCheckIn,
		RefundPercentage:  p.RefundPercentage,
		Description:       p.Description,
		IsActive:          p.IsActive,
	}
}

// FromDomainPolicyList converts a list of domain models to a DTO
func FromDomainPolicyList(policies []*domain.CancellationPolicy) *PolicyListResponse {
	resp := &PolicyListResponse{
		Policies: make([]PolicyResponse, 0, len(policies)),
	}
	for _, p := range policies {
		if dto := FromDomainPolicy(p); dto != nil {
			resp.Policies = append(resp.Policies, *dto)
		}
	}
	return resp
}
