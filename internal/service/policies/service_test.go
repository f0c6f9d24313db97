package policies

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumonben/hotelmanagement/internal/domain"
	policyRepo "github.com/sumonben/hotelmanagement/internal/infra/storage/policy"
	"github.com/sumonben/hotelmanagement/internal/service/policies/models"
)

type mockPolicyRepo struct {
	policies []*domain.CancellationPolicy
	updated  []*domain.CancellationPolicy
}

func (m *mockPolicyRepo) GetActiveByHotel(_ context.Context, hotelID int64) ([]*domain.CancellationPolicy, error) {
	var out []*domain.CancellationPolicy
	for _, p := range m.policies {
		if p.HotelID == hotelID && p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPolicyRepo) GetAllByHotel(_ context.Context, hotelID int64) ([]*domain.CancellationPolicy, error) {
	var out []*domain.CancellationPolicy
	for _, p := range m.policies {
		if p.HotelID == hotelID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPolicyRepo) GetByID(_ context.Context, id int64) (*domain.CancellationPolicy, error) {
	for _, p := range m.policies {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, policyRepo.ErrPolicyNotFound
}

func (m *mockPolicyRepo) Update(_ context.Context, policy *domain.CancellationPolicy) error {
	m.updated = append(m.updated, policy)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testPolicies() []*domain.CancellationPolicy {
	return []*domain.CancellationPolicy{
		{ID: 1, HotelID: 1, Name: "Early", DaysBeforeCheckIn: 7, RefundPercentage: 100, IsActive: true},
		{ID: 2, HotelID: 1, Name: "Standard", DaysBeforeCheckIn: 3, RefundPercentage: 50, IsActive: true},
		{ID: 3, HotelID: 1, Name: "Retired", DaysBeforeCheckIn: 1, RefundPercentage: 20, IsActive: false},
	}
}

func validUpdate() *models.UpdatePolicyRequest {
	return &models.UpdatePolicyRequest{
		Name:              "Standard",
		DaysBeforeCheckIn: 5,
		RefundPercentage:  60,
		IsActive:          true,
	}
}

func TestList(t *testing.T) {
	repo := &mockPolicyRepo{policies: testPolicies()}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), 1, false)

	require.NoError(t, err)
	assert.Len(t, resp.Policies, 2)
}

func TestList_IncludeInactive(t *testing.T) {
	repo := &mockPolicyRepo{policies: testPolicies()}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), 1, true)

	require.NoError(t, err)
	assert.Len(t, resp.Policies, 3)
}

func TestUpdate(t *testing.T) {
	repo := &mockPolicyRepo{policies: testPolicies()}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), 1, 2, validUpdate())

	require.NoError(t, err)
	assert.Equal(t, 5, resp.DaysBeforeCheckIn)
	assert.Equal(t, 60, resp.RefundPercentage)
	require.Len(t, repo.updated, 1)
	assert.Equal(t, int64(2), repo.updated[0].ID)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &mockPolicyRepo{policies: testPolicies()}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 1, 404, validUpdate())

	assert.ErrorIs(t, err, ErrPolicyNotFound)
}

func TestUpdate_WrongHotel(t *testing.T) {
	repo := &mockPolicyRepo{policies: testPolicies()}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 2, 1, validUpdate())

	assert.ErrorIs(t, err, ErrPolicyNotFound)
	assert.Empty(t, repo.updated)
}

func TestUpdate_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *models.UpdatePolicyRequest)
	}{
		{"negative percentage", func(r *models.UpdatePolicyRequest) { r.RefundPercentage = -1 }},
		{"percentage over 100", func(r *models.UpdatePolicyRequest) { r.RefundPercentage = 101 }},
		{"empty name", func(r *models.UpdatePolicyRequest) { r.Name = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockPolicyRepo{policies: testPolicies()}
			svc := NewService(repo, nopLogger{})
			req := validUpdate()
			tt.mutate(req)

			_, err := svc.Update(context.Background(), 1, 2, req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
