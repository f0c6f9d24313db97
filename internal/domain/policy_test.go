package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func standardTiers() []*CancellationPolicy {
	return []*CancellationPolicy{
		{ID: 1, HotelID: 1, Name: "Early", DaysBeforeCheckIn: 7, RefundPercentage: 100, IsActive: true},
		{ID: 2, HotelID: 1, Name: "Standard", DaysBeforeCheckIn: 3, RefundPercentage: 50, IsActive: true},
		{ID: 3, HotelID: 1, Name: "Late", DaysBeforeCheckIn: 1, RefundPercentage: 20, IsActive: true},
	}
}

func TestResolveRefundPercentage(t *testing.T) {
	tests := []struct {
		name string
		days int
		want int
	}{
		{"well before first tier", 30, 100},
		{"exactly first tier", 7, 100},
		{"between tiers", 5, 50},
		{"exactly middle tier", 3, 50},
		{"exactly last tier", 1, 20},
		{"day of check-in", 0, 0},
		{"after check-in", -2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveRefundPercentage(standardTiers(), tt.days)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveRefundPercentage_SkipsInactive(t *testing.T) {
	tiers := standardTiers()
	tiers[0].IsActive = false

	// 10 days out would have matched the 100% tier; it falls through to 50%
	assert.Equal(t, 50, ResolveRefundPercentage(tiers, 10))
}

func TestResolveRefundPercentage_NoPolicies(t *testing.T) {
	assert.Equal(t, 0, ResolveRefundPercentage(nil, 30))
	assert.Equal(t, 0, ResolveRefundPercentage([]*CancellationPolicy{}, 30))
}

func TestRefundAmount(t *testing.T) {
	tests := []struct {
		name  string
		total string
		pct   int
		want  string
	}{
		{"full refund", "330.00", 100, "330.00"},
		{"half refund", "330.00", 50, "165.00"},
		{"rounds to cents", "99.99", 50, "50.00"},
		{"twenty percent", "101.00", 20, "20.20"},
		{"zero percent", "330.00", 0, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := decimal.RequireFromString(tt.total)
			assert.Equal(t, tt.want, RefundAmount(total, tt.pct).StringFixed(2))
		})
	}
}
