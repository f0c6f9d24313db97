package domain

import "github.com/shopspring/decimal"

// CancellationPolicy is one refund-percentage tier for a hotel.
// Tiers are evaluated in descending days_before_checkin order; the first
// tier whose threshold is covered by the actual days-until-check-in wins.
type CancellationPolicy struct {
	ID                int64
	HotelID           int64
	Name              string
	DaysBeforeCheckIn int
	RefundPercentage  int // 0-100
	Description       string
	IsActive          bool
}

// ResolveRefundPercentage selects the refund percentage for a cancellation
// happening daysUntilCheckIn days before check-in. Policies must already be
// ordered by DaysBeforeCheckIn descending (the repository guarantees this).
// Returns 0 when no tier matches. Negative daysUntilCheckIn is passed
// through unmodified; it only matches tiers with a negative threshold.
func ResolveRefundPercentage(policies []*CancellationPolicy, daysUntilCheckIn int) int {
	for _, p := range policies {
		if !p.IsActive {
			continue
		}
		if daysUntilCheckIn >= p.DaysBeforeCheckIn {
			return p.RefundPercentage
		}
	}
	return 0
}

// RefundAmount computes the refund for a total at the given percentage,
// rounded to two decimal places
func RefundAmount(total decimal.Decimal, refundPercentage int) decimal.Decimal {
	return total.
		Mul(decimal.NewFromInt(int64(refundPercentage))).
		Div(decimal.NewFromInt(100)).
		Round(2)
}
