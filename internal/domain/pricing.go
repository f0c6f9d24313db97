package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidStayRange is returned when a date range yields zero or
// negative nights
var ErrInvalidStayRange = errors.New("domain: check-out date must be after check-in date")

// DefaultTaxRate tax applied to the subtotal (10%)
var DefaultTaxRate = decimal.NewFromFloat(0.10)

// Quote is the price breakdown for a stay. All values carry two
// decimal places.
type Quote struct {
	Nights         int
	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalPrice     decimal.Decimal
}

// ComputeQuote derives the price breakdown for a stay:
//
//	nights   = checkOut - checkIn, in whole days
//	subtotal = nightlyRate * nights
//	tax      = subtotal * taxRate
//	total    = subtotal + tax - discount
//
// Discount is zero at creation time; promotional adjustments happen later.
// Fails with ErrInvalidStayRange when nights <= 0.
func ComputeQuote(nightlyRate decimal.Decimal, checkIn, checkOut time.Time, taxRate decimal.Decimal) (Quote, error) {
	nights := int(DateOnly(checkOut).Sub(DateOnly(checkIn)).Hours() / 24)
	if nights <= 0 {
		return Quote{}, ErrInvalidStayRange
	}

	subtotal := nightlyRate.Mul(decimal.NewFromInt(int64(nights))).Round(2)
	tax := subtotal.Mul(taxRate).Round(2)
	discount := decimal.Zero.Round(2)
	total := subtotal.Add(tax).Sub(discount).Round(2)

	return Quote{
		Nights:         nights,
		Subtotal:       subtotal,
		TaxAmount:      tax,
		DiscountAmount: discount,
		TotalPrice:     total,
	}, nil
}
