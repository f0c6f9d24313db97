package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod enumerates the supported ways to pay for a booking
type PaymentMethod string

const (
	MethodSSLCommerz   PaymentMethod = "sslcommerz"
	MethodCreditCard   PaymentMethod = "credit_card"
	MethodDebitCard    PaymentMethod = "debit_card"
	MethodPayPal       PaymentMethod = "paypal"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodWallet       PaymentMethod = "wallet"
	MethodRefund       PaymentMethod = "refund"
)

// PaymentStatus status of a single payment transaction
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Payment is one attempted payment transaction against a booking.
// A booking may accumulate several payment rows (retries, refunds);
// a refund is always a new row, never a mutation of the original.
type Payment struct {
	ID            int64
	BookingID     int64
	Amount        decimal.Decimal
	Currency      string
	Method        PaymentMethod
	TransactionID string
	SessionKey    *string // gateway checkout session key, gateway payments only
	Status        PaymentStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsTerminal returns true once the payment has reached a final status
func (p *Payment) IsTerminal() bool {
	return p.Status == PaymentCompleted || p.Status == PaymentFailed
}

// ValidMethod reports whether the given string is a known payment method
func ValidMethod(m string) bool {
	switch PaymentMethod(m) {
	case MethodSSLCommerz, MethodCreditCard, MethodDebitCard,
		MethodPayPal, MethodBankTransfer, MethodWallet, MethodRefund:
		return true
	default:
		return false
	}
}
