package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewBookingRef generates a human-readable booking reference:
// BK + 8-digit date + 8 uppercase hex characters.
// Collisions are negligible but not formally impossible; the bookings
// table enforces uniqueness and creation retries on conflict.
func NewBookingRef(now time.Time) string {
	u := uuid.New()
	return fmt.Sprintf("BK%s%X", now.Format("20060102"), u[:4])
}

// NewTransactionID generates a transaction id for local payments:
// TXN + timestamp + 8 uppercase hex characters
func NewTransactionID(now time.Time) string {
	u := uuid.New()
	return fmt.Sprintf("TXN%s%X", now.Format("20060102150405"), u[:4])
}

// NewRefundID generates a transaction id for refund payments:
// REFUND + 10 uppercase hex characters
func NewRefundID() string {
	u := uuid.New()
	return fmt.Sprintf("REFUND%X", u[:5])
}
