package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingTransitions(t *testing.T) {
	tests := []struct {
		status       BookingStatus
		canConfirm   bool
		canCheckIn   bool
		canCheckOut  bool
		canCancel    bool
		blocksAvail  bool
	}{
		{StatusPending, true, false, false, true, false},
		{StatusConfirmed, false, true, true, true, true},
		{StatusCheckedIn, false, false, true, false, true},
		{StatusCheckedOut, false, false, false, false, false},
		{StatusCancelled, false, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}

			assert.Equal(t, tt.canConfirm, b.CanConfirm())
			assert.Equal(t, tt.canCheckIn, b.CanCheckIn())
			assert.Equal(t, tt.canCheckOut, b.CanCheckOut())
			assert.Equal(t, tt.canCancel, b.CanCancel())
			assert.Equal(t, tt.blocksAvail, b.BlocksAvailability())
		})
	}
}

func TestBookingOverlaps(t *testing.T) {
	// Existing stay: Jan 10 to Jan 13
	b := &Booking{
		CheckInDate:  date(2026, 1, 10),
		CheckOutDate: date(2026, 1, 13),
	}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     bool
	}{
		{"identical range", date(2026, 1, 10), date(2026, 1, 13), true},
		{"contained inside", date(2026, 1, 11), date(2026, 1, 12), true},
		{"overlaps start", date(2026, 1, 8), date(2026, 1, 11), true},
		{"overlaps end", date(2026, 1, 12), date(2026, 1, 15), true},
		{"surrounds", date(2026, 1, 8), date(2026, 1, 15), true},
		{"back to back before", date(2026, 1, 7), date(2026, 1, 10), false},
		{"back to back after", date(2026, 1, 13), date(2026, 1, 16), false},
		{"fully before", date(2026, 1, 1), date(2026, 1, 5), false},
		{"fully after", date(2026, 1, 20), date(2026, 1, 25), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Overlaps(tt.checkIn, tt.checkOut))
		})
	}
}

func TestDaysUntilCheckIn(t *testing.T) {
	b := &Booking{CheckInDate: date(2026, 1, 20)}

	assert.Equal(t, 10, b.DaysUntilCheckIn(date(2026, 1, 10)))
	assert.Equal(t, 0, b.DaysUntilCheckIn(date(2026, 1, 20)))
	assert.Equal(t, -2, b.DaysUntilCheckIn(date(2026, 1, 22)))

	// Time of day on "now" must not change the whole-day count
	assert.Equal(t, 10, b.DaysUntilCheckIn(time.Date(2026, 1, 10, 23, 59, 0, 0, time.UTC)))
}

func TestValidStateCombination(t *testing.T) {
	valid := []struct {
		status  BookingStatus
		payment PaymentState
	}{
		{StatusPending, PaymentStatePending},
		{StatusPending, PaymentStateFailed},
		{StatusConfirmed, PaymentStateCompleted},
		{StatusCheckedIn, PaymentStateCompleted},
		{StatusCheckedOut, PaymentStateCompleted},
		{StatusCancelled, PaymentStatePending},
		{StatusCancelled, PaymentStateCompleted},
		{StatusCancelled, PaymentStateRefunded},
	}
	for _, c := range valid {
		assert.True(t, ValidStateCombination(c.status, c.payment),
			"%s/%s should be valid", c.status, c.payment)
	}

	invalid := []struct {
		status  BookingStatus
		payment PaymentState
	}{
		{StatusPending, PaymentStateCompleted},
		{StatusPending, PaymentStateRefunded},
		{StatusConfirmed, PaymentStatePending},
		{StatusConfirmed, PaymentStateFailed},
		{StatusCheckedIn, PaymentStatePending},
		{StatusCheckedOut, PaymentStateRefunded},
		{StatusCancelled, PaymentStateFailed},
	}
	for _, c := range invalid {
		assert.False(t, ValidStateCombination(c.status, c.payment),
			"%s/%s should be invalid", c.status, c.payment)
	}
}
