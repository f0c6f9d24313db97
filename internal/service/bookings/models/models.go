package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sumonben/hotelmanagement/internal/domain"
)

var (
	// ErrInvalidStatus is returned on an unknown booking status string
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request models

// GetUserBookingsRequest request for a user's booking history
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// SearchBookingsRequest request for a staff booking lookup
type SearchBookingsRequest struct {
	BookingRef *string `json:"bookingRef,omitempty"`
	GuestEmail *string `json:"guestEmail,omitempty"`
}

// PayBookingRequest request to settle a booking with a direct payment method
type PayBookingRequest struct {
	UserID int64  `json:"userId"`
	Method string `json:"method"`
	Notes  string `json:"notes,omitempty"`
}

// LifecycleRequest request for a check-in or check-out transition
type LifecycleRequest struct {
	UserID int64 `json:"userId"`
}

// CancelBookingRequest request to cancel a booking
type CancelBookingRequest struct {
	UserID int64  `json:"userId"`
	Reason string `json:"reason,omitempty"`
}

// Response models

// BookingResponse booking payload returned to clients
type BookingResponse struct {
	ID                int64   `json:"id"`
	BookingRef        string  `json:"bookingRef"`
	UserID            int64   `json:"userId"`
	RoomID            int64   `json:"roomId"`
	HotelID           int64   `json:"hotelId"`
	CheckInDate       string  `json:"checkInDate"`  // "2026-01-10"
	CheckOutDate      string  `json:"checkOutDate"` // "2026-01-13"
	NumberOfNights    int     `json:"numberOfNights"`
	NumberOfGuests    int     `json:"numberOfGuests"`
	GuestName         string  `json:"guestName"`
	GuestEmail        string  `json:"guestEmail"`
	GuestPhone        string  `json:"guestPhone"`
	RoomPricePerNight string  `json:"roomPricePerNight"`
	Subtotal          string  `json:"subtotal"`
	TaxAmount         string  `json:"taxAmount"`
	DiscountAmount    string  `json:"discountAmount"`
	TotalPrice        string  `json:"totalPrice"`
	Status            string  `json:"status"`
	PaymentStatus     string  `json:"paymentStatus"`
	SpecialRequests   *string `json:"specialRequests,omitempty"`

	ConfirmedAt  *string `json:"confirmedAt,omitempty"`
	CheckedInAt  *string `json:"checkedInAt,omitempty"`
	CheckedOutAt *string `json:"checkedOutAt,omitempty"`
	CancelledAt  *string `json:"cancelledAt,omitempty"`

	// Payments is only populated on the booking detail view
	Payments []PaymentResponse `json:"payments,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingStats per-status counters for a user's booking history
type BookingStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

// BookingListResponse list of bookings with aggregate counters
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Stats    BookingStats      `json:"stats"`
}

// PaymentResponse payment payload returned to clients
type PaymentResponse struct {
	ID            int64     `json:"id"`
	BookingID     int64     `json:"bookingId"`
	TransactionID string    `json:"transactionId"`
	Amount        string    `json:"amount"`
	Currency      string    `json:"currency"`
	Method        string    `json:"method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CancelBookingResponse cancellation outcome with the resolved refund
type CancelBookingResponse struct {
	BookingID        int64  `json:"bookingId"`
	Status           string `json:"status"`
	RefundPercentage string `json:"refundPercentage"`
	RefundAmount     string `json:"refundAmount"`
	RefundID         string `json:"refundId"`
}

// PaymentStatusResponse latest payment state for a booking reference
type PaymentStatusResponse struct {
	BookingRef    string  `json:"bookingRef"`
	BookingStatus string  `json:"bookingStatus"`
	PaymentStatus string  `json:"paymentStatus"`
	TransactionID *string `json:"transactionId,omitempty"`
	Amount        *string `json:"amount,omitempty"`
	Method        *string `json:"method,omitempty"`
}

// Conversion helpers

// FromDomainBooking converts a domain model to a DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                b.ID,
		BookingRef:        b.BookingRef,
		UserID:            b.UserID,
		RoomID:            b.RoomID,
		HotelID:           b.HotelID,
		CheckInDate:       b.CheckInDate.Format(domain.DateFormat),
		CheckOutDate:      b.CheckOutDate.Format(domain.DateFormat),
		NumberOfNights:    b.NumberOfNights,
		NumberOfGuests:    b.NumberOfGuests,
		GuestName:         b.GuestName,
		GuestEmail:        b.GuestEmail,
		GuestPhone:        b.GuestPhone,
		RoomPricePerNight: b.RoomPricePerNight.StringFixed(2),
		Subtotal:          b.Subtotal.StringFixed(2),
		TaxAmount:         b.TaxAmount.StringFixed(2),
		DiscountAmount:    b.DiscountAmount.StringFixed(2),
		TotalPrice:        b.TotalPrice.StringFixed(2),
		Status:            string(b.Status),
		PaymentStatus:     string(b.PaymentState),
		SpecialRequests:   b.SpecialRequests,
		ConfirmedAt:       formatTimestamp(b.ConfirmedAt),
		CheckedInAt:       formatTimestamp(b.CheckedInAt),
		CheckedOutAt:      formatTimestamp(b.CheckedOutAt),
		CancelledAt:       formatTimestamp(b.CancelledAt),
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}

	return resp
}

// FromDomainBookingList converts a list of domain models to a DTO
// and computes the per-status counters
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		bookingResp := FromDomainBooking(booking)
		if bookingResp == nil {
			continue
		}
		resp.Bookings = append(resp.Bookings, *bookingResp)

		resp.Stats.Total++
		switch booking.Status {
		case domain.StatusPending:
			resp.Stats.Pending++
		case domain.StatusConfirmed, domain.StatusCheckedIn:
			resp.Stats.Confirmed++
		case domain.StatusCheckedOut:
			resp.Stats.Completed++
		case domain.StatusCancelled:
			resp.Stats.Cancelled++
		}
	}

	return resp
}

// FromDomainPayment converts a payment domain model to a DTO
func FromDomainPayment(p *domain.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}

	return &PaymentResponse{
		ID:            p.ID,
		BookingID:     p.BookingID,
		TransactionID: p.TransactionID,
		Amount:        p.Amount.StringFixed(2),
		Currency:      p.Currency,
		Method:        string(p.Method),
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
	}
}

// FromDomainPaymentList converts a list of payment domain models to DTOs
func FromDomainPaymentList(payments []*domain.Payment) []PaymentResponse {
	if len(payments) == 0 {
		return nil
	}
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		if dto := FromDomainPayment(p); dto != nil {
			out = append(out, *dto)
		}
	}
	return out
}

// ToDomainBookingStatus converts a status string with validation
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCheckedIn,
		domain.StatusCheckedOut,
		domain.StatusCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}

// FormatAmount renders a decimal amount with two fraction digits
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
