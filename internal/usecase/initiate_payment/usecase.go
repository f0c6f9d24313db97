package initiate_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/sumonben/hotelmanagement/internal/domain"
	bookingRepo "github.com/sumonben/hotelmanagement/internal/infra/storage/booking"
	paymentRepo "github.com/sumonben/hotelmanagement/internal/infra/storage/payment"
	"github.com/sumonben/hotelmanagement/internal/integrations/sslcommerz"
	"github.com/sumonben/hotelmanagement/pkg/ptr"
)

// UseCase opens a gateway checkout session for a pending booking
type UseCase struct {
	bookingRepo  BookingRepository
	paymentRepo  PaymentRepository
	gateway      GatewayClient
	timeProvider TimeProvider
	currency     string
	logger       Logger
}

// NewUseCase creates the payment initiation use case
func NewUseCase(
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	gateway GatewayClient,
	currency string,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		paymentRepo:  paymentRepo,
		gateway:      gateway,
		timeProvider: &RealTimeProvider{},
		currency:     currency,
		logger:       logger,
	}
}

// Execute opens a checkout session and records a pending gateway payment.
// The session key is stored with the payment so the gateway callback can
// be matched back to it. Re-initiating reuses nothing: each attempt gets
// its own transaction id and pending payment row.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("InitiatePayment: booking=%d, user=%d", req.BookingID, req.UserID)

	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("InitiatePayment: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("InitiatePayment: repository error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if booking.UserID != req.UserID {
		uc.logger.Warn("InitiatePayment: access denied for user=%d to booking id=%d", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	if !booking.CanConfirm() {
		uc.logger.Warn("InitiatePayment: booking id=%d not payable, status=%s", booking.ID, booking.Status)
		return nil, fmt.Errorf("%w: status %s", ErrNotPayable, booking.Status)
	}

	now := uc.timeProvider.Now()
	tranID := domain.NewTransactionID(now)

	session, err := uc.gateway.CreateSession(ctx, sslcommerz.SessionRequest{
		TransactionID: tranID,
		Amount:        booking.TotalPrice.StringFixed(2),
		Currency:      uc.currency,
		CustomerName:  booking.GuestName,
		CustomerEmail: booking.GuestEmail,
		CustomerPhone: booking.GuestPhone,
		ProductName:   fmt.Sprintf("Booking %s", booking.BookingRef),
		BookingRef:    booking.BookingRef,
	})
	if err != nil {
		if errors.Is(err, sslcommerz.ErrSessionRejected) {
			uc.logger.Warn("InitiatePayment: gateway rejected session for booking id=%d: %v", booking.ID, err)
			return nil, fmt.Errorf("%w: %v", ErrGatewayRejected, err)
		}
		uc.logger.Error("InitiatePayment: gateway error for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: gateway error: %v", ErrInternal, err)
	}

	payment := &domain.Payment{
		BookingID:     booking.ID,
		Amount:        booking.TotalPrice,
		Currency:      uc.currency,
		Method:        domain.MethodSSLCommerz,
		TransactionID: tranID,
		SessionKey:    ptr.Ptr(session.SessionKey),
		Status:        domain.PaymentPending,
	}

	if _, err := uc.paymentRepo.Create(ctx, payment); err != nil {
		if errors.Is(err, paymentRepo.ErrDuplicateTransactionID) {
			uc.logger.Error("InitiatePayment: transaction id collision %s", tranID)
		}
		uc.logger.Error("InitiatePayment: failed to record pending payment for booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to record payment: %v", ErrInternal, err)
	}

	uc.logger.Info("InitiatePayment: session opened for booking id=%d, tran_id=%s, sessionkey=%s",
		booking.ID, tranID, session.SessionKey)

	return &Response{
		PaymentID:      payment.ID,
		BookingRef:     booking.BookingRef,
		TransactionID:  tranID,
		SessionKey:     session.SessionKey,
		GatewayPageURL: session.GatewayPageURL,
		Amount:         booking.TotalPrice.StringFixed(2),
		Currency:       uc.currency,
	}, nil
}
