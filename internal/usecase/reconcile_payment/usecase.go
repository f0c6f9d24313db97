package reconcile_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sumonben/hotelmanagement/internal/domain"
	bookingRepo "github.com/sumonben/hotelmanagement/internal/infra/storage/booking"
	paymentRepo "github.com/sumonben/hotelmanagement/internal/infra/storage/payment"
	"github.com/sumonben/hotelmanagement/internal/integrations/sslcommerz"
	"github.com/sumonben/hotelmanagement/pkg/ptr"
)

// UseCase reconciles gateway callbacks against recorded payments
type UseCase struct {
	bookingRepo         BookingRepository
	paymentRepo         PaymentRepository
	gateway             GatewayClient
	txManager           TransactionManager
	timeProvider        TimeProvider
	allowGlobalFallback bool
	currency            string
	logger              Logger
}

// NewUseCase creates the payment reconciliation use case
func NewUseCase(
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	gateway GatewayClient,
	txManager TransactionManager,
	allowGlobalFallback bool,
	currency string,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:         bookingRepo,
		paymentRepo:         paymentRepo,
		gateway:             gateway,
		txManager:           txManager,
		timeProvider:        &RealTimeProvider{},
		allowGlobalFallback: allowGlobalFallback,
		currency:            currency,
		logger:              logger,
	}
}

// Execute matches a gateway callback to a payment and settles it.
//
// Resolution tries, in order: the session key, the merchant transaction
// id, the order number (our booking reference), and finally the newest
// pending gateway payment system-wide. The last step can mis-attribute
// a payment under concurrent checkouts and is disabled unless
// allowGlobalFallback is set.
//
// A callback claiming success is only trusted after the gateway's
// validation API confirms it. Failed verification marks the payment
// failed rather than leaving it pending forever.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	payload := req.Payload

	payment, resolvedBy, err := uc.resolvePayment(ctx, payload)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		uc.logger.Warn("ReconcilePayment: callback could not be matched to any payment")
		return &Response{Outcome: OutcomeUnresolved}, nil
	}

	uc.logger.Info("ReconcilePayment: matched payment id=%d via %s, booking=%d",
		payment.ID, resolvedBy, payment.BookingID)

	booking, err := uc.bookingRepo.GetByID(ctx, payment.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Error("ReconcilePayment: payment id=%d references missing booking id=%d",
				payment.ID, payment.BookingID)
			return nil, fmt.Errorf("%w: booking id=%d not found", ErrInternal, payment.BookingID)
		}
		return nil, fmt.Errorf("%w: load booking: %v", ErrInternal, err)
	}

	resp := &Response{
		BookingID:     booking.ID,
		BookingRef:    booking.BookingRef,
		TransactionID: payment.TransactionID,
		ResolvedBy:    resolvedBy,
	}

	// Duplicate delivery of an already settled callback
	if payment.IsTerminal() {
		uc.logger.Info("ReconcilePayment: payment id=%d already %s, ignoring duplicate callback",
			payment.ID, payment.Status)
		resp.Outcome = OutcomeAlreadyProcessed
		return resp, nil
	}

	if !payload.Succeeded() {
		uc.logger.Info("ReconcilePayment: callback reports failure for payment id=%d", payment.ID)
		if err := uc.settleFailed(ctx, payment, booking); err != nil {
			return nil, err
		}
		resp.Outcome = OutcomeFailed
		return resp, nil
	}

	validation, err := uc.verify(ctx, payload, payment)
	if err != nil {
		return nil, err
	}
	if validation == nil {
		if err := uc.settleFailed(ctx, payment, booking); err != nil {
			return nil, err
		}
		resp.Outcome = OutcomeFailed
		return resp, nil
	}

	// The gateway's transaction id wins over whatever the callback carried
	authoritativeID := payment.TransactionID
	if validation.TransactionID != "" {
		authoritativeID = validation.TransactionID
	} else if tranID, ok := payload.TransactionID(); ok {
		authoritativeID = tranID
	}

	now := uc.timeProvider.Now()
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.paymentRepo.MarkCompleted(txCtx, payment.ID, authoritativeID); err != nil {
			return fmt.Errorf("complete payment: %w", err)
		}
		if booking.CanConfirm() {
			if err := uc.bookingRepo.Confirm(txCtx, booking.ID, now); err != nil {
				return fmt.Errorf("confirm booking: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("ReconcilePayment: settlement failed for payment id=%d: %v", payment.ID, err)
		return nil, fmt.Errorf("%w: settlement failed: %v", ErrInternal, err)
	}

	uc.logger.Info("ReconcilePayment: payment id=%d completed, booking id=%d confirmed, tran_id=%s",
		payment.ID, booking.ID, authoritativeID)

	resp.Outcome = OutcomeConfirmed
	resp.TransactionID = authoritativeID
	return resp, nil
}

// resolvePayment finds the payment a callback refers to. Returns
// (nil, "", nil) when nothing matches.
func (uc *UseCase) resolvePayment(ctx context.Context, payload CallbackPayload) (*domain.Payment, string, error) {
	if sessionKey, ok := payload.SessionKey(); ok {
		payment, err := uc.paymentRepo.GetBySessionKey(ctx, sessionKey)
		if err == nil {
			return payment, "sessionkey", nil
		}
		if !errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			return nil, "", fmt.Errorf("%w: lookup by session key: %v", ErrInternal, err)
		}
	}

	if tranID, ok := payload.TransactionID(); ok {
		payment, err := uc.paymentRepo.GetByTransactionID(ctx, tranID)
		if err == nil {
			return payment, "tran_id", nil
		}
		if !errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			return nil, "", fmt.Errorf("%w: lookup by transaction id: %v", ErrInternal, err)
		}
	}

	if orderNum, ok := payload.OrderNum(); ok {
		payment, err := uc.resolveByOrderNum(ctx, payload, orderNum)
		if err != nil {
			return nil, "", err
		}
		if payment != nil {
			return payment, "order_num", nil
		}
	}

	if uc.allowGlobalFallback {
		payment, err := uc.paymentRepo.GetLatestPendingByMethod(ctx, domain.MethodSSLCommerz)
		if err == nil {
			uc.logger.Warn("ReconcilePayment: falling back to latest pending gateway payment id=%d", payment.ID)
			return payment, "latest_pending", nil
		}
		if !errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			return nil, "", fmt.Errorf("%w: latest pending lookup: %v", ErrInternal, err)
		}
	}

	return nil, "", nil
}

// resolveByOrderNum matches the callback through our booking reference.
// A booking that never got a pending gateway payment recorded (the
// initiation insert was lost) gets one created on the spot.
func (uc *UseCase) resolveByOrderNum(ctx context.Context, payload CallbackPayload, orderNum string) (*domain.Payment, error) {
	booking, err := uc.bookingRepo.GetByRef(ctx, orderNum)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: lookup booking by ref: %v", ErrInternal, err)
	}

	payment, err := uc.paymentRepo.GetPendingByBooking(ctx, booking.ID, ptr.Ptr(domain.MethodSSLCommerz))
	if err == nil {
		return payment, nil
	}
	if !errors.Is(err, paymentRepo.ErrPaymentNotFound) {
		return nil, fmt.Errorf("%w: pending payment lookup: %v", ErrInternal, err)
	}

	tranID, ok := payload.TransactionID()
	if !ok {
		tranID = domain.NewTransactionID(uc.timeProvider.Now())
	}

	uc.logger.Warn("ReconcilePayment: no pending payment for booking ref=%s, recording one", orderNum)
	created, err := uc.paymentRepo.Create(ctx, &domain.Payment{
		BookingID:     booking.ID,
		Amount:        booking.TotalPrice,
		Currency:      uc.currency,
		Method:        domain.MethodSSLCommerz,
		TransactionID: tranID,
		Status:        domain.PaymentPending,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: record missing payment: %v", ErrInternal, err)
	}

	return created, nil
}

// verify confirms a success claim with the gateway. Returns nil when the
// claim does not hold; an unreachable gateway is surfaced as an error so
// the callback can be redelivered without losing the payment.
func (uc *UseCase) verify(ctx context.Context, payload CallbackPayload, payment *domain.Payment) (*sslcommerz.ValidationResponse, error) {
	valID, ok := payload.ValidationID()
	if !ok {
		uc.logger.Warn("ReconcilePayment: success callback without validation id for payment id=%d", payment.ID)
		return nil, nil
	}

	validation, err := uc.gateway.ValidateTransaction(ctx, valID)
	if err != nil {
		if errors.Is(err, sslcommerz.ErrGatewayUnavailable) {
			uc.logger.Error("ReconcilePayment: verification unavailable for payment id=%d: %v", payment.ID, err)
			return nil, fmt.Errorf("%w: %v", ErrVerificationUnavailable, err)
		}
		return nil, fmt.Errorf("%w: verification error: %v", ErrInternal, err)
	}

	if !validation.Verified() {
		uc.logger.Warn("ReconcilePayment: gateway rejected val_id=%s for payment id=%d, status=%s",
			valID, payment.ID, validation.Status)
		return nil, nil
	}

	// The gateway-reported amount must match what we expect to collect
	if validation.Amount != "" {
		amount, err := decimal.NewFromString(validation.Amount)
		if err == nil && !amount.Equal(payment.Amount) {
			uc.logger.Warn("ReconcilePayment: amount mismatch for payment id=%d: expected %s, gateway reports %s",
				payment.ID, payment.Amount.StringFixed(2), amount.StringFixed(2))
			return nil, nil
		}
	}

	return validation, nil
}

// settleFailed marks the payment failed and, while the booking is still
// pending, reflects the failure on the booking itself
func (uc *UseCase) settleFailed(ctx context.Context, payment *domain.Payment, booking *domain.Booking) error {
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.paymentRepo.MarkFailed(txCtx, payment.ID); err != nil {
			return fmt.Errorf("mark payment failed: %w", err)
		}
		if booking.Status == domain.StatusPending {
			if err := uc.bookingRepo.MarkPaymentState(txCtx, booking.ID, domain.PaymentStateFailed); err != nil {
				return fmt.Errorf("mark booking payment state: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("ReconcilePayment: failed settlement for payment id=%d: %v", payment.ID, err)
		return fmt.Errorf("%w: failed settlement: %v", ErrInternal, err)
	}
	return nil
}
