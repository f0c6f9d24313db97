package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sumonben/hotelmanagement/internal/domain"
	bookingRepo "github.com/sumonben/hotelmanagement/internal/infra/storage/booking"
	paymentRepo "github.com/sumonben/hotelmanagement/internal/infra/storage/payment"
	"github.com/sumonben/hotelmanagement/internal/service/bookings/models"
)

// Service handles booking lifecycle, payments and cancellation
type Service struct {
	bookingRepo BookingRepository
	paymentRepo PaymentRepository
	policyRepo  PolicyRepository
	roomRepo    RoomRepository
	txManager   TransactionManager
	clock       TimeProvider
	currency    string
	logger      Logger
}

// NewService creates a booking service
func NewService(
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	policyRepo PolicyRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	clock TimeProvider,
	currency string,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		policyRepo:  policyRepo,
		roomRepo:    roomRepo,
		txManager:   txManager,
		clock:       clock,
		currency:    currency,
		logger:      logger,
	}
}

// GetByID fetches a booking with its payment history. Users can only
// see their own bookings. Booking and payments are read in one
// read-only transaction so the detail view is a consistent snapshot.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	var booking *domain.Booking
	var payments []*domain.Payment

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		b, err := s.getBooking(txCtx, id, "GetByID")
		if err != nil {
			return err
		}

		if b.UserID != userID {
			s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
			return ErrAccessDenied
		}

		p, err := s.paymentRepo.ListByBooking(txCtx, b.ID)
		if err != nil {
			s.logger.Error("GetByID: payment history lookup failed for booking id=%d: %v", id, err)
			return fmt.Errorf("%w: GetByID - payment history: %v", ErrInternal, err)
		}

		booking, payments = b, p
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := models.FromDomainBooking(booking)
	resp.Payments = models.FromDomainPaymentList(payments)
	return resp, nil
}

// GetUserBookings fetches a user's booking history with per-status
// counters, optionally filtered by status
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// Search looks bookings up by reference or guest email for front-desk
// staff. At least one criterion is required.
func (s *Service) Search(ctx context.Context, req *models.SearchBookingsRequest) (*models.BookingListResponse, error) {
	if req.BookingRef == nil && req.GuestEmail == nil {
		return nil, fmt.Errorf("%w: at least one search criterion is required", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.Search(ctx, req.BookingRef, req.GuestEmail)
	if err != nil {
		s.logger.Error("Search: repository error: %v", err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Search: found %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetPaymentStatus reports the latest payment for a booking reference
// together with the booking's own state
func (s *Service) GetPaymentStatus(ctx context.Context, ref string) (*models.PaymentStatusResponse, error) {
	booking, err := s.bookingRepo.GetByRef(ctx, ref)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetPaymentStatus: repository error for ref=%s: %v", ref, err)
		return nil, fmt.Errorf("%w: GetPaymentStatus - repository error: %v", ErrInternal, err)
	}

	resp := &models.PaymentStatusResponse{
		BookingRef:    booking.BookingRef,
		BookingStatus: string(booking.Status),
		PaymentStatus: string(booking.PaymentState),
	}

	payment, err := s.paymentRepo.GetLatestByBookingRef(ctx, ref)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			// A booking with no payment attempts yet is a normal answer
			return resp, nil
		}
		s.logger.Error("GetPaymentStatus: payment lookup failed for ref=%s: %v", ref, err)
		return nil, fmt.Errorf("%w: GetPaymentStatus - payment lookup: %v", ErrInternal, err)
	}

	amount := payment.Amount.StringFixed(2)
	method := string(payment.Method)
	resp.TransactionID = &payment.TransactionID
	resp.Amount = &amount
	resp.Method = &method

	return resp, nil
}

// Pay settles a booking with a direct payment method, recording a
// completed payment and confirming the booking in one transaction.
// Gateway payments go through the checkout session flow instead.
func (s *Service) Pay(ctx context.Context, bookingID int64, req *models.PayBookingRequest) (*models.PaymentResponse, error) {
	s.logger.Info("Pay: paying booking id=%d by user=%d, method=%s", bookingID, req.UserID, req.Method)

	if !domain.ValidMethod(req.Method) {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, req.Method)
	}
	method := domain.PaymentMethod(req.Method)
	if method == domain.MethodSSLCommerz || method == domain.MethodRefund {
		return nil, fmt.Errorf("%w: method %q is not accepted here", ErrInvalidInput, req.Method)
	}

	booking, err := s.getBooking(ctx, bookingID, "Pay")
	if err != nil {
		return nil, err
	}

	if booking.UserID != req.UserID {
		s.logger.Warn("Pay: access denied for user=%d to booking id=%d", req.UserID, bookingID)
		return nil, ErrAccessDenied
	}

	if !booking.CanConfirm() {
		s.logger.Warn("Pay: booking id=%d not payable, status=%s", bookingID, booking.Status)
		return nil, fmt.Errorf("%w: cannot confirm from status %s", ErrInvalidTransition, booking.Status)
	}

	now := s.clock.Now()
	payment := &domain.Payment{
		BookingID:     booking.ID,
		Amount:        booking.TotalPrice,
		Currency:      s.currency,
		Method:        method,
		TransactionID: domain.NewTransactionID(now),
		Status:        domain.PaymentCompleted,
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.paymentRepo.Create(ctx, payment); err != nil {
			return fmt.Errorf("create payment: %w", err)
		}
		if err := s.bookingRepo.Confirm(ctx, booking.ID, now); err != nil {
			return fmt.Errorf("confirm booking: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Pay: transaction failed for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Pay - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("Pay: booking id=%d confirmed, transaction_id=%s", bookingID, payment.TransactionID)
	return models.FromDomainPayment(payment), nil
}

// CheckIn transitions a confirmed booking to checked_in and marks the
// room occupied. Front-desk operation, no owner check.
func (s *Service) CheckIn(ctx context.Context, bookingID int64) (*models.BookingResponse, error) {
	s.logger.Info("CheckIn: checking in booking id=%d", bookingID)

	booking, err := s.getBooking(ctx, bookingID, "CheckIn")
	if err != nil {
		return nil, err
	}

	if !booking.CanCheckIn() {
		s.logger.Warn("CheckIn: booking id=%d not eligible, status=%s", bookingID, booking.Status)
		return nil, fmt.Errorf("%w: cannot check in from status %s", ErrInvalidTransition, booking.Status)
	}

	now := s.clock.Now()
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.bookingRepo.CheckIn(ctx, booking.ID, now); err != nil {
			return fmt.Errorf("check in booking: %w", err)
		}
		if err := s.roomRepo.UpdateStatus(ctx, booking.RoomID, domain.RoomOccupied); err != nil {
			return fmt.Errorf("mark room occupied: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("CheckIn: transaction failed for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: CheckIn - transaction failed: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusCheckedIn
	booking.CheckedInAt = &now
	s.logger.Info("CheckIn: booking id=%d checked in", bookingID)
	return models.FromDomainBooking(booking), nil
}

// CheckOut transitions a booking to checked_out and releases the room.
// Checking out directly from confirmed is allowed for early departures.
func (s *Service) CheckOut(ctx context.Context, bookingID int64) (*models.BookingResponse, error) {
	s.logger.Info("CheckOut: checking out booking id=%d", bookingID)

	booking, err := s.getBooking(ctx, bookingID, "CheckOut")
	if err != nil {
		return nil, err
	}

	if !booking.CanCheckOut() {
		s.logger.Warn("CheckOut: booking id=%d not eligible, status=%s", bookingID, booking.Status)
		return nil, fmt.Errorf("%w: cannot check out from status %s", ErrInvalidTransition, booking.Status)
	}

	now := s.clock.Now()
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.bookingRepo.CheckOut(ctx, booking.ID, now); err != nil {
			return fmt.Errorf("check out booking: %w", err)
		}
		if err := s.roomRepo.UpdateStatus(ctx, booking.RoomID, domain.RoomAvailable); err != nil {
			return fmt.Errorf("release room: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("CheckOut: transaction failed for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: CheckOut - transaction failed: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusCheckedOut
	booking.CheckedOutAt = &now
	s.logger.Info("CheckOut: booking id=%d checked out", bookingID)
	return models.FromDomainBooking(booking), nil
}

// Cancel cancels a booking and resolves the refund from the hotel's
// cancellation policy tiers. A refund payment row is recorded even when
// the resolved refund is zero, so every cancellation leaves a money trail.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) (*models.CancelBookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	booking, err := s.getBooking(ctx, bookingID, "Cancel")
	if err != nil {
		return nil, err
	}

	if booking.UserID != req.UserID {
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", req.UserID, bookingID)
		return nil, ErrAccessDenied
	}

	if !booking.CanCancel() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return nil, ErrCannotCancel
	}

	policies, err := s.policyRepo.GetActiveByHotel(ctx, booking.HotelID)
	if err != nil {
		s.logger.Error("Cancel: failed to load policies for hotel=%d: %v", booking.HotelID, err)
		return nil, fmt.Errorf("%w: Cancel - load policies: %v", ErrInternal, err)
	}

	now := s.clock.Now()
	daysUntilCheckIn := booking.DaysUntilCheckIn(now)
	refundPct := domain.ResolveRefundPercentage(policies, daysUntilCheckIn)

	// Only money actually collected can be refunded
	refundAmount := decimal.Zero
	newPaymentState := booking.PaymentState
	if booking.PaymentState == domain.PaymentStateCompleted {
		refundAmount = domain.RefundAmount(booking.TotalPrice, refundPct)
		newPaymentState = domain.PaymentStateRefunded
	}

	refund := &domain.Payment{
		BookingID:     booking.ID,
		Amount:        refundAmount,
		Currency:      s.currency,
		Method:        domain.MethodRefund,
		TransactionID: domain.NewRefundID(),
		Status:        domain.PaymentCompleted,
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.bookingRepo.Cancel(ctx, booking.ID, newPaymentState, now); err != nil {
			return fmt.Errorf("cancel booking: %w", err)
		}
		if _, err := s.paymentRepo.Create(ctx, refund); err != nil {
			return fmt.Errorf("record refund: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Cancel: transaction failed for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking id=%d cancelled, days_until_checkin=%d, refund=%d%% (%s)",
		bookingID, daysUntilCheckIn, refundPct, refundAmount.StringFixed(2))

	return &models.CancelBookingResponse{
		BookingID:        booking.ID,
		Status:           string(domain.StatusCancelled),
		RefundPercentage: fmt.Sprintf("%d", refundPct),
		RefundAmount:     refundAmount.StringFixed(2),
		RefundID:         refund.TransactionID,
	}, nil
}

func (s *Service) getBooking(ctx context.Context, id int64, op string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}
