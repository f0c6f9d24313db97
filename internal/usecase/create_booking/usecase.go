package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/sumonben/hotelmanagement/internal/domain"
	bookingRepo "github.com/sumonben/hotelmanagement/internal/infra/storage/booking"
	roomRepo "github.com/sumonben/hotelmanagement/internal/infra/storage/room"
)

// refRetries attempts at generating a unique booking reference
const refRetries = 3

// UseCase creates a booking
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	profileRepo  ProfileRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the booking creation use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	profileRepo ProfileRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		profileRepo:  profileRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute creates a pending booking after checking room availability.
// The availability check and the insert run in one serializable
// transaction so two guests cannot book the same room for overlapping
// dates. A booking reference collision aborts the whole transaction
// (Postgres rejects further statements after a unique violation), so
// each retry starts a fresh transaction with a new reference.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, room=%d, check_in=%s, check_out=%s, guests=%d",
		req.UserID, req.RoomID,
		req.CheckInDate.Format(domain.DateFormat), req.CheckOutDate.Format(domain.DateFormat),
		req.NumberOfGuests)

	now := uc.timeProvider.Now()

	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	if !room.IsBookable() {
		uc.logger.Warn("CreateBooking: room id=%d not bookable, status=%s, active=%t",
			room.ID, room.Status, room.IsActive)
		return nil, ErrRoomNotBookable
	}

	if req.NumberOfGuests > room.MaxGuests {
		uc.logger.Warn("CreateBooking: %d guests exceed room id=%d capacity %d",
			req.NumberOfGuests, room.ID, room.MaxGuests)
		return nil, fmt.Errorf("%w: room holds at most %d guests", ErrTooManyGuests, room.MaxGuests)
	}

	quote, err := domain.ComputeQuote(room.EffectivePrice(), req.CheckInDate, req.CheckOutDate, domain.DefaultTaxRate)
	if err != nil {
		uc.logger.Warn("CreateBooking: quote failed: %v", err)
		return nil, ErrInvalidDateRange
	}

	booking := &domain.Booking{
		UserID:            req.UserID,
		RoomID:            room.ID,
		HotelID:           room.HotelID,
		CheckInDate:       domain.DateOnly(req.CheckInDate),
		CheckOutDate:      domain.DateOnly(req.CheckOutDate),
		NumberOfGuests:    req.NumberOfGuests,
		GuestName:         req.GuestName,
		GuestEmail:        req.GuestEmail,
		GuestPhone:        req.GuestPhone,
		RoomPricePerNight: room.EffectivePrice(),
		NumberOfNights:    quote.Nights,
		Subtotal:          quote.Subtotal,
		TaxAmount:         quote.TaxAmount,
		DiscountAmount:    quote.DiscountAmount,
		TotalPrice:        quote.TotalPrice,
		Status:            domain.StatusPending,
		PaymentState:      domain.PaymentStatePending,
		SpecialRequests:   req.SpecialRequests,
	}

	var result *domain.Booking

	for attempt := 0; attempt < refRetries; attempt++ {
		booking.BookingRef = domain.NewBookingRef(uc.timeProvider.Now())

		err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			// Blocking bookings are locked FOR UPDATE for the duration of
			// the transaction
			blocking, err := uc.bookingRepo.GetBlockingByRoom(txCtx, req.RoomID)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to get blocking bookings: %v", err)
				return fmt.Errorf("%w: failed to get blocking bookings: %v", ErrInternal, err)
			}

			if hasOverlap(blocking, req.CheckInDate, req.CheckOutDate) {
				uc.logger.Warn("CreateBooking: room id=%d already booked for requested dates", req.RoomID)
				return ErrRoomNotAvailable
			}

			created, err := uc.bookingRepo.Create(txCtx, booking)
			if err != nil {
				if errors.Is(err, bookingRepo.ErrDuplicateRef) {
					return err
				}
				uc.logger.Error("CreateBooking: failed to create booking: %v", err)
				return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
			}

			if err := uc.profileRepo.IncrementTotalBookings(txCtx, req.UserID); err != nil {
				uc.logger.Error("CreateBooking: failed to bump booking counter for user=%d: %v", req.UserID, err)
				return fmt.Errorf("%w: failed to update profile: %v", ErrInternal, err)
			}

			result = created
			return nil
		})

		if err == nil {
			break
		}
		if errors.Is(err, bookingRepo.ErrDuplicateRef) {
			uc.logger.Warn("CreateBooking: booking ref collision %s, retrying", booking.BookingRef)
			continue
		}
		return nil, err
	}

	if err != nil {
		return nil, fmt.Errorf("%w: could not generate unique booking reference", ErrInternal)
	}

	uc.logger.Info("CreateBooking: created booking id=%d, ref=%s, total=%s",
		result.ID, result.BookingRef, result.TotalPrice.StringFixed(2))

	return toResponse(result), nil
}
