package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/sumonben/hotelmanagement/internal/domain"
	roomRepo "github.com/sumonben/hotelmanagement/internal/infra/storage/room"
)

// UseCase answers whether a room is free for a date range
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	logger      Logger
}

// NewUseCase creates the availability check use case
func NewUseCase(bookingRepo BookingRepository, roomRepo RoomRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		logger:      logger,
	}
}

// Execute checks room availability for [checkIn, checkOut) and, when the
// room is free, attaches an estimated price breakdown. The answer is
// advisory: the authoritative check happens again inside the booking
// creation transaction.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: room=%d, check_in=%s, check_out=%s",
		req.RoomID, req.CheckInDate.Format(domain.DateFormat), req.CheckOutDate.Format(domain.DateFormat))

	if req.RoomID <= 0 {
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}
	if req.CheckInDate.IsZero() || req.CheckOutDate.IsZero() {
		return nil, fmt.Errorf("%w: check-in and check-out dates are required", ErrInvalidInput)
	}

	checkIn := domain.DateOnly(req.CheckInDate)
	checkOut := domain.DateOnly(req.CheckOutDate)

	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDateRange
	}

	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CheckAvailability: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	resp := &Response{
		RoomID:       room.ID,
		CheckInDate:  checkIn.Format(domain.DateFormat),
		CheckOutDate: checkOut.Format(domain.DateFormat),
	}

	if req.HotelID > 0 && room.HotelID != req.HotelID {
		uc.logger.Warn("CheckAvailability: room id=%d does not belong to hotel=%d", room.ID, req.HotelID)
		return nil, ErrRoomNotFound
	}

	if !room.IsBookable() {
		uc.logger.Info("CheckAvailability: room id=%d not bookable, status=%s", room.ID, room.Status)
		return resp, nil
	}

	blocking, err := uc.bookingRepo.GetBlockingByRoom(ctx, req.RoomID)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get blocking bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocking bookings: %v", ErrInternal, err)
	}

	for _, b := range blocking {
		if b.BlocksAvailability() && b.Overlaps(checkIn, checkOut) {
			uc.logger.Info("CheckAvailability: room id=%d blocked by booking id=%d", room.ID, b.ID)
			return resp, nil
		}
	}

	quote, err := domain.ComputeQuote(room.EffectivePrice(), checkIn, checkOut, domain.DefaultTaxRate)
	if err != nil {
		return nil, ErrInvalidDateRange
	}

	resp.Available = true
	resp.Nights = quote.Nights
	resp.NightlyRate = room.EffectivePrice().StringFixed(2)
	resp.Subtotal = quote.Subtotal.StringFixed(2)
	resp.TaxAmount = quote.TaxAmount.StringFixed(2)
	resp.TotalPrice = quote.TotalPrice.StringFixed(2)

	uc.logger.Info("CheckAvailability: room id=%d available, %d nights, total=%s",
		room.ID, quote.Nights, resp.TotalPrice)
	return resp, nil
}
