package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumonben/hotelmanagement/internal/domain"
	roomRepo "github.com/sumonben/hotelmanagement/internal/infra/storage/room"
)

type mockBookingRepo struct {
	blocking []*domain.Booking
}

func (m *mockBookingRepo) GetBlockingByRoom(_ context.Context, _ int64) ([]*domain.Booking, error) {
	return m.blocking, nil
}

type mockRoomRepo struct {
	room *domain.Room
}

func (m *mockRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	if m.room == nil || m.room.ID != id {
		return nil, roomRepo.ErrRoomNotFound
	}
	return m.room, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testRoom() *domain.Room {
	return &domain.Room{
		ID:            7,
		HotelID:       1,
		PricePerNight: decimal.RequireFromString("100.00"),
		Status:        domain.RoomAvailable,
		IsActive:      true,
		MaxGuests:     3,
	}
}

func newUseCaseWith(room *domain.Room, blocking ...*domain.Booking) *UseCase {
	return NewUseCase(&mockBookingRepo{blocking: blocking}, &mockRoomRepo{room: room}, nopLogger{})
}

func TestExecute_AvailableWithQuote(t *testing.T) {
	uc := newUseCaseWith(testRoom())

	resp, err := uc.Execute(context.Background(), &Request{
		HotelID:      1,
		RoomID:       7,
		CheckInDate:  date(2026, 1, 10),
		CheckOutDate: date(2026, 1, 13),
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, "100.00", resp.NightlyRate)
	assert.Equal(t, "300.00", resp.Subtotal)
	assert.Equal(t, "30.00", resp.TaxAmount)
	assert.Equal(t, "330.00", resp.TotalPrice)
}

func TestExecute_BlockedByOverlap(t *testing.T) {
	blocking := &domain.Booking{
		ID:           5,
		Status:       domain.StatusConfirmed,
		CheckInDate:  date(2026, 1, 12),
		CheckOutDate: date(2026, 1, 15),
	}
	uc := newUseCaseWith(testRoom(), blocking)

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:       7,
		CheckInDate:  date(2026, 1, 10),
		CheckOutDate: date(2026, 1, 13),
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Empty(t, resp.TotalPrice)
}

func TestExecute_BackToBackIsAvailable(t *testing.T) {
	blocking := &domain.Booking{
		Status:       domain.StatusConfirmed,
		CheckInDate:  date(2026, 1, 13),
		CheckOutDate: date(2026, 1, 16),
	}
	uc := newUseCaseWith(testRoom(), blocking)

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:       7,
		CheckInDate:  date(2026, 1, 10),
		CheckOutDate: date(2026, 1, 13),
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_RoomUnderMaintenance(t *testing.T) {
	room := testRoom()
	room.Status = domain.RoomMaintenance
	uc := newUseCaseWith(room)

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:       7,
		CheckInDate:  date(2026, 1, 10),
		CheckOutDate: date(2026, 1, 13),
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
}

func TestExecute_RoomNotFound(t *testing.T) {
	uc := newUseCaseWith(nil)

	_, err := uc.Execute(context.Background(), &Request{
		RoomID:       404,
		CheckInDate:  date(2026, 1, 10),
		CheckOutDate: date(2026, 1, 13),
	})

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_WrongHotel(t *testing.T) {
	uc := newUseCaseWith(testRoom())

	_, err := uc.Execute(context.Background(), &Request{
		HotelID:      2,
		RoomID:       7,
		CheckInDate:  date(2026, 1, 10),
		CheckOutDate: date(2026, 1, 13),
	})

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_InvalidRange(t *testing.T) {
	uc := newUseCaseWith(testRoom())

	_, err := uc.Execute(context.Background(), &Request{
		RoomID:       7,
		CheckInDate:  date(2026, 1, 13),
		CheckOutDate: date(2026, 1, 13),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = uc.Execute(context.Background(), &Request{
		RoomID:       7,
		CheckInDate:  date(2026, 1, 13),
		CheckOutDate: date(2026, 1, 10),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestExecute_MissingDates(t *testing.T) {
	uc := newUseCaseWith(testRoom())

	_, err := uc.Execute(context.Background(), &Request{RoomID: 7})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
