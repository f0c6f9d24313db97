package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumonben/hotelmanagement/internal/domain"
	bookingRepo "github.com/sumonben/hotelmanagement/internal/infra/storage/booking"
	paymentRepo "github.com/sumonben/hotelmanagement/internal/infra/storage/payment"
	"github.com/sumonben/hotelmanagement/internal/service/bookings/models"
)

// Mocks

type mockBookingRepo struct {
	bookings map[int64]*domain.Booking
	byRef    map[string]*domain.Booking

	confirmed    []int64
	checkedIn    []int64
	checkedOut   []int64
	cancelled    []int64
	cancelStates []domain.PaymentState
}

func newMockBookingRepo(bookings ...*domain.Booking) *mockBookingRepo {
	m := &mockBookingRepo{
		bookings: make(map[int64]*domain.Booking),
		byRef:    make(map[string]*domain.Booking),
	}
	for _, b := range bookings {
		m.bookings[b.ID] = b
		m.byRef[b.BookingRef] = b
	}
	return m
}

func (m *mockBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (m *mockBookingRepo) GetByRef(_ context.Context, ref string) (*domain.Booking, error) {
	b, ok := m.byRef[ref]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (m *mockBookingRepo) GetByUserID(_ context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range m.bookings {
		if b.UserID != userID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (m *mockBookingRepo) Search(_ context.Context, ref, guestEmail *string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range m.bookings {
		if ref != nil && b.BookingRef != *ref {
			continue
		}
		if guestEmail != nil && b.GuestEmail != *guestEmail {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (m *mockBookingRepo) Confirm(_ context.Context, id int64, _ time.Time) error {
	m.confirmed = append(m.confirmed, id)
	return nil
}

func (m *mockBookingRepo) CheckIn(_ context.Context, id int64, _ time.Time) error {
	m.checkedIn = append(m.checkedIn, id)
	return nil
}

func (m *mockBookingRepo) CheckOut(_ context.Context, id int64, _ time.Time) error {
	m.checkedOut = append(m.checkedOut, id)
	return nil
}

func (m *mockBookingRepo) Cancel(_ context.Context, id int64, paymentState domain.PaymentState, _ time.Time) error {
	m.cancelled = append(m.cancelled, id)
	m.cancelStates = append(m.cancelStates, paymentState)
	return nil
}

type mockPaymentRepo struct {
	created []*domain.Payment
	latest  map[string]*domain.Payment
}

func newMockPaymentRepo() *mockPaymentRepo {
	return &mockPaymentRepo{latest: make(map[string]*domain.Payment)}
}

func (m *mockPaymentRepo) Create(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
	p := *payment
	p.ID = int64(len(m.created) + 1)
	m.created = append(m.created, &p)
	return &p, nil
}

func (m *mockPaymentRepo) ListByBooking(_ context.Context, bookingID int64) ([]*domain.Payment, error) {
	var out []*domain.Payment
	for _, p := range m.created {
		if p.BookingID == bookingID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPaymentRepo) GetLatestByBookingRef(_ context.Context, ref string) (*domain.Payment, error) {
	p, ok := m.latest[ref]
	if !ok {
		return nil, paymentRepo.ErrPaymentNotFound
	}
	return p, nil
}

type mockPolicyRepo struct {
	policies []*domain.CancellationPolicy
}

func (m *mockPolicyRepo) GetActiveByHotel(_ context.Context, _ int64) ([]*domain.CancellationPolicy, error) {
	return m.policies, nil
}

type mockRoomRepo struct {
	statusUpdates map[int64]domain.RoomStatus
}

func newMockRoomRepo() *mockRoomRepo {
	return &mockRoomRepo{statusUpdates: make(map[int64]domain.RoomStatus)}
}

func (m *mockRoomRepo) UpdateStatus(_ context.Context, id int64, status domain.RoomStatus) error {
	m.statusUpdates[id] = status
	return nil
}

type mockTxManager struct{}

func (m *mockTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *mockTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Fixtures

var testNow = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

func testBooking(status domain.BookingStatus, paymentState domain.PaymentState) *domain.Booking {
	return &domain.Booking{
		ID:                1,
		BookingRef:        "BK20260101ABCDEF01",
		UserID:            42,
		RoomID:            7,
		HotelID:           1,
		CheckInDate:       time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC),
		CheckOutDate:      time.Date(2026, 1, 23, 0, 0, 0, 0, time.UTC),
		NumberOfNights:    3,
		NumberOfGuests:    2,
		GuestName:         "Guest One",
		GuestEmail:        "guest@example.com",
		GuestPhone:        "+8801700000000",
		RoomPricePerNight: decimal.RequireFromString("100.00"),
		Subtotal:          decimal.RequireFromString("300.00"),
		TaxAmount:         decimal.RequireFromString("30.00"),
		DiscountAmount:    decimal.Zero,
		TotalPrice:        decimal.RequireFromString("330.00"),
		Status:            status,
		PaymentState:      paymentState,
	}
}

type serviceFixture struct {
	svc         *Service
	bookingRepo *mockBookingRepo
	paymentRepo *mockPaymentRepo
	policyRepo  *mockPolicyRepo
	roomRepo    *mockRoomRepo
}

func newServiceFixture(policies []*domain.CancellationPolicy, bookings ...*domain.Booking) *serviceFixture {
	f := &serviceFixture{
		bookingRepo: newMockBookingRepo(bookings...),
		paymentRepo: newMockPaymentRepo(),
		policyRepo:  &mockPolicyRepo{policies: policies},
		roomRepo:    newMockRoomRepo(),
	}
	f.svc = NewService(
		f.bookingRepo, f.paymentRepo, f.policyRepo, f.roomRepo,
		&mockTxManager{}, &fixedClock{now: testNow}, "BDT", nopLogger{},
	)
	return f
}

func hotelPolicies() []*domain.CancellationPolicy {
	return []*domain.CancellationPolicy{
		{ID: 1, HotelID: 1, DaysBeforeCheckIn: 7, RefundPercentage: 100, IsActive: true},
		{ID: 2, HotelID: 1, DaysBeforeCheckIn: 3, RefundPercentage: 50, IsActive: true},
		{ID: 3, HotelID: 1, DaysBeforeCheckIn: 1, RefundPercentage: 20, IsActive: true},
	}
}

// Tests

func TestGetByID(t *testing.T) {
	f := newServiceFixture(nil, testBooking(domain.StatusPending, domain.PaymentStatePending))

	resp, err := f.svc.GetByID(context.Background(), 1, 42)

	require.NoError(t, err)
	assert.Equal(t, "BK20260101ABCDEF01", resp.BookingRef)
	assert.Equal(t, "330.00", resp.TotalPrice)
	assert.Empty(t, resp.Payments)
}

func TestGetByID_IncludesPaymentHistory(t *testing.T) {
	f := newServiceFixture(nil, testBooking(domain.StatusConfirmed, domain.PaymentStateCompleted))
	f.paymentRepo.created = []*domain.Payment{
		{
			ID:            1,
			BookingID:     1,
			Amount:        decimal.RequireFromString("330.00"),
			Currency:      "BDT",
			Method:        domain.MethodSSLCommerz,
			TransactionID: "TXN20260110120000AB",
			Status:        domain.PaymentCompleted,
		},
		{
			ID:            2,
			BookingID:     99,
			Amount:        decimal.RequireFromString("500.00"),
			Currency:      "BDT",
			Method:        domain.MethodSSLCommerz,
			TransactionID: "TXN20260110120000CD",
			Status:        domain.PaymentCompleted,
		},
	}

	resp, err := f.svc.GetByID(context.Background(), 1, 42)

	require.NoError(t, err)
	require.Len(t, resp.Payments, 1)
	assert.Equal(t, "TXN20260110120000AB", resp.Payments[0].TransactionID)
	assert.Equal(t, "330.00", resp.Payments[0].Amount)
	assert.Equal(t, "completed", resp.Payments[0].Status)
}

func TestGetByID_AccessDenied(t *testing.T) {
	f := newServiceFixture(nil, testBooking(domain.StatusPending, domain.PaymentStatePending))

	_, err := f.svc.GetByID(context.Background(), 1, 99)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	f := newServiceFixture(nil)

	_, err := f.svc.GetByID(context.Background(), 404, 42)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestPay_ConfirmsPendingBooking(t *testing.T) {
	f := newServiceFixture(nil, testBooking(domain.StatusPending, domain.PaymentStatePending))

	resp, err := f.svc.Pay(context.Background(), 1, &models.PayBookingRequest{
		UserID: 42,
		Method: "credit_card",
	})

	require.NoError(t, err)
	assert.Equal(t, "330.00", resp.Amount)
	assert.Equal(t, "BDT", resp.Currency)
	assert.Equal(t, "completed", resp.Status)
	assert.Regexp(t, `^TXN`, resp.TransactionID)

	assert.Equal(t, []int64{1}, f.bookingRepo.confirmed)
	require.Len(t, f.paymentRepo.created, 1)
	assert.Equal(t, domain.PaymentMethod("credit_card"), f.paymentRepo.created[0].Method)
}

func TestPay_InvalidStates(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.BookingStatus
		payment domain.PaymentState
	}{
		{"already confirmed", domain.StatusConfirmed, domain.PaymentStateCompleted},
		{"checked in", domain.StatusCheckedIn, domain.PaymentStateCompleted},
		{"cancelled", domain.StatusCancelled, domain.PaymentStatePending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServiceFixture(nil, testBooking(tt.status, tt.payment))

			_, err := f.svc.Pay(context.Background(), 1, &models.PayBookingRequest{
				UserID: 42,
				Method: "credit_card",
			})

			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Empty(t, f.bookingRepo.confirmed)
			assert.Empty(t, f.paymentRepo.created)
		})
	}
}

func TestPay_RejectsGatewayAndRefundMethods(t *testing.T) {
	for _, method := range []string{"sslcommerz", "refund", "bitcoin"} {
		t.Run(method, func(t *testing.T) {
			f := newServiceFixture(nil, testBooking(domain.StatusPending, domain.PaymentStatePending))

			_, err := f.svc.Pay(context.Background(), 1, &models.PayBookingRequest{
				UserID: 42,
				Method: method,
			})

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestPay_AccessDenied(t *testing.T) {
	f := newServiceFixture(nil, testBooking(domain.StatusPending, domain.PaymentStatePending))

	_, err := f.svc.Pay(context.Background(), 1, &models.PayBookingRequest{
		UserID: 99,
		Method: "credit_card",
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCheckIn(t *testing.T) {
	f := newServiceFixture(nil, testBooking(domain.StatusConfirmed, domain.PaymentStateCompleted))

	resp, err := f.svc.CheckIn(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "checked_in", resp.Status)
	assert.NotNil(t, resp.CheckedInAt)
	assert.Equal(t, []int64{1}, f.bookingRepo.checkedIn)
	assert.Equal(t, domain.RoomOccupied, f.roomRepo.statusUpdates[7])
}

func TestCheckIn_FromPending(t *testing.T) {
	f := newServiceFixture(nil, testBooking(domain.StatusPending, domain.PaymentStatePending))

	_, err := f.svc.CheckIn(context.Background(), 1)

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, f.roomRepo.statusUpdates)
}

func TestCheckOut(t *testing.T) {
	tests := []struct {
		name   string
		status domain.BookingStatus
	}{
		{"from checked_in", domain.StatusCheckedIn},
		{"early departure from confirmed", domain.StatusConfirmed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServiceFixture(nil, testBooking(tt.status, domain.PaymentStateCompleted))

			resp, err := f.svc.CheckOut(context.Background(), 1)

			require.NoError(t, err)
			assert.Equal(t, "checked_out", resp.Status)
			assert.Equal(t, []int64{1}, f.bookingRepo.checkedOut)
			assert.Equal(t, domain.RoomAvailable, f.roomRepo.statusUpdates[7])
		})
	}
}

func TestCheckOut_FromPending(t *testing.T) {
	f := newServiceFixture(nil, testBooking(domain.StatusPending, domain.PaymentStatePending))

	_, err := f.svc.CheckOut(context.Background(), 1)

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCancel_PaidBookingGetsTieredRefund(t *testing.T) {
	// Check-in Jan 20, cancelling Jan 10: 10 days out, 100% tier
	f := newServiceFixture(hotelPolicies(), testBooking(domain.StatusConfirmed, domain.PaymentStateCompleted))

	resp, err := f.svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 42})

	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	assert.Equal(t, "100", resp.RefundPercentage)
	assert.Equal(t, "330.00", resp.RefundAmount)
	assert.Regexp(t, `^REFUND`, resp.RefundID)

	require.Equal(t, []domain.PaymentState{domain.PaymentStateRefunded}, f.bookingRepo.cancelStates)
	require.Len(t, f.paymentRepo.created, 1)
	refund := f.paymentRepo.created[0]
	assert.Equal(t, domain.MethodRefund, refund.Method)
	assert.Equal(t, "330.00", refund.Amount.StringFixed(2))
}

func TestCancel_MidTier(t *testing.T) {
	// Check-in Jan 20, cancelling Jan 15: 5 days out, 50% tier
	f := newServiceFixture(hotelPolicies(), testBooking(domain.StatusConfirmed, domain.PaymentStateCompleted))
	f.svc.clock = &fixedClock{now: time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)}

	resp, err := f.svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 42})

	require.NoError(t, err)
	assert.Equal(t, "50", resp.RefundPercentage)
	assert.Equal(t, "165.00", resp.RefundAmount)
}

func TestCancel_UnpaidBookingGetsZeroRefund(t *testing.T) {
	f := newServiceFixture(hotelPolicies(), testBooking(domain.StatusPending, domain.PaymentStatePending))

	resp, err := f.svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 42})

	require.NoError(t, err)
	assert.Equal(t, "100", resp.RefundPercentage)
	assert.Equal(t, "0.00", resp.RefundAmount)

	// Payment state stays pending: nothing was collected, nothing refunded
	require.Equal(t, []domain.PaymentState{domain.PaymentStatePending}, f.bookingRepo.cancelStates)

	// The zero refund still leaves a money trail
	require.Len(t, f.paymentRepo.created, 1)
	assert.Equal(t, "0.00", f.paymentRepo.created[0].Amount.StringFixed(2))
}

func TestCancel_NoMatchingTier(t *testing.T) {
	// Check-in Jan 20, cancelling Jan 20: 0 days out, no tier matches
	f := newServiceFixture(hotelPolicies(), testBooking(domain.StatusConfirmed, domain.PaymentStateCompleted))
	f.svc.clock = &fixedClock{now: time.Date(2026, 1, 20, 8, 0, 0, 0, time.UTC)}

	resp, err := f.svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 42})

	require.NoError(t, err)
	assert.Equal(t, "0", resp.RefundPercentage)
	assert.Equal(t, "0.00", resp.RefundAmount)
	assert.Equal(t, []domain.PaymentState{domain.PaymentStateRefunded}, f.bookingRepo.cancelStates)
}

func TestCancel_InvalidStates(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusCheckedIn, domain.StatusCheckedOut, domain.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			f := newServiceFixture(hotelPolicies(), testBooking(status, domain.PaymentStateCompleted))

			_, err := f.svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 42})

			assert.ErrorIs(t, err, ErrCannotCancel)
			assert.Empty(t, f.bookingRepo.cancelled)
		})
	}
}

func TestCancel_AccessDenied(t *testing.T) {
	f := newServiceFixture(hotelPolicies(), testBooking(domain.StatusConfirmed, domain.PaymentStateCompleted))

	_, err := f.svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 99})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetPaymentStatus(t *testing.T) {
	booking := testBooking(domain.StatusConfirmed, domain.PaymentStateCompleted)
	f := newServiceFixture(nil, booking)
	f.paymentRepo.latest[booking.BookingRef] = &domain.Payment{
		BookingID:     1,
		Amount:        decimal.RequireFromString("330.00"),
		Currency:      "BDT",
		Method:        domain.MethodSSLCommerz,
		TransactionID: "TXN20260110120000AB",
		Status:        domain.PaymentCompleted,
	}

	resp, err := f.svc.GetPaymentStatus(context.Background(), booking.BookingRef)

	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.BookingStatus)
	assert.Equal(t, "completed", resp.PaymentStatus)
	require.NotNil(t, resp.TransactionID)
	assert.Equal(t, "TXN20260110120000AB", *resp.TransactionID)
	require.NotNil(t, resp.Amount)
	assert.Equal(t, "330.00", *resp.Amount)
}

func TestGetPaymentStatus_NoPaymentsYet(t *testing.T) {
	booking := testBooking(domain.StatusPending, domain.PaymentStatePending)
	f := newServiceFixture(nil, booking)

	resp, err := f.svc.GetPaymentStatus(context.Background(), booking.BookingRef)

	require.NoError(t, err)
	assert.Equal(t, "pending", resp.BookingStatus)
	assert.Nil(t, resp.TransactionID)
	assert.Nil(t, resp.Amount)
}

func TestGetPaymentStatus_UnknownRef(t *testing.T) {
	f := newServiceFixture(nil)

	_, err := f.svc.GetPaymentStatus(context.Background(), "BK00000000FFFFFFFF")

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestSearch_RequiresCriterion(t *testing.T) {
	f := newServiceFixture(nil)

	_, err := f.svc.Search(context.Background(), &models.SearchBookingsRequest{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	f := newServiceFixture(nil)
	bad := "no_such_status"

	_, err := f.svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 42,
		Status: &bad,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
