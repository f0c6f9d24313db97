package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/sumonben/hotelmanagement/internal/domain"
	"github.com/sumonben/hotelmanagement/pkg/dbmetrics"
	"github.com/sumonben/hotelmanagement/pkg/psqlbuilder"
)

// uniqueViolation PostgreSQL error code for unique constraint violations
const uniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"booking_ref",
	"user_id",
	"room_id",
	"hotel_id",
	"check_in_date",
	"check_out_date",
	"number_of_guests",
	"guest_name",
	"guest_email",
	"guest_phone",
	"room_price_per_night",
	"number_of_nights",
	"subtotal",
	"tax_amount",
	"discount_amount",
	"total_price",
	"status",
	"payment_status",
	"special_requests",
	"notes",
	"confirmed_at",
	"checked_in_at",
	"checked_out_at",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository persistence for bookings
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking.
// When the context carries an active transaction the insert participates
// in it; availability checks and the insert must share one serializable
// transaction to close the check-then-create race.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"booking_ref",
			"user_id",
			"room_id",
			"hotel_id",
			"check_in_date",
			"check_out_date",
			"number_of_guests",
			"guest_name",
			"guest_email",
			"guest_phone",
			"room_price_per_night",
			"number_of_nights",
			"subtotal",
			"tax_amount",
			"discount_amount",
			"total_price",
			"status",
			"payment_status",
			"special_requests",
			"notes",
		).
		Values(
			b.BookingRef,
			b.UserID,
			b.RoomID,
			b.HotelID,
			b.CheckInDate,
			b.CheckOutDate,
			b.NumberOfGuests,
			b.GuestName,
			b.GuestEmail,
			b.GuestPhone,
			b.RoomPricePerNight,
			b.NumberOfNights,
			b.Subtotal,
			b.TaxAmount,
			b.DiscountAmount,
			b.TotalPrice,
			b.Status,
			b.PaymentState,
			b.SpecialRequests,
			b.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateRef
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID fetches a booking by its numeric id
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByRef fetches a booking by its external booking reference
func (r *Repository) GetByRef(ctx context.Context, ref string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"booking_ref": ref}, "GetByRef")
}

// GetByUserID fetches a user's booking history, newest first.
// Optionally filters by status.
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetBlockingByRoom fetches bookings that block the room's availability
// (status confirmed or checked_in). Inside a transaction the rows are
// locked with FOR UPDATE so two concurrent creations for the same room
// serialize on them.
func (r *Repository) GetBlockingByRoom(ctx context.Context, roomID int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	statuses := make([]string, len(domain.BlockingStatuses))
	for i, s := range domain.BlockingStatuses {
		statuses[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"status": statuses}).
		OrderBy("check_in_date ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockingByRoom - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockingByRoom - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Search finds bookings by booking reference or guest e-mail.
// Exactly one of the filters is expected; when both are given the
// reference wins.
func (r *Repository) Search(ctx context.Context, ref *string, guestEmail *string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("created_at DESC")

	switch {
	case ref != nil:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_ref": *ref})
	case guestEmail != nil:
		selectBuilder = selectBuilder.Where(squirrel.Eq{"guest_email": *guestEmail})
	default:
		return []*domain.Booking{}, nil
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Search - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Search - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Confirm transitions the booking to confirmed with a completed payment
// state and stamps confirmed_at
func (r *Repository) Confirm(ctx context.Context, id int64, at time.Time) error {
	return r.update(ctx, id, "Confirm", map[string]interface{}{
		"status":         domain.StatusConfirmed,
		"payment_status": domain.PaymentStateCompleted,
		"confirmed_at":   at,
	})
}

// CheckIn transitions the booking to checked_in and stamps checked_in_at
func (r *Repository) CheckIn(ctx context.Context, id int64, at time.Time) error {
	return r.update(ctx, id, "CheckIn", map[string]interface{}{
		"status":        domain.StatusCheckedIn,
		"checked_in_at": at,
	})
}

// CheckOut transitions the booking to checked_out and stamps checked_out_at
func (r *Repository) CheckOut(ctx context.Context, id int64, at time.Time) error {
	return r.update(ctx, id, "CheckOut", map[string]interface{}{
		"status":         domain.StatusCheckedOut,
		"checked_out_at": at,
	})
}

// Cancel transitions the booking to cancelled, stamps cancelled_at and
// records the resulting payment state (refunded when a refund was issued)
func (r *Repository) Cancel(ctx context.Context, id int64, paymentState domain.PaymentState, at time.Time) error {
	return r.update(ctx, id, "Cancel", map[string]interface{}{
		"status":         domain.StatusCancelled,
		"payment_status": paymentState,
		"cancelled_at":   at,
	})
}

// MarkPaymentState updates only the payment state of a booking
func (r *Repository) MarkPaymentState(ctx context.Context, id int64, state domain.PaymentState) error {
	return r.update(ctx, id, "MarkPaymentState", map[string]interface{}{
		"payment_status": state,
	})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	return b, nil
}

func (r *Repository) update(ctx context.Context, id int64, op string, set map[string]interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	for column, value := range set {
		updateBuilder = updateBuilder.Set(column, value)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.BookingRef,
		&b.UserID,
		&b.RoomID,
		&b.HotelID,
		&b.CheckInDate,
		&b.CheckOutDate,
		&b.NumberOfGuests,
		&b.GuestName,
		&b.GuestEmail,
		&b.GuestPhone,
		&b.RoomPricePerNight,
		&b.NumberOfNights,
		&b.Subtotal,
		&b.TaxAmount,
		&b.DiscountAmount,
		&b.TotalPrice,
		&b.Status,
		&b.PaymentState,
		&b.SpecialRequests,
		&b.Notes,
		&b.ConfirmedAt,
		&b.CheckedInAt,
		&b.CheckedOutAt,
		&b.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
