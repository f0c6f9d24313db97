package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/sumonben/hotelmanagement/internal/domain"
	"github.com/sumonben/hotelmanagement/pkg/dbmetrics"
	"github.com/sumonben/hotelmanagement/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var paymentColumns = []string{
	"id",
	"booking_id",
	"amount",
	"currency",
	"method",
	"transaction_id",
	"session_key",
	"status",
	"created_at",
	"updated_at",
}

// Repository persistence for payment transactions
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a payment repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new payment record
func (r *Repository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns("booking_id", "amount", "currency", "method", "transaction_id", "session_key", "status").
		Values(p.BookingID, p.Amount, p.Currency, p.Method, p.TransactionID, p.SessionKey, p.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateTransactionID
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByTransactionID fetches a payment by its unique transaction id
func (r *Repository) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error) {
	return r.getOne(ctx, squirrel.Eq{"transaction_id": transactionID}, "GetByTransactionID", "created_at DESC")
}

// GetBySessionKey fetches a payment by its gateway checkout session key
func (r *Repository) GetBySessionKey(ctx context.Context, sessionKey string) (*domain.Payment, error) {
	return r.getOne(ctx, squirrel.Eq{"session_key": sessionKey}, "GetBySessionKey", "created_at DESC")
}

// GetPendingByBooking fetches the most recent pending payment for a
// booking, optionally narrowed to one method. Reconciliation assumes at
// most one pending gateway payment per booking at a time.
func (r *Repository) GetPendingByBooking(ctx context.Context, bookingID int64, method *domain.PaymentMethod) (*domain.Payment, error) {
	where := squirrel.Eq{
		"booking_id": bookingID,
		"status":     domain.PaymentPending,
	}
	if method != nil {
		where["method"] = *method
	}
	return r.getOne(ctx, where, "GetPendingByBooking", "created_at DESC")
}

// GetLatestPendingByMethod fetches the most recently created pending
// payment for the given method system-wide. This backs the last-resort
// reconciliation heuristic and can mis-attribute a payment under
// concurrent checkouts; callers gate it behind configuration.
func (r *Repository) GetLatestPendingByMethod(ctx context.Context, method domain.PaymentMethod) (*domain.Payment, error) {
	where := squirrel.Eq{
		"method": method,
		"status": domain.PaymentPending,
	}
	return r.getOne(ctx, where, "GetLatestPendingByMethod", "created_at DESC")
}

// GetLatestByBookingRef fetches the newest payment for a booking
// reference, joining through the bookings table
func (r *Repository) GetLatestByBookingRef(ctx context.Context, bookingRef string) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	columns := make([]string, len(paymentColumns))
	for i, c := range paymentColumns {
		columns[i] = "p." + c
	}

	query, args, err := psqlbuilder.Select(columns...).
		From("payments p").
		Join("bookings b ON b.id = p.booking_id").
		Where(squirrel.Eq{"b.booking_ref": bookingRef}).
		OrderBy("p.created_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetLatestByBookingRef - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanPayment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetLatestByBookingRef - scan payment: %v", ErrScanRow, err)
	}

	return p, nil
}

// ListByBooking fetches all payments for a booking, newest first
func (r *Repository) ListByBooking(ctx context.Context, bookingID int64) ([]*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From("payments").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBooking - scan row: %v", ErrScanRow, err)
		}
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - rows error: %v", ErrScanRow, err)
	}

	return payments, nil
}

// MarkCompleted transitions a payment to completed and records the
// authoritative transaction id from the gateway
func (r *Repository) MarkCompleted(ctx context.Context, id int64, transactionID string) error {
	return r.update(ctx, id, "MarkCompleted", map[string]interface{}{
		"status":         domain.PaymentCompleted,
		"transaction_id": transactionID,
	})
}

// MarkFailed transitions a payment to failed
func (r *Repository) MarkFailed(ctx context.Context, id int64) error {
	return r.update(ctx, id, "MarkFailed", map[string]interface{}{
		"status": domain.PaymentFailed,
	})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string, orderBy string) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From("payments").
		Where(where).
		OrderBy(orderBy).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	p, err := scanPayment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan payment: %v", ErrScanRow, op, err)
	}

	return p, nil
}

func (r *Repository) update(ctx context.Context, id int64, op string, set map[string]interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("payments").
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
		return ErrPaymentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPayment(row rowScanner) (*domain.Payment, error) {
	var p domain.Payment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.BookingID,
		&p.Amount,
		&p.Currency,
		&p.Method,
		&p.TransactionID,
		&p.SessionKey,
		&p.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}
