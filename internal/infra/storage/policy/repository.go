package policy

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/sumonben/hotelmanagement/internal/domain"
	"github.com/sumonben/hotelmanagement/pkg/dbmetrics"
	"github.com/sumonben/hotelmanagement/pkg/psqlbuilder"
)

var policyColumns = []string{
	"id",
	"hotel_id",
	"name",
	"days_before_checkin",
	"refund_percentage",
	"description",
	"is_active",
}

// Repository persistence for cancellation policies
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a cancellation policy repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveByHotel fetches a hotel's active policies ordered by
// days_before_checkin descending, the order the refund resolver expects
func (r *Repository) GetActiveByHotel(ctx context.Context, hotelID int64) ([]*domain.CancellationPolicy, error) {
	return r.list(ctx, squirrel.Eq{"hotel_id": hotelID, "is_active": true}, "GetActiveByHotel")
}

// GetAllByHotel fetches all of a hotel's policies, active or not,
// ordered by days_before_checkin descending
func (r *Repository) GetAllByHotel(ctx context.Context, hotelID int64) ([]*domain.CancellationPolicy, error) {
	return r.list(ctx, squirrel.Eq{"hotel_id": hotelID}, "GetAllByHotel")
}

// GetByID fetches one policy
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.CancellationPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(policyColumns...).
		From("cancellation_policies").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanPolicy(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan policy: %v", ErrScanRow, err)
	}

	return p, nil
}

// Update rewrites a policy's tier definition
func (r *Repository) Update(ctx context.Context, p *domain.CancellationPolicy) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("cancellation_policies").
		Set("name", p.Name).
		Set("days_before_checkin", p.DaysBeforeCheckIn).
		Set("refund_percentage", p.RefundPercentage).
		Set("description", p.Description).
		Set("is_active", p.IsActive).
		Where(squirrel.Eq{"id": p.ID, "hotel_id": p.HotelID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPolicyNotFound
	}

	return nil
}

func (r *Repository) list(ctx context.Context, where squirrel.Eq, op string) ([]*domain.CancellationPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(policyColumns...).
		From("cancellation_policies").
		Where(where).
		OrderBy("days_before_checkin DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	policies := make([]*domain.CancellationPolicy, 0)
	for rows.Next() {
		p, err := scanPolicy(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		policies = append(policies, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return policies, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPolicy(row rowScanner) (*domain.CancellationPolicy, error) {
	var p domain.CancellationPolicy
	err := row.Scan(
		&p.ID,
		&p.HotelID,
		&p.Name,
		&p.DaysBeforeCheckIn,
		&p.RefundPercentage,
		&p.Description,
		&p.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
