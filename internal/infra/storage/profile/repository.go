package profile

import (
	"context"
	"fmt"

	"github.com/sumonben/hotelmanagement/pkg/dbmetrics"
)

// Repository persistence for user profiles. The booking core only
// touches the total_bookings counter.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a profile repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// IncrementTotalBookings bumps the user's booking counter, creating the
// profile row when it does not exist yet
func (r *Repository) IncrementTotalBookings(ctx context.Context, userID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Upsert keeps the counter accurate for users who booked before
	// ever opening their profile page.
	query := `
		INSERT INTO user_profiles (user_id, total_bookings)
		VALUES ($1, 1)
		ON CONFLICT (user_id)
		DO UPDATE SET total_bookings = user_profiles.total_bookings + 1, updated_at = NOW()`

	if _, err := executor.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("%w: IncrementTotalBookings - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
