package room

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/sumonben/hotelmanagement/internal/domain"
	"github.com/sumonben/hotelmanagement/pkg/dbmetrics"
	"github.com/sumonben/hotelmanagement/pkg/psqlbuilder"
)

// Repository persistence for rooms. MaxGuests comes from the room type;
// rooms without a type default to a single guest.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a room repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID fetches a room with its room type's guest capacity
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"r.id",
		"r.hotel_id",
		"r.room_type_id",
		"r.room_number",
		"r.floor",
		"r.price_per_night",
		"r.discount_price",
		"r.status",
		"r.is_active",
		"COALESCE(rt.max_guests, 1)",
		"r.created_at",
		"r.updated_at",
	).
		From("rooms r").
		LeftJoin("room_types rt ON rt.id = r.room_type_id").
		Where(squirrel.Eq{"r.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var room domain.Room
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&room.ID,
		&room.HotelID,
		&room.RoomTypeID,
		&room.RoomNumber,
		&room.Floor,
		&room.PricePerNight,
		&room.DiscountPrice,
		&room.Status,
		&room.IsActive,
		&room.MaxGuests,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return &room, nil
}

// UpdateStatus sets a room's operational status. Check-in marks the
// room occupied, check-out marks it available again.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}
