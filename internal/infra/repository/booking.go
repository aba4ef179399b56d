package repository

import (
	"context"
	"errors"

	"society-booking/internal/domain/booking"
	"society-booking/internal/infra"
	"society-booking/internal/infra/db"
	"society-booking/internal/infra/repository/converter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const createBookingSQL = `
INSERT INTO bookings (id, amenity_id, user_id, booking_date, start_time, end_time, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id
`

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createBookingSQL,
		b.ID(),
		b.AmenityID(),
		b.UserID(),
		converter.DateToPg(b.Date()),
		converter.TimeOfDayToPg(b.StartTime()),
		converter.TimeOfDayToPg(b.EndTime()),
		string(b.Status()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, classifyPgErr("failed to create booking", err)
	}
	return id, nil
}

const updateBookingStatusSQL = `
UPDATE bookings
SET status = $2, reason = $3, updated_at = now()
WHERE id = $1
`

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status, reason *string) error {
	tag, err := tx.Exec(ctx, updateBookingStatusSQL, id, string(status), reason)
	if err != nil {
		return classifyPgErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

const completeElapsedSQL = `
UPDATE bookings
SET status = 'completed', updated_at = now()
WHERE status = 'confirmed' AND booking_date < $1
`

func (r *BookingRepository) CompleteElapsed(ctx context.Context, tx db.DBTX, today booking.Date) (int64, error) {
	tag, err := tx.Exec(ctx, completeElapsedSQL, converter.DateToPg(today))
	if err != nil {
		return 0, classifyPgErr("failed to complete elapsed bookings", err)
	}
	return tag.RowsAffected(), nil
}

func classifyPgErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgErrCodeForeignKeyViolation:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
