package readstore

import (
	"context"

	"society-booking/internal/domain/booking"
	"society-booking/internal/domain/schedule"
	"society-booking/internal/domain/user"
	"society-booking/internal/infra"
	"society-booking/internal/infra/db"
	"society-booking/internal/infra/repository/converter"
	"society-booking/internal/pkg/pgconv"
	"society-booking/internal/usecase/queries"
	"society-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const findBookingByIDSQL = `
SELECT b.id, b.amenity_id, a.name, a.type, b.user_id,
       u.first_name, u.last_name, u.unit_number,
       b.booking_date, b.start_time, b.end_time, b.status, b.reason,
       b.created_at, b.updated_at
FROM bookings b
JOIN amenities a ON a.id = b.amenity_id
JOIN users u ON u.id = b.user_id
WHERE b.id = $1
`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		v                               queries.BookingView
		firstName, lastName, unitLabel string
		date                            pgtype.Date
		start, end                      pgtype.Time
		reason                          pgtype.Text
	)
	err := s.db.QueryRow(ctx, findBookingByIDSQL, id).Scan(
		&v.ID, &v.AmenityID, &v.AmenityName, &v.AmenityType, &v.UserID,
		&firstName, &lastName, &unitLabel,
		&date, &start, &end, &v.Status, &reason,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	v.BookedBy = user.DisplayLabel(firstName, lastName, unitLabel)
	v.Date = converter.DateFromPg(date).String()
	v.StartTime = converter.TimeOfDayFromPg(start).String()
	v.EndTime = converter.TimeOfDayFromPg(end).String()
	v.Reason = pgconv.StringPtrFromPgtype(reason)
	return &v, nil
}

const listBookingsByUserSQL = `
SELECT b.id, b.amenity_id, a.name, a.type,
       u.first_name, u.last_name, u.unit_number,
       b.booking_date, b.start_time, b.end_time, b.status, b.created_at
FROM bookings b
JOIN amenities a ON a.id = b.amenity_id
JOIN users u ON u.id = b.user_id
WHERE b.user_id = $1
ORDER BY b.booking_date DESC, b.start_time DESC
`

func (s *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := s.db.Query(ctx, listBookingsByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	defer rows.Close()
	return collectBookingListItems(rows)
}

const listBookingsByStatusSQL = `
SELECT b.id, b.amenity_id, a.name, a.type,
       u.first_name, u.last_name, u.unit_number,
       b.booking_date, b.start_time, b.end_time, b.status, b.created_at
FROM bookings b
JOIN amenities a ON a.id = b.amenity_id
JOIN users u ON u.id = b.user_id
WHERE b.status = $1
ORDER BY b.booking_date, b.start_time
`

func (s *BookingReadStore) FindByStatus(ctx context.Context, status string) ([]*queries.BookingListItem, error) {
	rows, err := s.db.Query(ctx, listBookingsByStatusSQL, status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by status", err)
	}
	defer rows.Close()
	return collectBookingListItems(rows)
}

const dayRecordsSQL = `
SELECT b.start_time, b.status, u.first_name, u.last_name, u.unit_number
FROM bookings b
JOIN users u ON u.id = b.user_id
WHERE b.amenity_id = $1 AND b.booking_date = $2
ORDER BY b.start_time
`

// DayRecords returns every booking row for the amenity and date, regardless
// of status; the availability resolver decides what counts.
func (s *BookingReadStore) DayRecords(ctx context.Context, amenityID uuid.UUID, date booking.Date) ([]schedule.BookingRecord, error) {
	rows, err := s.db.Query(ctx, dayRecordsSQL, amenityID, converter.DateToPg(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load day records", err)
	}
	defer rows.Close()

	var records []schedule.BookingRecord
	for rows.Next() {
		var (
			start                           pgtype.Time
			status                          string
			firstName, lastName, unitLabel string
		)
		if err := rows.Scan(&start, &status, &firstName, &lastName, &unitLabel); err != nil {
			return nil, infra.WrapRepoErr("failed to scan day record", err)
		}
		records = append(records, schedule.BookingRecord{
			StartTime:  converter.TimeOfDayFromPg(start),
			Status:     booking.Status(status),
			OwnerLabel: user.DisplayLabel(firstName, lastName, unitLabel),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate day records", err)
	}
	return records, nil
}

const activeBookingDatesSQL = `
SELECT DISTINCT b.booking_date
FROM bookings b
JOIN amenities a ON a.id = b.amenity_id
WHERE b.user_id = $1 AND a.type = $2 AND b.status IN ('pending', 'confirmed')
`

func (s *BookingReadStore) ActiveBookingDates(ctx context.Context, userID uuid.UUID, amenityType string) ([]booking.Date, error) {
	rows, err := s.db.Query(ctx, activeBookingDatesSQL, userID, amenityType)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load active booking dates", err)
	}
	defer rows.Close()

	var dates []booking.Date
	for rows.Next() {
		var d pgtype.Date
		if err := rows.Scan(&d); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking date", err)
		}
		dates = append(dates, converter.DateFromPg(d))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking dates", err)
	}
	return dates, nil
}

const bookingSnapshotSQL = `
SELECT b.id, b.amenity_id, a.type, b.user_id,
       b.booking_date, b.start_time, b.end_time, b.status,
       b.created_at, b.updated_at
FROM bookings b
JOIN amenities a ON a.id = b.amenity_id
WHERE b.id = $1
`

func (s *BookingReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var (
		snap       shared.BookingSnapshot
		date       pgtype.Date
		start, end pgtype.Time
		status     string
	)
	err := s.db.QueryRow(ctx, bookingSnapshotSQL, id).Scan(
		&snap.ID, &snap.AmenityID, &snap.AmenityType, &snap.UserID,
		&date, &start, &end, &status,
		&snap.CreatedAt, &snap.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load booking snapshot", err)
	}

	snap.Date = converter.DateFromPg(date)
	snap.StartTime = converter.TimeOfDayFromPg(start)
	snap.EndTime = converter.TimeOfDayFromPg(end)
	snap.Status = booking.Status(status)
	return &snap, nil
}

func collectBookingListItems(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]*queries.BookingListItem, error) {
	var items []*queries.BookingListItem
	for rows.Next() {
		var (
			item                            queries.BookingListItem
			firstName, lastName, unitLabel string
			date                            pgtype.Date
			start, end                      pgtype.Time
		)
		err := rows.Scan(
			&item.ID, &item.AmenityID, &item.AmenityName, &item.AmenityType,
			&firstName, &lastName, &unitLabel,
			&date, &start, &end, &item.Status, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		item.BookedBy = user.DisplayLabel(firstName, lastName, unitLabel)
		item.Date = converter.DateFromPg(date).String()
		item.StartTime = converter.TimeOfDayFromPg(start).String()
		item.EndTime = converter.TimeOfDayFromPg(end).String()
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return items, nil
}
