// Package converter maps scheduling value objects onto pgtype columns.
// Wall-clock times live in TIME columns, calendar days in DATE columns.
package converter

import (
	"time"

	"society-booking/internal/domain/booking"

	"github.com/jackc/pgx/v5/pgtype"
)

const microsPerMinute = int64(time.Minute / time.Microsecond)

func TimeOfDayToPg(t booking.TimeOfDay) pgtype.Time {
	return pgtype.Time{
		Microseconds: int64(t.MinutesOfDay()) * microsPerMinute,
		Valid:        true,
	}
}

func TimeOfDayFromPg(pt pgtype.Time) booking.TimeOfDay {
	minutes := int(pt.Microseconds / microsPerMinute)
	return booking.MustTimeOfDay(minutes/60, minutes%60)
}

func DateToPg(d booking.Date) pgtype.Date {
	return pgtype.Date{Time: d.Time(), Valid: true}
}

func DateFromPg(pd pgtype.Date) booking.Date {
	return booking.DateOf(pd.Time)
}
