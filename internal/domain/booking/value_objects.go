package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrInvalidDate      = errors.New("invalid calendar date")
	ErrInvalidTimeRange = errors.New("end time must be after start time")
)

// TimeOfDay is a local wall-clock time ("HH:MM", 24h). Bookings carry no
// timezone; the society's local day is the only frame of reference.
type TimeOfDay struct {
	hour   int
	minute int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{hour: hour, minute: minute}, nil
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%2d:%2d", &hour, &minute); err != nil || len(s) != 5 || s[2] != ':' {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return NewTimeOfDay(hour, minute)
}

// MustTimeOfDay is for compile-time-known constants like slot grids.
func MustTimeOfDay(hour, minute int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) Hour() int   { return t.hour }
func (t TimeOfDay) Minute() int { return t.minute }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

func (t TimeOfDay) MinutesOfDay() int {
	return t.hour*60 + t.minute
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.MinutesOfDay() < other.MinutesOfDay()
}

func (t TimeOfDay) Equal(other TimeOfDay) bool {
	return t == other
}

// Full-day sentinel pair used by party hall and guest parking.
var (
	FullDayStart = TimeOfDay{hour: 0, minute: 0}
	FullDayEnd   = TimeOfDay{hour: 23, minute: 59}
)

// ValidateTimeRange accepts any strictly increasing pair plus the full-day
// sentinel (which is also strictly increasing, so the rule collapses to one
// comparison; the sentinel is named for readability at call sites).
func ValidateTimeRange(start, end TimeOfDay) error {
	if start == FullDayStart && end == FullDayEnd {
		return nil
	}
	if !start.Before(end) {
		return ErrInvalidTimeRange
	}
	return nil
}

// Date is a calendar date with no time component, normalized to UTC midnight
// so arithmetic and comparisons are exact.
type Date struct {
	t time.Time
}

const dateLayout = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return d.t.Format(dateLayout)
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// DaysSince returns the signed whole-day difference d - other.
func (d Date) DaysSince(other Date) int {
	return int(d.t.Sub(other.t) / (24 * time.Hour))
}

// ElapsedAt reports whether the date has fully passed at the given instant,
// i.e. "now" already belongs to a later calendar day.
func (d Date) ElapsedAt(now time.Time) bool {
	return d.Before(DateOf(now))
}
