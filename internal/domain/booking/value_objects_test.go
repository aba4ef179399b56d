//go:build unit

package booking_test

import (
	"testing"
	"time"

	"society-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "valid morning time", input: "06:00", want: "06:00"},
		{name: "valid end of day", input: "23:59", want: "23:59"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "hour out of range", input: "24:00", errIs: booking.ErrInvalidTimeOfDay},
		{name: "minute out of range", input: "10:60", errIs: booking.ErrInvalidTimeOfDay},
		{name: "missing separator", input: "1000", errIs: booking.ErrInvalidTimeOfDay},
		{name: "too short", input: "9:00", errIs: booking.ErrInvalidTimeOfDay},
		{name: "trailing garbage", input: "09:00x", errIs: booking.ErrInvalidTimeOfDay},
		{name: "empty", input: "", errIs: booking.ErrInvalidTimeOfDay},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := booking.ParseTimeOfDay(c.input)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got.String())
		})
	}
}

func TestValidateTimeRange(t *testing.T) {
	t.Run("strictly increasing pair is valid", func(t *testing.T) {
		err := booking.ValidateTimeRange(booking.MustTimeOfDay(9, 0), booking.MustTimeOfDay(10, 0))
		assert.NoError(t, err)
	})

	t.Run("full day sentinel is valid", func(t *testing.T) {
		err := booking.ValidateTimeRange(booking.FullDayStart, booking.FullDayEnd)
		assert.NoError(t, err)
	})

	t.Run("equal times are invalid", func(t *testing.T) {
		err := booking.ValidateTimeRange(booking.MustTimeOfDay(9, 0), booking.MustTimeOfDay(9, 0))
		assert.ErrorIs(t, err, booking.ErrInvalidTimeRange)
	})

	t.Run("inverted range is invalid", func(t *testing.T) {
		err := booking.ValidateTimeRange(booking.MustTimeOfDay(10, 0), booking.MustTimeOfDay(9, 0))
		assert.ErrorIs(t, err, booking.ErrInvalidTimeRange)
	})
}

func TestParseDate(t *testing.T) {
	t.Run("parses ISO date", func(t *testing.T) {
		d, err := booking.ParseDate("2026-09-15")
		require.NoError(t, err)
		assert.Equal(t, "2026-09-15", d.String())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, input := range []string{"15-09-2026", "2026/09/15", "2026-13-01", "tomorrow", ""} {
			_, err := booking.ParseDate(input)
			assert.ErrorIs(t, err, booking.ErrInvalidDate, "input %q", input)
		}
	})
}

func TestDateArithmetic(t *testing.T) {
	base := booking.NewDate(2026, time.September, 15)

	t.Run("AddDays and DaysSince agree", func(t *testing.T) {
		next := base.AddDays(3)
		assert.Equal(t, 3, next.DaysSince(base))
		assert.Equal(t, -3, base.DaysSince(next))
	})

	t.Run("DateOf drops the time component", func(t *testing.T) {
		evening := time.Date(2026, time.September, 15, 22, 45, 12, 0, time.UTC)
		assert.True(t, booking.DateOf(evening).Equal(base))
	})

	t.Run("ElapsedAt is false on the booking day itself", func(t *testing.T) {
		lateSameDay := time.Date(2026, time.September, 15, 23, 59, 0, 0, time.UTC)
		assert.False(t, base.ElapsedAt(lateSameDay))
	})

	t.Run("ElapsedAt is true the next day", func(t *testing.T) {
		nextMorning := time.Date(2026, time.September, 16, 0, 1, 0, 0, time.UTC)
		assert.True(t, base.ElapsedAt(nextMorning))
	})
}
