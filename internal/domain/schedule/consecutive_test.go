//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"society-booking/internal/domain/booking"
	"society-booking/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
)

func day(d int) booking.Date {
	return booking.NewDate(2026, time.September, d)
}

func days(ds ...int) []booking.Date {
	out := make([]booking.Date, 0, len(ds))
	for _, d := range ds {
		out = append(out, day(d))
	}
	return out
}

func TestLongestRun(t *testing.T) {
	cases := []struct {
		name  string
		dates []booking.Date
		want  int
	}{
		{name: "empty", dates: nil, want: 0},
		{name: "single date", dates: days(10), want: 1},
		{name: "two adjacent days", dates: days(10, 11), want: 2},
		{name: "gap breaks the run", dates: days(10, 12), want: 1},
		{name: "unsorted input", dates: days(12, 10, 11), want: 3},
		{name: "duplicates count once", dates: days(10, 10, 11), want: 2},
		{name: "longest of several runs", dates: days(1, 2, 5, 6, 7, 20), want: 3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, schedule.LongestRun(c.dates))
		})
	}
}

func TestWouldExceedLimit(t *testing.T) {
	cases := []struct {
		name     string
		existing []booking.Date
		proposed booking.Date
		limit    int
		exceeded bool
		run      int
	}{
		{
			name:     "first booking never exceeds",
			proposed: day(10),
			limit:    2,
			exceeded: false,
			run:      1,
		},
		{
			name:     "second adjacent day reaches the cap",
			existing: days(10),
			proposed: day(11),
			limit:    2,
			exceeded: false,
			run:      2,
		},
		{
			name:     "third adjacent day exceeds",
			existing: days(10, 11),
			proposed: day(12),
			limit:    2,
			exceeded: true,
			run:      3,
		},
		{
			name:     "extending backwards also exceeds",
			existing: days(10, 11),
			proposed: day(9),
			limit:    2,
			exceeded: true,
			run:      3,
		},
		{
			name:     "filling a gap merges two runs",
			existing: days(10, 12),
			proposed: day(11),
			limit:    2,
			exceeded: true,
			run:      3,
		},
		{
			name:     "a day apart stays within the cap",
			existing: days(10, 11),
			proposed: day(13),
			limit:    2,
			exceeded: false,
			run:      2,
		},
		{
			name:     "non positive limit falls back to the default",
			existing: days(10, 11),
			proposed: day(12),
			limit:    0,
			exceeded: true,
			run:      3,
		},
		{
			name:     "higher limit allows longer runs",
			existing: days(10, 11),
			proposed: day(12),
			limit:    3,
			exceeded: false,
			run:      3,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			exceeded, run := schedule.WouldExceedLimit(c.existing, c.proposed, c.limit)
			assert.Equal(t, c.exceeded, exceeded)
			assert.Equal(t, c.run, run)
		})
	}
}

func TestWouldExceedLimitDoesNotMutateInput(t *testing.T) {
	existing := days(10, 12)
	schedule.WouldExceedLimit(existing, day(11), 2)

	assert.Equal(t, days(10, 12), existing)
}
