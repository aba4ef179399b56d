// Package schedule holds the pure scheduling core: slot grids per amenity
// type, availability partitioning and the guest-parking consecutive-day rule.
// Nothing in here performs I/O; callers supply bookings and get values back.
package schedule

import (
	"fmt"

	"society-booking/internal/domain/amenity"
	"society-booking/internal/domain/booking"
)

// Slot is a candidate reservable interval, derived from the grid and never
// persisted.
type Slot struct {
	Start booking.TimeOfDay
	End   booking.TimeOfDay
	Label string
}

const FullDayLabel = "Full Day Booking"

// window is a contiguous band of back-to-back slots.
type window struct {
	from booking.TimeOfDay
	to   booking.TimeOfDay
}

// gridSpec describes an amenity type's slot grid as data, so adding a type
// is a table entry rather than new code.
type gridSpec struct {
	windows []window
	stepMin int
	label   func(start, end booking.TimeOfDay) string
}

func hourRange(start, end booking.TimeOfDay) string {
	return fmt.Sprintf("%s - %s", start, end)
}

var grids = map[amenity.Type]gridSpec{
	// Two fixed bands: morning 06-10, evening 18-22.
	amenity.TypeSwimmingPool: {
		windows: []window{
			{from: booking.MustTimeOfDay(6, 0), to: booking.MustTimeOfDay(10, 0)},
			{from: booking.MustTimeOfDay(18, 0), to: booking.MustTimeOfDay(22, 0)},
		},
		stepMin: 60,
		label:   hourRange,
	},
	amenity.TypePoolTable: {
		windows: []window{
			{from: booking.MustTimeOfDay(9, 0), to: booking.MustTimeOfDay(21, 0)},
		},
		stepMin: 60,
		label:   hourRange,
	},
	amenity.TypeGym: {
		windows: []window{
			{from: booking.MustTimeOfDay(5, 0), to: booking.MustTimeOfDay(23, 0)},
		},
		stepMin: 120,
		label:   hourRange,
	},
	amenity.TypePartyHall: {
		windows: []window{
			{from: booking.FullDayStart, to: booking.FullDayEnd},
		},
		stepMin: 24 * 60,
		label:   func(_, _ booking.TimeOfDay) string { return FullDayLabel },
	},
	// Twenty-four hourly-labeled options for display; every one of them
	// resolves to a single full-day reservation when persisted.
	amenity.TypeGuestParking: {
		windows: []window{
			{from: booking.FullDayStart, to: booking.MustTimeOfDay(23, 59)},
		},
		stepMin: 60,
		label:   hourRange,
	},
}

// GenerateSlots returns the ordered candidate grid for an amenity type.
// The grid is date-independent; unavailable-day filtering happens upstream.
// Types without a grid (other/unknown) yield an empty sequence and the
// caller falls back to "contact admin".
func GenerateSlots(t amenity.Type) []Slot {
	spec, ok := grids[t]
	if !ok {
		return nil
	}

	var slots []Slot
	for _, w := range spec.windows {
		for startMin := w.from.MinutesOfDay(); startMin < w.to.MinutesOfDay(); startMin += spec.stepMin {
			start := timeOfDayFromMinutes(startMin)
			end := timeOfDayFromMinutes(clampMinutes(startMin + spec.stepMin))
			slots = append(slots, Slot{
				Start: start,
				End:   end,
				Label: spec.label(start, end),
			})
		}
	}
	return slots
}

// FullDaySlot is the single logical slot used when a full-day amenity is
// persisted or shown as taken.
func FullDaySlot() Slot {
	return Slot{Start: booking.FullDayStart, End: booking.FullDayEnd, Label: FullDayLabel}
}

func timeOfDayFromMinutes(min int) booking.TimeOfDay {
	return booking.MustTimeOfDay(min/60, min%60)
}

// A day has no 24:00; the last slot of a day closes at 23:59.
func clampMinutes(min int) int {
	if min > 23*60+59 {
		return 23*60 + 59
	}
	return min
}
