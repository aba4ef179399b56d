package schedule

import (
	"society-booking/internal/domain/amenity"
	"society-booking/internal/domain/booking"
)

// BookingRecord is the minimal shape the resolver needs from the booking
// gateway: the caller has already scoped records to one amenity and date.
type BookingRecord struct {
	StartTime  booking.TimeOfDay
	Status     booking.Status
	OwnerLabel string
}

// BookedSlot is a grid slot annotated with who holds it.
type BookedSlot struct {
	Slot
	BookedBy string
}

type DayAvailability struct {
	Available []Slot
	Booked    []BookedSlot
}

// HasGrid reports whether the amenity type produced any candidate slots.
// False means "no slots available, contact admin".
func (a DayAvailability) HasGrid() bool {
	return len(a.Available)+len(a.Booked) > 0
}

// Resolve partitions the candidate grid into available and booked slots.
// Only active (pending or confirmed) records count; output preserves grid
// order. Full-day amenity types collapse to a single logical slot: one
// active booking takes the whole day.
//
// Pure and read-only; safe to call repeatedly and concurrently.
func Resolve(amenityType amenity.Type, records []BookingRecord) DayAvailability {
	grid := GenerateSlots(amenityType)
	if len(grid) == 0 {
		return DayAvailability{}
	}

	if amenityType.FullDay() {
		for _, rec := range records {
			if rec.Status.IsActive() {
				return DayAvailability{
					Booked: []BookedSlot{{Slot: FullDaySlot(), BookedBy: rec.OwnerLabel}},
				}
			}
		}
		return DayAvailability{Available: grid}
	}

	var result DayAvailability
	for _, slot := range grid {
		if owner, taken := activeOwnerAt(records, slot.Start); taken {
			result.Booked = append(result.Booked, BookedSlot{Slot: slot, BookedBy: owner})
		} else {
			result.Available = append(result.Available, slot)
		}
	}
	return result
}

func activeOwnerAt(records []BookingRecord, start booking.TimeOfDay) (string, bool) {
	for _, rec := range records {
		if rec.Status.IsActive() && rec.StartTime.Equal(start) {
			return rec.OwnerLabel, true
		}
	}
	return "", false
}
