package request

import (
	"society-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	AmenityID uuid.UUID `json:"amenity_id" binding:"required"`
	Date      string    `json:"date" binding:"required"`
	StartTime string    `json:"start_time" binding:"required"`
}

// ParseSchedule validates the calendar-day date and the slot start time.
// Slot membership is checked later against the amenity's grid.
func (r CreateBookingRequest) ParseSchedule() (booking.Date, booking.TimeOfDay, error) {
	date, err := booking.ParseDate(r.Date)
	if err != nil {
		return booking.Date{}, booking.TimeOfDay{}, err
	}
	start, err := booking.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return booking.Date{}, booking.TimeOfDay{}, err
	}
	return date, start, nil
}

type RejectBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}
