package response

import (
	"society-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Label     string `json:"label"`
}

type BookedSlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Label     string `json:"label"`
	BookedBy  string `json:"bookedBy"`
}

type DayAvailabilityResponse struct {
	AmenityID uuid.UUID            `json:"amenityId"`
	Date      string               `json:"date"`
	Available []SlotResponse       `json:"available"`
	Booked    []BookedSlotResponse `json:"booked"`
	Message   string               `json:"message,omitempty"`
}

func FromDayAvailabilityView(rm *queries.DayAvailabilityView) *DayAvailabilityResponse {
	resp := &DayAvailabilityResponse{
		AmenityID: rm.AmenityID,
		Date:      rm.Date,
		Available: make([]SlotResponse, 0, len(rm.Available)),
		Booked:    make([]BookedSlotResponse, 0, len(rm.Booked)),
		Message:   rm.Message,
	}
	for _, s := range rm.Available {
		resp.Available = append(resp.Available, SlotResponse(s))
	}
	for _, b := range rm.Booked {
		resp.Booked = append(resp.Booked, BookedSlotResponse(b))
	}
	return resp
}
