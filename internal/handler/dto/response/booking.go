package response

import (
	"time"

	"society-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	AmenityID   uuid.UUID `json:"amenityId"`
	AmenityName string    `json:"amenityName"`
	AmenityType string    `json:"amenityType"`
	UserID      uuid.UUID `json:"userId"`
	BookedBy    string    `json:"bookedBy"`
	Date        string    `json:"date"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	Status      string    `json:"status"`
	Reason      *string   `json:"reason,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID          uuid.UUID `json:"id"`
	AmenityID   uuid.UUID `json:"amenityId"`
	AmenityName string    `json:"amenityName"`
	AmenityType string    `json:"amenityType"`
	BookedBy    string    `json:"bookedBy"`
	Date        string    `json:"date"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromBookingListItems(rms []*queries.BookingListItem) []*BookingListResponse {
	resps := make([]*BookingListResponse, 0, len(rms))
	for _, rm := range rms {
		var resp BookingListResponse
		_ = copier.Copy(&resp, rm)
		resps = append(resps, &resp)
	}
	return resps
}
