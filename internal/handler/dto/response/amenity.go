package response

import (
	"time"

	"society-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AmenityResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromAmenityView(rm *queries.AmenityView) *AmenityResponse {
	var resp AmenityResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromAmenityViews(rms []*queries.AmenityView) []*AmenityResponse {
	resps := make([]*AmenityResponse, 0, len(rms))
	for _, rm := range rms {
		resps = append(resps, FromAmenityView(rm))
	}
	return resps
}
