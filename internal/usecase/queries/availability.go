package queries

import (
	"context"

	"society-booking/internal/domain/amenity"
	"society-booking/internal/domain/booking"
	"society-booking/internal/domain/schedule"
	"society-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// NoSlotsMessage is returned in place of a grid when the amenity type has
// no slot template. The request itself still succeeds.
const NoSlotsMessage = "No bookable slots are defined for this amenity. Please contact the society office."

type AvailabilityQueries interface {
	GetDayAvailability(ctx context.Context, amenityID uuid.UUID, date booking.Date) (*DayAvailabilityView, error)
}

type AvailabilityReadStore interface {
	// DayRecords returns every booking row (any status) for the amenity
	// and date, with the owner's display label already joined in.
	DayRecords(ctx context.Context, amenityID uuid.UUID, date booking.Date) ([]schedule.BookingRecord, error)
}

type availabilityQueriesImpl struct {
	amenities AmenityReadStore
	store     AvailabilityReadStore
}

func NewAvailabilityQueries(amenities AmenityReadStore, store AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{amenities: amenities, store: store}
}

func (q *availabilityQueriesImpl) GetDayAvailability(ctx context.Context, amenityID uuid.UUID, date booking.Date) (*DayAvailabilityView, error) {
	am, err := q.amenities.FindByID(ctx, amenityID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load amenity")
	}

	view := &DayAvailabilityView{
		AmenityID: amenityID,
		Date:      date.String(),
		Available: []SlotView{},
		Booked:    []BookedSlotView{},
	}

	amenityType, err := amenity.NewType(am.Type)
	if err != nil {
		view.Message = NoSlotsMessage
		return view, nil
	}

	records, err := q.store.DayRecords(ctx, amenityID, date)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load day records")
	}

	day := schedule.Resolve(amenityType, records)
	if !day.HasGrid() {
		view.Message = NoSlotsMessage
		return view, nil
	}

	for _, s := range day.Available {
		view.Available = append(view.Available, SlotView{
			StartTime: s.Start.String(),
			EndTime:   s.End.String(),
			Label:     s.Label,
		})
	}
	for _, b := range day.Booked {
		view.Booked = append(view.Booked, BookedSlotView{
			StartTime: b.Start.String(),
			EndTime:   b.End.String(),
			Label:     b.Label,
			BookedBy:  b.BookedBy,
		})
	}
	return view, nil
}
