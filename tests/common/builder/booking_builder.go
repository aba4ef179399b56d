//go:build unit || e2e

package builder

import (
	"time"

	"society-booking/internal/domain/booking"
	reqdto "society-booking/internal/handler/dto/request"
	"society-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID          uuid.UUID
	AmenityID   uuid.UUID
	AmenityName string
	AmenityType string
	UserID      uuid.UUID
	BookedBy    string
	Date        string
	StartTime   string
	EndTime     string
	Status      string
	Reason      *string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:          uuid.New(),
		AmenityID:   uuid.New(),
		AmenityName: "Clubhouse Pool",
		AmenityType: "swimming_pool",
		UserID:      uuid.New(),
		BookedBy:    "Asha Rao (B-203)",
		Date:        "2026-09-15",
		StartTime:   "10:00",
		EndTime:     "11:00",
		Status:      "pending",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	date, err := booking.ParseDate(b.Date)
	if err != nil {
		return nil, err
	}
	start, err := booking.ParseTimeOfDay(b.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := booking.ParseTimeOfDay(b.EndTime)
	if err != nil {
		return nil, err
	}
	status, err := booking.NewStatus(b.Status)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.AmenityID, b.UserID, date, start, end, status)
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		AmenityID: b.AmenityID,
		Date:      b.Date,
		StartTime: b.StartTime,
	}
}

func (b *BookingBuilder) BuildReadModel() *queries.BookingView {
	now := time.Now()
	return &queries.BookingView{
		ID:          b.ID,
		AmenityID:   b.AmenityID,
		AmenityName: b.AmenityName,
		AmenityType: b.AmenityType,
		UserID:      b.UserID,
		BookedBy:    b.BookedBy,
		Date:        b.Date,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Status:      b.Status,
		Reason:      b.Reason,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:          b.ID,
		AmenityID:   b.AmenityID,
		AmenityName: b.AmenityName,
		AmenityType: b.AmenityType,
		BookedBy:    b.BookedBy,
		Date:        b.Date,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Status:      b.Status,
		CreatedAt:   time.Now(),
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithAmenity(id uuid.UUID, amenityType string) *BookingBuilder {
	b.AmenityID = id
	b.AmenityType = amenityType
	return b
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithSlot(start, end string) *BookingBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithReason(reason string) *BookingBuilder {
	b.Reason = &reason
	return b
}
