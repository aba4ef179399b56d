package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side). Dates are "YYYY-MM-DD", times "HH:MM";
// bookings are calendar-day scoped and carry no timezone.
type AmenityView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BookingView struct {
	ID          uuid.UUID `json:"id"`
	AmenityID   uuid.UUID `json:"amenity_id"`
	AmenityName string    `json:"amenity_name"`
	AmenityType string    `json:"amenity_type"`
	UserID      uuid.UUID `json:"user_id"`
	BookedBy    string    `json:"booked_by"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Status      string    `json:"status"`
	Reason      *string   `json:"reason,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID          uuid.UUID `json:"id"`
	AmenityID   uuid.UUID `json:"amenity_id"`
	AmenityName string    `json:"amenity_name"`
	AmenityType string    `json:"amenity_type"`
	BookedBy    string    `json:"booked_by"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type SlotView struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Label     string `json:"label"`
}

type BookedSlotView struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Label     string `json:"label"`
	BookedBy  string `json:"booked_by"`
}

type DayAvailabilityView struct {
	AmenityID uuid.UUID        `json:"amenity_id"`
	Date      string           `json:"date"`
	Available []SlotView       `json:"available"`
	Booked    []BookedSlotView `json:"booked"`
	// Message is set when the amenity type has no slot grid.
	Message string `json:"message,omitempty"`
}

type AuthorizedUserView struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	UnitNumber string    `json:"unit_number"`
	Role       string    `json:"role"`
	IsActive   bool      `json:"is_active"`
}
