package shared

import (
	"time"

	"society-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands off the read-side query types.
type AmenitySnapshot struct {
	ID   uuid.UUID
	Name string
	Type string
}

type BookingSnapshot struct {
	ID          uuid.UUID
	AmenityID   uuid.UUID
	AmenityType string
	UserID      uuid.UUID
	Date        booking.Date
	StartTime   booking.TimeOfDay
	EndTime     booking.TimeOfDay
	Status      booking.Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DayRecord is one booking row as the availability resolver sees it.
type DayRecord struct {
	StartTime  booking.TimeOfDay
	Status     booking.Status
	OwnerLabel string
}

type AmenityWrite struct {
	ID          uuid.UUID
	Name        string
	Type        string
	Location    string
	Description string
}

type AmenityPatch struct {
	Name        *string
	Location    *string
	Description *string
}

type UserWrite struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	UnitNumber   string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
}
