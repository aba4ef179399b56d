package shared

import (
	"context"

	"society-booking/internal/domain/booking"
	"society-booking/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Amenities() AmenityRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	AmenityByID(ctx context.Context, id uuid.UUID) (*AmenitySnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	// DayRecords returns the resolver's view of all bookings (any status)
	// for one amenity and date.
	DayRecords(ctx context.Context, amenityID uuid.UUID, date booking.Date) ([]DayRecord, error)
	// ActiveBookingDates returns the distinct dates of a user's active
	// bookings for one amenity type.
	ActiveBookingDates(ctx context.Context, userID uuid.UUID, amenityType string) ([]booking.Date, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status, reason *string) error
	// CompleteElapsed flips confirmed bookings dated before the given day
	// to completed, returning how many rows changed.
	CompleteElapsed(ctx context.Context, tx db.DBTX, today booking.Date) (int64, error)
}

type AmenityRepository interface {
	Create(ctx context.Context, tx db.DBTX, a AmenityWrite) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, id uuid.UUID, patch AmenityPatch) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u UserWrite) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
