package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"society-booking/internal/domain/amenity"
	"society-booking/internal/domain/booking"
	"society-booking/internal/domain/schedule"
	"society-booking/internal/domain/user"
	reqdto "society-booking/internal/handler/dto/request"
	"society-booking/internal/infra"
	"society-booking/internal/pkg/clock"
	"society-booking/internal/pkg/config"
	"society-booking/internal/pkg/errs"
	"society-booking/internal/usecase/queries"
	"society-booking/internal/usecase/shared"
)

var (
	ErrAmenityNotFound             = errs.New("amenity not found")
	ErrBookingNotFound             = errs.New("booking not found")
	ErrSlotUnavailable             = errs.New("slot unavailable")
	ErrInvalidTimeSlot             = errs.New("invalid time slot")
	ErrUnknownAmenityType          = errs.New("no bookable slots for amenity type")
	ErrConsecutiveDayLimitExceeded = errs.New("consecutive day limit exceeded")
	ErrInvalidTransition           = errs.New("invalid booking status transition")
	ErrBookingDateElapsed          = errs.New("booking date already elapsed")
	ErrNotBookingOwner             = errs.New("booking belongs to another user")
	ErrDomainValidation            = errs.New("domain validation error")
	ErrDatabaseOperationFailed     = errs.New("database operation failed")
)

// ConsecutiveLimitError carries the streak that a proposed guest-parking
// booking would create, so handlers can report it. Always marked with
// ErrConsecutiveDayLimitExceeded.
type ConsecutiveLimitError struct {
	Streak int
	Limit  int
}

func (e *ConsecutiveLimitError) Error() string {
	return fmt.Sprintf("booking would create a %d-day run, limit is %d", e.Streak, e.Limit)
}

func newConsecutiveLimitError(streak, limit int) error {
	return errs.Mark(&ConsecutiveLimitError{Streak: streak, Limit: limit}, ErrConsecutiveDayLimitExceeded)
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID, role user.Role) (*queries.BookingView, error)
	ApproveBooking(ctx context.Context, bookingID uuid.UUID) (*queries.BookingView, error)
	RejectBooking(ctx context.Context, bookingID uuid.UUID, reason *string) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, actorID uuid.UUID, actorRole user.Role) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	clock          clock.Clock
	cfg            config.BookingConfig
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	bookingQueries queries.BookingQueries,
	clk clock.Clock,
	cfg config.BookingConfig,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		clock:          clk,
		cfg:            cfg,
	}
}

func (b *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	userID uuid.UUID,
	role user.Role,
) (*queries.BookingView, error) {
	amenityType, err := b.resolveAmenityType(ctx, req.AmenityID)
	if err != nil {
		return nil, err
	}

	date, requestedStart, err := req.ParseSchedule()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeSlot)
	}

	start, end, err := resolveSlotBounds(amenityType, requestedStart)
	if err != nil {
		return nil, err
	}

	// Admins booking on behalf of the society skip the parking cap.
	if amenityType == amenity.TypeGuestParking && !role.IsAdmin() {
		if err := b.checkConsecutiveDays(ctx, userID, date); err != nil {
			return nil, err
		}
	}

	initialStatus := booking.StatusPending
	if role.IsAdmin() {
		initialStatus = booking.StatusConfirmed
	}

	entity, err := booking.NewBooking(req.AmenityID, userID, date, start, end, initialStatus)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var bookingID uuid.UUID
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Re-check inside the transaction: the slot may have been taken
		// between the first look and here.
		if err := b.ensureSlotFree(ctx, tx, amenityType, req.AmenityID, date, start); err != nil {
			return err
		}

		id, err := tx.Bookings().Create(ctx, tx.DB(), entity)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrSlotUnavailable
			}
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrAmenityNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		bookingID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return b.readBack(ctx, bookingID)
}

func (b *bookingCommandsImpl) ApproveBooking(ctx context.Context, bookingID uuid.UUID) (*queries.BookingView, error) {
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := b.loadBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		if err := entity.Approve(); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}

		return b.persistStatus(ctx, tx, entity, nil)
	})
	if err != nil {
		return nil, err
	}
	return b.readBack(ctx, bookingID)
}

func (b *bookingCommandsImpl) RejectBooking(ctx context.Context, bookingID uuid.UUID, reason *string) (*queries.BookingView, error) {
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := b.loadBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		var reasonText string
		if reason != nil {
			reasonText = *reason
		}
		if err := entity.Reject(reasonText); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}

		var stored *string
		if r := entity.Reason(); r != "" {
			stored = &r
		}
		return b.persistStatus(ctx, tx, entity, stored)
	})
	if err != nil {
		return nil, err
	}
	return b.readBack(ctx, bookingID)
}

func (b *bookingCommandsImpl) CancelBooking(
	ctx context.Context,
	bookingID uuid.UUID,
	actorID uuid.UUID,
	actorRole user.Role,
) (*queries.BookingView, error) {
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := b.loadBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		if !entity.IsOwnedBy(actorID) && !actorRole.IsAdmin() {
			return ErrNotBookingOwner
		}

		if err := entity.Cancel(b.clock.Now()); err != nil {
			if errors.Is(err, booking.ErrDateElapsed) {
				return errs.Mark(err, ErrBookingDateElapsed)
			}
			return errs.Mark(err, ErrInvalidTransition)
		}

		return b.persistStatus(ctx, tx, entity, nil)
	})
	if err != nil {
		return nil, err
	}
	return b.readBack(ctx, bookingID)
}

func (b *bookingCommandsImpl) resolveAmenityType(ctx context.Context, amenityID uuid.UUID) (amenity.Type, error) {
	snap, err := b.uow.CommandReads().AmenityByID(ctx, amenityID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrAmenityNotFound
		}
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}

	amenityType, err := amenity.NewType(snap.Type)
	if err != nil {
		return "", errs.Mark(err, ErrUnknownAmenityType)
	}
	return amenityType, nil
}

// resolveSlotBounds checks the requested start against the amenity's grid
// and returns the interval to persist. Full-day types store the whole day
// regardless of which display slot was picked.
func resolveSlotBounds(amenityType amenity.Type, requested booking.TimeOfDay) (booking.TimeOfDay, booking.TimeOfDay, error) {
	grid := schedule.GenerateSlots(amenityType)
	if len(grid) == 0 {
		return booking.TimeOfDay{}, booking.TimeOfDay{}, ErrUnknownAmenityType
	}

	if amenityType.FullDay() {
		for _, slot := range grid {
			if slot.Start.Equal(requested) {
				return booking.FullDayStart, booking.FullDayEnd, nil
			}
		}
		return booking.TimeOfDay{}, booking.TimeOfDay{}, ErrInvalidTimeSlot
	}

	for _, slot := range grid {
		if slot.Start.Equal(requested) {
			return slot.Start, slot.End, nil
		}
	}
	return booking.TimeOfDay{}, booking.TimeOfDay{}, ErrInvalidTimeSlot
}

func (b *bookingCommandsImpl) checkConsecutiveDays(ctx context.Context, userID uuid.UUID, date booking.Date) error {
	existing, err := b.uow.CommandReads().ActiveBookingDates(ctx, userID, string(amenity.TypeGuestParking))
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	limit := b.cfg.MaxConsecutiveParkingDays
	if exceeded, streak := schedule.WouldExceedLimit(existing, date, limit); exceeded {
		return newConsecutiveLimitError(streak, limit)
	}
	return nil
}

func (b *bookingCommandsImpl) ensureSlotFree(
	ctx context.Context,
	tx shared.Tx,
	amenityType amenity.Type,
	amenityID uuid.UUID,
	date booking.Date,
	start booking.TimeOfDay,
) error {
	rows, err := tx.Reads().DayRecords(ctx, amenityID, date)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	records := make([]schedule.BookingRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, schedule.BookingRecord{
			StartTime:  r.StartTime,
			Status:     r.Status,
			OwnerLabel: r.OwnerLabel,
		})
	}

	day := schedule.Resolve(amenityType, records)
	if amenityType.FullDay() {
		if len(day.Booked) > 0 {
			return ErrSlotUnavailable
		}
		return nil
	}

	for _, taken := range day.Booked {
		if taken.Start.Equal(start) {
			return ErrSlotUnavailable
		}
	}
	return nil
}

func (b *bookingCommandsImpl) loadBooking(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) (*booking.Booking, error) {
	snap, err := tx.Reads().BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return booking.ReconstructBooking(
		snap.ID, snap.AmenityID, snap.UserID,
		snap.Date, snap.StartTime, snap.EndTime,
		snap.Status, "", snap.CreatedAt, snap.UpdatedAt,
	), nil
}

func (b *bookingCommandsImpl) persistStatus(ctx context.Context, tx shared.Tx, entity *booking.Booking, reason *string) error {
	if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), entity.ID(), entity.Status(), reason); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// Read-after-write: return the full view from the read store.
func (b *bookingCommandsImpl) readBack(ctx context.Context, bookingID uuid.UUID) (*queries.BookingView, error) {
	view, err := b.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
