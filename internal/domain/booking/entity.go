package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrInvalidInitialStatus = errors.New("booking must start as pending or confirmed")
	ErrInvalidTransition    = errors.New("booking status transition not permitted")
	ErrDateElapsed          = errors.New("booking date has already passed")
	ErrDateNotElapsed       = errors.New("booking date has not elapsed yet")
)

type Booking struct {
	id        uuid.UUID
	amenityID uuid.UUID
	userID    uuid.UUID
	date      Date
	startTime TimeOfDay
	endTime   TimeOfDay
	status    Status
	reason    string
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking creates a booking in its initial state: pending for resident
// requests, confirmed when an admin books directly.
func NewBooking(amenityID, userID uuid.UUID, date Date, startTime, endTime TimeOfDay, initialStatus Status) (*Booking, error) {
	if err := ValidateTimeRange(startTime, endTime); err != nil {
		return nil, err
	}
	if initialStatus != StatusPending && initialStatus != StatusConfirmed {
		return nil, ErrInvalidInitialStatus
	}

	return &Booking{
		id:        uuid.New(),
		amenityID: amenityID,
		userID:    userID,
		date:      date,
		startTime: startTime,
		endTime:   endTime,
		status:    initialStatus,
	}, nil
}

func ReconstructBooking(
	id, amenityID, userID uuid.UUID,
	date Date,
	startTime, endTime TimeOfDay,
	status Status,
	reason string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		amenityID: amenityID,
		userID:    userID,
		date:      date,
		startTime: startTime,
		endTime:   endTime,
		status:    status,
		reason:    reason,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) AmenityID() uuid.UUID { return b.amenityID }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) Date() Date           { return b.date }
func (b *Booking) StartTime() TimeOfDay { return b.startTime }
func (b *Booking) EndTime() TimeOfDay   { return b.endTime }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) Reason() string       { return b.reason }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

func (b *Booking) IsActive() bool {
	return b.status.IsActive()
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

// Approve confirms a pending booking (admin action).
func (b *Booking) Approve() error {
	return b.transition(StatusConfirmed)
}

// Reject declines a pending booking with an optional reason; the slot is
// freed immediately.
func (b *Booking) Reject(reason string) error {
	if err := b.transition(StatusRejected); err != nil {
		return err
	}
	b.reason = strings.TrimSpace(reason)
	return nil
}

// Cancel releases a confirmed booking. Allowed only while the booking's
// date has not fully elapsed.
func (b *Booking) Cancel(now time.Time) error {
	if b.date.ElapsedAt(now) {
		return ErrDateElapsed
	}
	return b.transition(StatusCancelled)
}

// Complete marks a confirmed booking whose date has elapsed. Driven by the
// completion sweep, never by a user action.
func (b *Booking) Complete(now time.Time) error {
	if !b.date.ElapsedAt(now) {
		return ErrDateNotElapsed
	}
	return b.transition(StatusCompleted)
}

func (b *Booking) transition(to Status) error {
	if !CanTransition(b.status, to) {
		return ErrInvalidTransition
	}
	b.status = to
	return nil
}
