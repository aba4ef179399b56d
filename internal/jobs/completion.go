// Package jobs holds background maintenance tasks driven by the cron
// scheduler.
package jobs

import (
	"context"
	"log/slog"

	"society-booking/internal/domain/booking"
	"society-booking/internal/pkg/clock"
	"society-booking/internal/usecase/shared"
)

// CompletionSweeper flips confirmed bookings whose date has elapsed to
// completed. Bookings are completed by the passage of time, never by a
// user action, so a periodic sweep is the only writer of that status.
type CompletionSweeper struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCompletionSweeper(uow shared.UnitOfWork, clk clock.Clock) *CompletionSweeper {
	return &CompletionSweeper{
		uow:   uow,
		clock: clk,
	}
}

// Run performs one sweep. The update is idempotent; overlapping runs are
// harmless.
func (s *CompletionSweeper) Run(ctx context.Context) error {
	today := booking.DateOf(s.clock.Now())

	var completed int64
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Bookings().CompleteElapsed(ctx, tx.DB(), today)
		if err != nil {
			return err
		}
		completed = n
		return nil
	})
	if err != nil {
		slog.Error("completion sweep failed", "error", err.Error())
		return err
	}

	if completed > 0 {
		slog.Info("completion sweep finished", "completed", completed, "as_of", today.String())
	}
	return nil
}
