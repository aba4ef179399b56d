//go:build unit

package jobs_test

import (
	"context"
	"testing"
	"time"

	"society-booking/internal/domain/booking"
	"society-booking/internal/infra/db"
	"society-booking/internal/jobs"
	"society-booking/internal/pkg/clock"
	"society-booking/internal/pkg/errs"
	"society-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sweepRepo struct {
	completed int64
	err       error
	sweptAsOf []booking.Date
}

func (r *sweepRepo) Create(_ context.Context, _ db.DBTX, _ *booking.Booking) (uuid.UUID, error) {
	return uuid.Nil, nil
}

func (r *sweepRepo) UpdateStatus(_ context.Context, _ db.DBTX, _ uuid.UUID, _ booking.Status, _ *string) error {
	return nil
}

func (r *sweepRepo) CompleteElapsed(_ context.Context, _ db.DBTX, today booking.Date) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.sweptAsOf = append(r.sweptAsOf, today)
	return r.completed, nil
}

type sweepTx struct {
	repo *sweepRepo
}

func (t sweepTx) Bookings() shared.BookingRepository  { return t.repo }
func (t sweepTx) Amenities() shared.AmenityRepository { return nil }
func (t sweepTx) Users() shared.UserRepository        { return nil }
func (t sweepTx) Reads() shared.CommandReads          { return nil }
func (t sweepTx) DB() db.DBTX                         { return nil }

type sweepUoW struct {
	repo *sweepRepo
}

func (u sweepUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, sweepTx{repo: u.repo})
}

func (u sweepUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u sweepUoW) CommandReads() shared.CommandReads { return nil }

func TestCompletionSweeperRun(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.September, 15, 3, 0, 0, 0, time.UTC)

	t.Run("sweeps with the current calendar day", func(t *testing.T) {
		repo := &sweepRepo{completed: 4}
		sweeper := jobs.NewCompletionSweeper(sweepUoW{repo: repo}, clock.NewMockClock(now))

		require.NoError(t, sweeper.Run(ctx))

		require.Len(t, repo.sweptAsOf, 1)
		assert.Equal(t, "2026-09-15", repo.sweptAsOf[0].String())
	})

	t.Run("nothing to complete is not an error", func(t *testing.T) {
		repo := &sweepRepo{completed: 0}
		sweeper := jobs.NewCompletionSweeper(sweepUoW{repo: repo}, clock.NewMockClock(now))

		assert.NoError(t, sweeper.Run(ctx))
	})

	t.Run("propagates storage failures", func(t *testing.T) {
		repoErr := errs.New("connection refused")
		repo := &sweepRepo{err: repoErr}
		sweeper := jobs.NewCompletionSweeper(sweepUoW{repo: repo}, clock.NewMockClock(now))

		assert.ErrorIs(t, sweeper.Run(ctx), repoErr)
	})
}
