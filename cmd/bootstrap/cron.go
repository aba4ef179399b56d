package bootstrap

import (
	"context"
	"log/slog"

	"society-booking/internal/jobs"
	"society-booking/internal/pkg/config"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var CronModule = fx.Module("cron",
	fx.Provide(
		jobs.NewCompletionSweeper,
	),
	fx.Invoke(startCron),
)

func startCron(lc fx.Lifecycle, cfg config.Config, sweeper *jobs.CompletionSweeper) error {
	scheduler := cron.New()

	_, err := scheduler.AddFunc(cfg.Booking.CompletionSweepSpec, func() {
		if err := sweeper.Run(context.Background()); err != nil {
			slog.Error("scheduled completion sweep failed", "error", err.Error())
		}
	})
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			scheduler.Start()
			slog.Info("cron scheduler started", "completion_sweep", cfg.Booking.CompletionSweepSpec)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopCtx := scheduler.Stop()
			select {
			case <-stopCtx.Done():
			case <-ctx.Done():
			}
			return nil
		},
	})

	return nil
}
