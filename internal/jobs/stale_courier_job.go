package jobs

import (
	"context"
	"log/slog"

	"kurye/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleCourierJob takes couriers whose location reports stopped coming
// in out of rotation, so the dispatcher never offers orders to a
// courier who silently went away.
type StaleCourierJob struct {
	handler commands.SweepStaleCouriersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleCourierJob creates the stale location sweep. It runs once a
// minute; staleness itself is judged by the sweep handler.
func NewStaleCourierJob(handler commands.SweepStaleCouriersCommandHandler, logger *slog.Logger) *StaleCourierJob {
	return &StaleCourierJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stale_courier_job"),
	}
}

// Start schedules the stale courier sweep.
func (j *StaleCourierJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewSweepStaleCouriersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Stale courier sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale courier job started (running every minute)")
	return nil
}

// Stop stops the stale courier sweep.
func (j *StaleCourierJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale courier job stopped")
}
