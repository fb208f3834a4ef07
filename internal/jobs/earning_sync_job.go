package jobs

import (
	"context"
	"log/slog"

	"kurye/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// EarningSyncJob re-credits earning records whose wallet credit failed
// after settlement, so no payout is ever lost to a transient wallet
// error.
type EarningSyncJob struct {
	handler commands.SyncEarningsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewEarningSyncJob creates the earning reconciliation sweep. It runs
// once a minute.
func NewEarningSyncJob(handler commands.SyncEarningsCommandHandler, logger *slog.Logger) *EarningSyncJob {
	return &EarningSyncJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "earning_sync_job"),
	}
}

// Start schedules the earning sync sweep.
func (j *EarningSyncJob) Start() error {
	_, err := j.cron.AddFunc("30 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewSyncEarningsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Earning sync sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Earning sync job started (running every minute)")
	return nil
}

// Stop stops the earning sync sweep.
func (j *EarningSyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Earning sync job stopped")
}
