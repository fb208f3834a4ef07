package jobs

import (
	"context"
	"log/slog"

	"kurye/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderAssignmentJob periodically sweeps ready orders and offers each
// one to the best courier in rotation. A sweep with nothing to dispatch
// is a no-op, so the short interval is cheap.
type OrderAssignmentJob struct {
	handler commands.AutoAssignOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderAssignmentJob creates the dispatch sweep job. It runs every
// five seconds.
func NewOrderAssignmentJob(handler commands.AutoAssignOrdersCommandHandler, logger *slog.Logger) *OrderAssignmentJob {
	return &OrderAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_assignment_job"),
	}
}

// Start schedules the dispatch sweep.
func (j *OrderAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAutoAssignOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order assignment sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order assignment job started (running every 5 seconds)")
	return nil
}

// Stop stops the dispatch sweep.
func (j *OrderAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order assignment job stopped")
}
