package jobs

import (
	"fmt"
	"log/slog"

	"kurye/internal/core/application/usecases/commands"
)

// JobManager coordinates the scheduled background jobs: the dispatch
// sweep, the stale courier sweep and the earning sync sweep.
type JobManager struct {
	orderAssignmentJob *OrderAssignmentJob
	staleCourierJob    *StaleCourierJob
	earningSyncJob     *EarningSyncJob
}

// NewJobManager creates a manager owning all background jobs.
func NewJobManager(
	autoAssignHandler commands.AutoAssignOrdersCommandHandler,
	sweepStaleHandler commands.SweepStaleCouriersCommandHandler,
	syncEarningsHandler commands.SyncEarningsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderAssignmentJob: NewOrderAssignmentJob(autoAssignHandler, logger),
		staleCourierJob:    NewStaleCourierJob(sweepStaleHandler, logger),
		earningSyncJob:     NewEarningSyncJob(syncEarningsHandler, logger),
	}
}

// StartAll starts every job. If a later job fails to start, the ones
// already running are stopped again.
func (jm *JobManager) StartAll() error {
	if err := jm.orderAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start order assignment job: %w", err)
	}

	if err := jm.staleCourierJob.Start(); err != nil {
		jm.orderAssignmentJob.Stop()
		return fmt.Errorf("failed to start stale courier job: %w", err)
	}

	if err := jm.earningSyncJob.Start(); err != nil {
		jm.staleCourierJob.Stop()
		jm.orderAssignmentJob.Stop()
		return fmt.Errorf("failed to start earning sync job: %w", err)
	}

	return nil
}

// StopAll stops all jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.earningSyncJob.Stop()
	jm.staleCourierJob.Stop()
	jm.orderAssignmentJob.Stop()
}
