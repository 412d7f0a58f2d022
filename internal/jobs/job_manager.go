package jobs

import (
	"fmt"
	"log/slog"

	"appcenar/internal/core/application/usecases/commands"
	"appcenar/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderDispatchJob *OrderDispatchJob
	orderStatsJob    *OrderStatsJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command and query handlers as dependencies to wire up the job execution.
func NewJobManager(
	assignCourierHandler commands.AssignCourierCommandHandler,
	orderStatsHandler queries.GetOrderStatsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderDispatchJob: NewOrderDispatchJob(assignCourierHandler, logger),
		orderStatsJob:    NewOrderStatsJob(orderStatsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderDispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start order dispatch job: %w", err)
	}

	if err := jm.orderStatsJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderDispatchJob.Stop()
		return fmt.Errorf("failed to start order stats job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderDispatchJob.Stop()
	jm.orderStatsJob.Stop()
}
