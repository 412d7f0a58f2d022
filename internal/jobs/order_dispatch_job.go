package jobs

import (
	"context"
	"errors"
	"log/slog"

	"appcenar/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderDispatchJob manages the scheduled dispatch of couriers to orders.
// Runs every 15 seconds to match the oldest pending order with an
// available courier.
type OrderDispatchJob struct {
	handler commands.AssignCourierCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderDispatchJob creates a new job for dispatching couriers.
// Uses AssignCourierCommandHandler to process one assignment per run.
func NewOrderDispatchJob(handler commands.AssignCourierCommandHandler, logger *slog.Logger) *OrderDispatchJob {
	return &OrderDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_dispatch_job"),
	}
}

// Start begins the dispatch job to run every 15 seconds.
func (j *OrderDispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/15 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignOldestPendingCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty queue or a fully busy fleet is a normal outcome, not a failure.
			if !errors.Is(err, commands.ErrNoPendingOrder) && !errors.Is(err, commands.ErrNoCourierAvailable) {
				j.logger.ErrorContext(ctx, "Order dispatch job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order dispatch job started (running every 15 seconds)")
	return nil
}

// Stop stops the dispatch job.
func (j *OrderDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order dispatch job stopped")
}
