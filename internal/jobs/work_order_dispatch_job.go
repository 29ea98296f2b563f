package jobs

import (
	"context"
	"errors"
	"log/slog"

	"yard/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// WorkOrderDispatchJob manages the scheduled matching of pending work orders
// with active vehicles. Runs every second so new orders pick up a vehicle
// without operator intervention.
type WorkOrderDispatchJob struct {
	handler commands.DispatchVehicleCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewWorkOrderDispatchJob creates a new job for dispatching vehicles.
// Uses DispatchVehicleCommandHandler to process one assignment per tick.
func NewWorkOrderDispatchJob(handler commands.DispatchVehicleCommandHandler, logger *slog.Logger) *WorkOrderDispatchJob {
	return &WorkOrderDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "work_order_dispatch_job"),
	}
}

// Start begins the dispatch job to run every second.
func (j *WorkOrderDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchVehicleCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty queue or an idle fleet is a normal state, not a failure.
			if !errors.Is(err, commands.ErrNoPendingWorkOrders) && !errors.Is(err, commands.ErrNoActiveVehicles) {
				j.logger.ErrorContext(ctx, "Work order dispatch job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Work order dispatch job started (running every second)")
	return nil
}

// Stop stops the dispatch job.
func (j *WorkOrderDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Work order dispatch job stopped")
}
