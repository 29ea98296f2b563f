// Package jobs provides scheduled background tasks for the yard system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for yard operations.
//
// # Available Jobs
//
// 1. WorkOrderDispatchJob - Runs every second to assign pending work orders to active vehicles
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchVehicleHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatch job uses the cron expression "* * * * * *", i.e. it runs every
// second. One assignment is made per tick: the highest-priority pending work
// order is matched with the least loaded active vehicle.
//
// # Error Handling
//
// - The dispatch job ignores expected business states (no pending orders, no active vehicles)
// - Other errors are logged as they indicate system issues
// - Failed job starts stop any already running jobs
package jobs
