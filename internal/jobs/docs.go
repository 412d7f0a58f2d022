// Package jobs provides scheduled background tasks for the order core.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around order dispatch.
//
// # Available Jobs
//
// 1. OrderDispatchJob - Runs every 15 seconds to assign the oldest pending order to an available courier
// 2. OrderStatsJob - Runs every 5 minutes to log order counts per lifecycle status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignCourierHandler, orderStatsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Dispatch job ignores expected business outcomes (no pending orders, no available couriers)
// - Stats job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
