// Package jobs provides scheduled background tasks for the supply system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the delivery day.
//
// # Available Jobs
//
// 1. RouteOptimizationJob - Runs once a day to send the day's Draft routes
// through the external optimizer and schedule them
// 2. RouteCompletionJob - Runs every minute to complete in-progress routes
// whose stops are all Delivered or Failed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(optimizeHandler, completeHandler, vehicle, schedule, logger)
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
// Both jobs use six-field cron expressions. The optimization schedule comes
// from configuration so operators can align it with warehouse loading hours;
// the completion sweep is fixed at once a minute.
//
// # Error Handling
//
// - Optimization failures are logged and retried on the next day's run;
// routes the optimizer could not reach are scheduled in their manual order
// - Completion sweep errors are logged and retried a minute later
// - Failed job starts will stop any already running jobs
package jobs
