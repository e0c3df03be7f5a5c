package jobs

import (
	"fmt"
	"log/slog"

	"supplyline/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	routeOptimizationJob *RouteOptimizationJob
	routeCompletionJob   *RouteCompletionJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	optimizeHandler commands.OptimizeDueRoutesCommandHandler,
	completeHandler commands.CompleteFinishedRoutesCommandHandler,
	vehicle string,
	optimizationSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		routeOptimizationJob: NewRouteOptimizationJob(optimizeHandler, vehicle, optimizationSchedule, logger),
		routeCompletionJob:   NewRouteCompletionJob(completeHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.routeOptimizationJob.Start(); err != nil {
		return fmt.Errorf("failed to start route optimization job: %w", err)
	}

	if err := jm.routeCompletionJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.routeOptimizationJob.Stop()
		return fmt.Errorf("failed to start route completion job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.routeCompletionJob.Stop()
	jm.routeOptimizationJob.Stop()
}
