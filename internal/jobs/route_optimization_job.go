package jobs

import (
	"context"
	"log/slog"
	"time"

	"supplyline/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RouteOptimizationJob runs the daily optimization sweep over the day's
// Draft routes. Runs every morning before the vans leave so drivers start
// with a scheduled sequence.
type RouteOptimizationJob struct {
	handler  commands.OptimizeDueRoutesCommandHandler
	vehicle  string
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRouteOptimizationJob creates the daily optimization job.
// The schedule is a six-field cron expression; vehicle is the profile passed
// through to the optimizer.
func NewRouteOptimizationJob(
	handler commands.OptimizeDueRoutesCommandHandler,
	vehicle string,
	schedule string,
	logger *slog.Logger,
) *RouteOptimizationJob {
	return &RouteOptimizationJob{
		handler:  handler,
		vehicle:  vehicle,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "route_optimization_job"),
	}
}

// Start begins the daily optimization sweep.
func (j *RouteOptimizationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewOptimizeDueRoutesCommand(time.Now(), j.vehicle)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Route optimization sweep could not be built", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Route optimization sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Route optimization job started", "schedule", j.schedule)
	return nil
}

// Stop stops the route optimization job.
func (j *RouteOptimizationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Route optimization job stopped")
}
