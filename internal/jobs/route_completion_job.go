package jobs

import (
	"context"
	"log/slog"

	"supplyline/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RouteCompletionJob closes routes whose stops have all reached a terminal
// status. Runs every minute so completed routes do not linger as InProgress.
type RouteCompletionJob struct {
	handler commands.CompleteFinishedRoutesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRouteCompletionJob creates the periodic completion job.
func NewRouteCompletionJob(handler commands.CompleteFinishedRoutesCommandHandler, logger *slog.Logger) *RouteCompletionJob {
	return &RouteCompletionJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "route_completion_job"),
	}
}

// Start begins the route completion job to run every minute.
func (j *RouteCompletionJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewCompleteFinishedRoutesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Route completion sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Route completion job started (running every minute)")
	return nil
}

// Stop stops the route completion job.
func (j *RouteCompletionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Route completion job stopped")
}
