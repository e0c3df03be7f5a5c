package commands

import (
	"context"
)

// CompleteRouteCommandHandler handles route completion.
// The aggregate enforces that every active stop is terminal; repeated
// completion is a no-op and still commits cleanly.
type CompleteRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewCompleteRouteCommandHandler creates a handler for route completion.
// Requires a RouteUoWFactory for transactional persistence.
func NewCompleteRouteCommandHandler(uowFactory RouteUoWFactory) CompleteRouteCommandHandler {
	return CompleteRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route completion command.
func (h CompleteRouteCommandHandler) Handle(ctx context.Context, cmd CompleteRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeRepo := uow.RouteRepository()

	routeAggregate, err := routeRepo.Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	if err = routeAggregate.Complete(); err != nil {
		return err
	}

	if err = routeRepo.Update(ctx, routeAggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
