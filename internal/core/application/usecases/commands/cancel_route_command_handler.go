package commands

import (
	"context"
)

// CancelRouteCommandHandler handles route cancellation.
// Cancelling a terminal route fails with route.ErrInvalidTransition.
type CancelRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewCancelRouteCommandHandler creates a handler for route cancellation.
// Requires a RouteUoWFactory for transactional persistence.
func NewCancelRouteCommandHandler(uowFactory RouteUoWFactory) CancelRouteCommandHandler {
	return CancelRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route cancellation command.
func (h CancelRouteCommandHandler) Handle(ctx context.Context, cmd CancelRouteCommand) error {
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

	if err = routeAggregate.Cancel(); err != nil {
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
