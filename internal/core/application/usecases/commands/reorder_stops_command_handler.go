package commands

import (
	"context"
)

// ReorderStopsCommandHandler handles manual stop reordering.
// The aggregate applies the mapping atomically: on any conflict the route
// keeps its prior order and the transaction rolls back.
type ReorderStopsCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewReorderStopsCommandHandler creates a handler for stop reorder operations.
// Requires a RouteUoWFactory for transactional persistence.
func NewReorderStopsCommandHandler(uowFactory RouteUoWFactory) ReorderStopsCommandHandler {
	return ReorderStopsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reorder command.
func (h ReorderStopsCommandHandler) Handle(ctx context.Context, cmd ReorderStopsCommand) error {
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

	if err = routeAggregate.Reorder(cmd.NewOrder()); err != nil {
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
