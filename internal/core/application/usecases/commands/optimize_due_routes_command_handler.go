package commands

import (
	"context"
	"errors"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/ports"
)

// OptimizeDueRoutesCommandHandler sweeps a delivery day's Draft routes
// through the optimizer. Each route is processed in its own transaction so
// one failing route does not hold back the rest.
type OptimizeDueRoutesCommandHandler struct {
	uowFactory   RouteUoWFactory
	routeHandler OptimizeRouteCommandHandler
}

// NewOptimizeDueRoutesCommandHandler creates a handler for the daily
// optimization sweep. Requires a RouteUoWFactory and the optimizer gateway.
func NewOptimizeDueRoutesCommandHandler(uowFactory RouteUoWFactory, optimizer ports.RouteOptimizer) OptimizeDueRoutesCommandHandler {
	return OptimizeDueRoutesCommandHandler{
		uowFactory:   uowFactory,
		routeHandler: NewOptimizeRouteCommandHandler(uowFactory, optimizer),
	}
}

// Handle processes the sweep command.
// Collects the day's Draft routes and runs the single-route optimization for
// each. Failures are collected and joined; successfully scheduled routes
// stay scheduled.
func (h OptimizeDueRoutesCommandHandler) Handle(ctx context.Context, cmd OptimizeDueRoutesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	routeIDs, err := h.collectDraftRouteIDs(ctx, cmd)
	if err != nil {
		return err
	}

	var errs []error
	for _, routeID := range routeIDs {
		routeCmd, cmdErr := NewOptimizeRouteCommand(routeID, cmd.Vehicle())
		if cmdErr != nil {
			errs = append(errs, cmdErr)
			continue
		}

		if handleErr := h.routeHandler.Handle(ctx, routeCmd); handleErr != nil {
			errs = append(errs, handleErr)
		}
	}

	return errors.Join(errs...)
}

func (h OptimizeDueRoutesCommandHandler) collectDraftRouteIDs(
	ctx context.Context,
	cmd OptimizeDueRoutesCommand,
) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routes, err := uow.RouteRepository().GetAllDraftForDate(ctx, cmd.Date())
	if err != nil {
		return nil, err
	}

	routeIDs := make([]kernel.UUID, 0, len(routes))
	for _, r := range routes {
		routeIDs = append(routeIDs, r.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return routeIDs, nil
}
