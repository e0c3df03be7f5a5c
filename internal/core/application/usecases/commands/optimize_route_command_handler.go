package commands

import (
	"context"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/route"
	"supplyline/internal/core/ports"
)

// OptimizeRouteCommandHandler handles optimizer-driven route scheduling.
//
// Only stops with coordinates are submitted. The returned sequence leads the
// new order; skipped and coordinate-less stops follow in their prior
// relative order. An optimizer failure is not fatal: the route keeps its
// prior order and is scheduled as planned.
//
// Example:
//
//	handler := NewOptimizeRouteCommandHandler(uowFactory, optimizerClient)
//	cmd, _ := NewOptimizeRouteCommand(routeID, "van")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("scheduling failed: %w", err)
//	}
//	// Route is now Scheduled, optimized when the optimizer cooperated
type OptimizeRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	optimizer  ports.RouteOptimizer
}

// NewOptimizeRouteCommandHandler creates a handler for route optimization.
// Requires a RouteUoWFactory and the optimizer gateway.
func NewOptimizeRouteCommandHandler(uowFactory RouteUoWFactory, optimizer ports.RouteOptimizer) OptimizeRouteCommandHandler {
	return OptimizeRouteCommandHandler{
		uowFactory: uowFactory,
		optimizer:  optimizer,
	}
}

// Handle processes the optimize command.
// Submits the route's located stops, applies the suggested order through the
// aggregate, moves the route Draft -> Scheduled, and persists it.
func (h OptimizeRouteCommandHandler) Handle(ctx context.Context, cmd OptimizeRouteCommand) error {
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

	newOrder := h.suggestOrder(ctx, routeAggregate, cmd.Vehicle())
	if newOrder != nil {
		if err = routeAggregate.Reorder(newOrder); err != nil {
			return err
		}
	}

	if err = routeAggregate.Schedule(); err != nil {
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

// suggestOrder asks the optimizer for a sequence over the located stops.
// Returns nil when there is nothing to optimize or the optimizer failed;
// the caller then keeps the prior order.
func (h OptimizeRouteCommandHandler) suggestOrder(
	ctx context.Context,
	routeAggregate *route.Route,
	vehicle string,
) map[kernel.UUID]int {
	var located, unlocated []*route.Stop
	for _, stop := range routeAggregate.Stops() {
		if !stop.IsActive() {
			continue
		}
		if stop.Geo() != nil {
			located = append(located, stop)
		} else {
			unlocated = append(unlocated, stop)
		}
	}

	if len(located) < 2 {
		return nil
	}

	waypoints := make([]ports.OptimizeWaypoint, 0, len(located))
	for _, stop := range located {
		waypoints = append(waypoints, ports.OptimizeWaypoint{
			StopID:    stop.ID(),
			Latitude:  stop.Geo().Lat,
			Longitude: stop.Geo().Long,
		})
	}

	resp, err := h.optimizer.Optimize(ctx, ports.OptimizeRequest{
		RouteID:   routeAggregate.ID(),
		Vehicle:   vehicle,
		StartTime: routeAggregate.DeliveryDate(),
		Waypoints: waypoints,
	})
	if err != nil {
		return nil
	}

	// The optimized sequence leads; skipped and unlocated stops keep their
	// prior relative order after it.
	sequenced := make(map[string]bool, len(resp.Sequence))
	newOrder := make(map[kernel.UUID]int, len(located)+len(unlocated))
	position := 1
	for _, stopID := range resp.Sequence {
		if _, findErr := routeAggregate.FindStop(stopID); findErr != nil {
			return nil
		}
		newOrder[stopID] = position
		sequenced[stopID.String()] = true
		position++
	}

	for _, stop := range located {
		if !sequenced[stop.ID().String()] {
			newOrder[stop.ID()] = position
			position++
		}
	}

	for _, stop := range unlocated {
		newOrder[stop.ID()] = position
		position++
	}

	return newOrder
}
