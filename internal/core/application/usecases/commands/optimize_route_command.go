package commands

import (
	"errors"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/pkg/guard"
)

var ErrOptimizeRouteCommandIsNotConstructed = errors.New(
	"OptimizeRouteCommand must be created via NewOptimizeRouteCommand constructor",
)

// OptimizeRouteCommand represents asking the external optimizer for a stop
// sequence and scheduling the route with it. The vehicle profile is passed
// through to the optimizer and may be empty.
//
// Example:
//
//	cmd, err := NewOptimizeRouteCommand(routeID, "van")
//	if err != nil {
//	    return fmt.Errorf("invalid optimize request: %w", err)
//	}
//
//	handler := NewOptimizeRouteCommandHandler(uowFactory, optimizer)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to optimize route: %w", err)
//	}
type OptimizeRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID
	vehicle string

	guard guard.ConstructorGuard
}

// NewOptimizeRouteCommand creates a command to optimize and schedule a route.
func NewOptimizeRouteCommand(routeID kernel.UUID, vehicle string) (OptimizeRouteCommand, error) {
	cmd := OptimizeRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRouteID(routeID); err != nil {
		return OptimizeRouteCommand{}, err
	}

	cmd.vehicle = vehicle
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OptimizeRouteCommand) Validate() error {
	return c.guard.Validate(ErrOptimizeRouteCommandIsNotConstructed)
}

// RouteID returns the route to optimize.
func (c OptimizeRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// Vehicle returns the optimizer vehicle profile, may be empty.
func (c OptimizeRouteCommand) Vehicle() string {
	return c.vehicle
}

func (c *OptimizeRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}
