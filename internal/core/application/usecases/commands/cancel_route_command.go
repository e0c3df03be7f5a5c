package commands

import (
	"errors"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/pkg/guard"
)

var ErrCancelRouteCommandIsNotConstructed = errors.New(
	"CancelRouteCommand must be created via NewCancelRouteCommand constructor",
)

// CancelRouteCommand represents abandoning a route. This is a status change
// only; stock already delivered stays delivered.
type CancelRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelRouteCommand creates a command to cancel a route.
func NewCancelRouteCommand(routeID kernel.UUID) (CancelRouteCommand, error) {
	cmd := CancelRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRouteID(routeID); err != nil {
		return CancelRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelRouteCommand) Validate() error {
	return c.guard.Validate(ErrCancelRouteCommandIsNotConstructed)
}

// RouteID returns the route to cancel.
func (c CancelRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c *CancelRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}
