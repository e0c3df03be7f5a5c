package commands

import (
	"errors"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/pkg/guard"
)

var ErrCompleteRouteCommandIsNotConstructed = errors.New(
	"CompleteRouteCommand must be created via NewCompleteRouteCommand constructor",
)

// CompleteRouteCommand represents closing a route whose active stops are all
// terminal. Completing an already completed route is a no-op.
type CompleteRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteRouteCommand creates a command to complete a route.
func NewCompleteRouteCommand(routeID kernel.UUID) (CompleteRouteCommand, error) {
	cmd := CompleteRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRouteID(routeID); err != nil {
		return CompleteRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteRouteCommand) Validate() error {
	return c.guard.Validate(ErrCompleteRouteCommandIsNotConstructed)
}

// RouteID returns the route to complete.
func (c CompleteRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

func (c *CompleteRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}
