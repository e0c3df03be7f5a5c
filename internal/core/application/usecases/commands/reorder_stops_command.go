package commands

import (
	"errors"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/pkg/guard"
)

var (
	ErrReorderStopsCommandIsNotConstructed = errors.New(
		"ReorderStopsCommand must be created via NewReorderStopsCommand constructor",
	)
	ErrOrderMappingIsRequired = errors.New("order mapping is required")
)

// ReorderStopsCommand represents replacing a route's stop sequence with a
// new order map. The mapping must cover every active stop and the positions
// must form a permutation of 1..N.
//
// Example:
//
//	newOrder := map[kernel.UUID]int{stopA: 2, stopB: 1}
//	cmd, err := NewReorderStopsCommand(routeID, newOrder)
//	if err != nil {
//	    return fmt.Errorf("invalid reorder: %w", err)
//	}
//
//	handler := NewReorderStopsCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, route.ErrOrderingConflict) {
//	    // Positions do not form a valid permutation, route unchanged
//	}
type ReorderStopsCommand struct { //nolint:recvcheck //using for validation
	routeID  kernel.UUID
	newOrder map[kernel.UUID]int

	guard guard.ConstructorGuard
}

// NewReorderStopsCommand creates a command to reorder a route's stops.
// Permutation validity is enforced by the aggregate; the command only
// requires a non-empty mapping with valid stop ids.
func NewReorderStopsCommand(routeID kernel.UUID, newOrder map[kernel.UUID]int) (ReorderStopsCommand, error) {
	cmd := ReorderStopsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRouteID(routeID),
		cmd.setNewOrder(newOrder),
	); err != nil {
		return ReorderStopsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReorderStopsCommand) Validate() error {
	return c.guard.Validate(ErrReorderStopsCommandIsNotConstructed)
}

// RouteID returns the route being reordered.
func (c ReorderStopsCommand) RouteID() kernel.UUID {
	return c.routeID
}

// NewOrder returns the stop id to new position mapping.
func (c ReorderStopsCommand) NewOrder() map[kernel.UUID]int {
	return c.newOrder
}

func (c *ReorderStopsCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}

func (c *ReorderStopsCommand) setNewOrder(newOrder map[kernel.UUID]int) error {
	if len(newOrder) == 0 {
		return ErrOrderMappingIsRequired
	}

	for stopID := range newOrder {
		if err := stopID.Validate(); err != nil {
			return err
		}
	}

	c.newOrder = newOrder
	return nil
}
