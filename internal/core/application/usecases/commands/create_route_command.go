package commands

import (
	"errors"
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/route"
	"supplyline/internal/pkg/guard"
)

var ErrCreateRouteCommandIsNotConstructed = errors.New(
	"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
)

// StopInput is one planned visit in a route creation payload.
type StopInput struct {
	StopID            kernel.UUID
	LocationID        kernel.LocationID
	StopOrder         int
	CustomerID        *kernel.CustomerID
	RestockRequestID  *kernel.UUID
	FollowupRequestID *kernel.UUID
	Address           string
	Geo               *route.GeoPoint
}

// CreateRouteCommand represents planning a new delivery route: one driver,
// one day, one starting warehouse, and the initial stop sequence. Requests
// referenced by the stops are attached in the same unit of work.
//
// Example:
//
//	routeID := kernel.NewUUID()
//	stops := []StopInput{{StopID: kernel.NewUUID(), LocationID: 30, StopOrder: 1, Address: "12 Pier Rd"}}
//	cmd, err := NewCreateRouteCommand(routeID, driverID, warehouseID, deliveryDate, stops)
//	if err != nil {
//	    return fmt.Errorf("invalid route data: %w", err)
//	}
//
//	handler := NewCreateRouteCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create route: %w", err)
//	}
type CreateRouteCommand struct { //nolint:recvcheck //using for validation
	routeID      kernel.UUID
	driverID     kernel.UserID
	warehouseID  kernel.WarehouseID
	deliveryDate time.Time
	stops        []*route.Stop

	guard guard.ConstructorGuard
}

// NewCreateRouteCommand creates a command to plan a route.
// Builds the stop entities up front so order conflicts and invalid payloads
// surface before any transaction starts.
func NewCreateRouteCommand(
	routeID kernel.UUID,
	driverID kernel.UserID,
	warehouseID kernel.WarehouseID,
	deliveryDate time.Time,
	stops []StopInput,
) (CreateRouteCommand, error) {
	cmd := CreateRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRouteID(routeID),
		cmd.setDriverID(driverID),
		cmd.setWarehouseID(warehouseID),
		cmd.setStops(stops),
	); err != nil {
		return CreateRouteCommand{}, err
	}

	cmd.deliveryDate = deliveryDate
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

// RouteID returns the identifier for the new route.
func (c CreateRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// DriverID returns the assigned driver.
func (c CreateRouteCommand) DriverID() kernel.UserID {
	return c.driverID
}

// WarehouseID returns the starting warehouse.
func (c CreateRouteCommand) WarehouseID() kernel.WarehouseID {
	return c.warehouseID
}

// DeliveryDate returns the day the route runs.
func (c CreateRouteCommand) DeliveryDate() time.Time {
	return c.deliveryDate
}

// Stops returns the constructed stop entities in payload order.
func (c CreateRouteCommand) Stops() []*route.Stop {
	return c.stops
}

func (c *CreateRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}

func (c *CreateRouteCommand) setDriverID(driverID kernel.UserID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *CreateRouteCommand) setWarehouseID(warehouseID kernel.WarehouseID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.warehouseID = warehouseID
	return nil
}

func (c *CreateRouteCommand) setStops(inputs []StopInput) error {
	stops := make([]*route.Stop, 0, len(inputs))
	for _, input := range inputs {
		stop, err := route.NewStop(
			input.StopID,
			input.LocationID,
			input.StopOrder,
			input.CustomerID,
			input.RestockRequestID,
			input.FollowupRequestID,
			input.Address,
			input.Geo,
		)
		if err != nil {
			return err
		}
		stops = append(stops, stop)
	}

	c.stops = stops
	return nil
}
