package commands

import (
	"errors"
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/request"
	"supplyline/internal/pkg/guard"
)

var ErrCreateRestockRequestCommandIsNotConstructed = errors.New(
	"CreateRestockRequestCommand must be created via NewCreateRestockRequestCommand constructor",
)

// CreateRestockRequestCommand represents a customer asking for stock at one
// of their locations. The request starts Pending and waits to be attached
// to a route stop.
//
// Example:
//
//	requestID := kernel.NewUUID()
//	lines := []ProductLine{{ProductID: 341, Quantity: 24}}
//	cmd, err := NewCreateRestockRequestCommand(requestID, customerID, locationID, requestDate, lines)
//	if err != nil {
//	    return fmt.Errorf("invalid request data: %w", err)
//	}
//
//	handler := NewCreateRestockRequestCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create restock request: %w", err)
//	}
type CreateRestockRequestCommand struct { //nolint:recvcheck //using for validation
	requestID   kernel.UUID
	customerID  kernel.CustomerID
	locationID  kernel.LocationID
	requestDate time.Time
	items       []request.RequestItem

	guard guard.ConstructorGuard
}

// NewCreateRestockRequestCommand creates a command to register a restock ask.
// At least one line is required.
func NewCreateRestockRequestCommand(
	requestID kernel.UUID,
	customerID kernel.CustomerID,
	locationID kernel.LocationID,
	requestDate time.Time,
	lines []ProductLine,
) (CreateRestockRequestCommand, error) {
	cmd := CreateRestockRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setCustomerID(customerID),
		cmd.setLocationID(locationID),
		cmd.setItems(lines),
	); err != nil {
		return CreateRestockRequestCommand{}, err
	}

	cmd.requestDate = requestDate
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRestockRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestockRequestCommandIsNotConstructed)
}

// RequestID returns the identifier for the new request.
func (c CreateRestockRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// CustomerID returns the asking customer.
func (c CreateRestockRequestCommand) CustomerID() kernel.CustomerID {
	return c.customerID
}

// LocationID returns the site to restock.
func (c CreateRestockRequestCommand) LocationID() kernel.LocationID {
	return c.locationID
}

// RequestDate returns the day the customer asked for.
func (c CreateRestockRequestCommand) RequestDate() time.Time {
	return c.requestDate
}

// Items returns the validated request lines.
func (c CreateRestockRequestCommand) Items() []request.RequestItem {
	return c.items
}

func (c *CreateRestockRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *CreateRestockRequestCommand) setCustomerID(customerID kernel.CustomerID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateRestockRequestCommand) setLocationID(locationID kernel.LocationID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *CreateRestockRequestCommand) setItems(lines []ProductLine) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}

	items := make([]request.RequestItem, 0, len(lines))
	for _, line := range lines {
		key, err := kernel.NewProductKey(line.ProductID, line.VariantID)
		if err != nil {
			return err
		}

		item, err := request.NewRequestItem(key, line.Quantity)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	c.items = items
	return nil
}
