package commands

import (
	"errors"
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/pkg/guard"
)

var ErrCreateFollowupRequestCommandIsNotConstructed = errors.New(
	"CreateFollowupRequestCommand must be created via NewCreateFollowupRequestCommand constructor",
)

// CreateFollowupRequestCommand represents a customer asking for a visit
// without a stock order. The request starts Pending like a restock ask but
// carries no items.
type CreateFollowupRequestCommand struct { //nolint:recvcheck //using for validation
	requestID   kernel.UUID
	customerID  kernel.CustomerID
	locationID  kernel.LocationID
	requestDate time.Time

	guard guard.ConstructorGuard
}

// NewCreateFollowupRequestCommand creates a command to register a followup ask.
func NewCreateFollowupRequestCommand(
	requestID kernel.UUID,
	customerID kernel.CustomerID,
	locationID kernel.LocationID,
	requestDate time.Time,
) (CreateFollowupRequestCommand, error) {
	cmd := CreateFollowupRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setCustomerID(customerID),
		cmd.setLocationID(locationID),
	); err != nil {
		return CreateFollowupRequestCommand{}, err
	}

	cmd.requestDate = requestDate
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateFollowupRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateFollowupRequestCommandIsNotConstructed)
}

// RequestID returns the identifier for the new request.
func (c CreateFollowupRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// CustomerID returns the asking customer.
func (c CreateFollowupRequestCommand) CustomerID() kernel.CustomerID {
	return c.customerID
}

// LocationID returns the site to visit.
func (c CreateFollowupRequestCommand) LocationID() kernel.LocationID {
	return c.locationID
}

// RequestDate returns the day the customer asked for.
func (c CreateFollowupRequestCommand) RequestDate() time.Time {
	return c.requestDate
}

func (c *CreateFollowupRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *CreateFollowupRequestCommand) setCustomerID(customerID kernel.CustomerID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateFollowupRequestCommand) setLocationID(locationID kernel.LocationID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}
