package commands

import (
	"errors"
	"fmt"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/pkg/errs"
	"supplyline/internal/pkg/guard"
)

var ErrRecordOutwardUsageCommandIsNotConstructed = errors.New(
	"RecordOutwardUsageCommand must be created via NewRecordOutwardUsageCommand constructor",
)

// RecordOutwardUsageCommand represents stock leaving a location as sold or
// consumed. The location's stock line is decremented and an immutable
// outward row is appended, atomically.
//
// Example:
//
//	recordID := kernel.NewUUID()
//	cmd, err := NewRecordOutwardUsageCommand(recordID, locationID, 341, nil, 3, actorID)
//	if err != nil {
//	    return fmt.Errorf("invalid usage data: %w", err)
//	}
//
//	handler := NewRecordOutwardUsageCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to record usage: %w", err)
//	}
type RecordOutwardUsageCommand struct { //nolint:recvcheck //using for validation
	recordID   kernel.UUID
	locationID kernel.LocationID
	productKey kernel.ProductKey
	quantity   int
	actorID    kernel.UserID

	guard guard.ConstructorGuard
}

// NewRecordOutwardUsageCommand creates a command to record outward usage.
// Quantity must be positive; the variant is optional.
func NewRecordOutwardUsageCommand(
	recordID kernel.UUID,
	locationID kernel.LocationID,
	productID kernel.ProductID,
	variantID *kernel.VariantID,
	quantity int,
	actorID kernel.UserID,
) (RecordOutwardUsageCommand, error) {
	cmd := RecordOutwardUsageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRecordID(recordID),
		cmd.setLocationID(locationID),
		cmd.setProductKey(productID, variantID),
		cmd.setQuantity(quantity),
		cmd.setActorID(actorID),
	); err != nil {
		return RecordOutwardUsageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordOutwardUsageCommand) Validate() error {
	return c.guard.Validate(ErrRecordOutwardUsageCommandIsNotConstructed)
}

// RecordID returns the identifier for the new outward row.
func (c RecordOutwardUsageCommand) RecordID() kernel.UUID {
	return c.recordID
}

// LocationID returns the location the stock left.
func (c RecordOutwardUsageCommand) LocationID() kernel.LocationID {
	return c.locationID
}

// ProductKey returns the consumed product line.
func (c RecordOutwardUsageCommand) ProductKey() kernel.ProductKey {
	return c.productKey
}

// Quantity returns the consumed amount.
func (c RecordOutwardUsageCommand) Quantity() int {
	return c.quantity
}

// ActorID returns the recording user.
func (c RecordOutwardUsageCommand) ActorID() kernel.UserID {
	return c.actorID
}

func (c *RecordOutwardUsageCommand) setRecordID(recordID kernel.UUID) error {
	if err := recordID.Validate(); err != nil {
		return err
	}

	c.recordID = recordID
	return nil
}

func (c *RecordOutwardUsageCommand) setLocationID(locationID kernel.LocationID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *RecordOutwardUsageCommand) setProductKey(productID kernel.ProductID, variantID *kernel.VariantID) error {
	key, err := kernel.NewProductKey(productID, variantID)
	if err != nil {
		return err
	}

	c.productKey = key
	return nil
}

func (c *RecordOutwardUsageCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	c.quantity = quantity
	return nil
}

func (c *RecordOutwardUsageCommand) setActorID(actorID kernel.UserID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
