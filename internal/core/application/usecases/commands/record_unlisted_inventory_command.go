package commands

import (
	"errors"
	"fmt"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/pkg/errs"
	"supplyline/internal/pkg/guard"
)

var ErrRecordUnlistedInventoryCommandIsNotConstructed = errors.New(
	"RecordUnlistedInventoryCommand must be created via NewRecordUnlistedInventoryCommand constructor",
)

// RecordUnlistedInventoryCommand represents stock found at a location that
// no catalog product matches; only a scanned barcode identifies it.
// Quantities accumulate on the (barcode, location) key.
//
// Example:
//
//	cmd, err := NewRecordUnlistedInventoryCommand("4006381333931", locationID, 2, actorID)
//	if err != nil {
//	    return fmt.Errorf("invalid unlisted data: %w", err)
//	}
//
//	handler := NewRecordUnlistedInventoryCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to record unlisted stock: %w", err)
//	}
type RecordUnlistedInventoryCommand struct { //nolint:recvcheck //using for validation
	barcode    string
	locationID kernel.LocationID
	quantity   int
	actorID    kernel.UserID

	guard guard.ConstructorGuard
}

// NewRecordUnlistedInventoryCommand creates a command to record unlisted stock.
// Barcode must be non-empty and quantity positive.
func NewRecordUnlistedInventoryCommand(
	barcode string,
	locationID kernel.LocationID,
	quantity int,
	actorID kernel.UserID,
) (RecordUnlistedInventoryCommand, error) {
	cmd := RecordUnlistedInventoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBarcode(barcode),
		cmd.setLocationID(locationID),
		cmd.setQuantity(quantity),
		cmd.setActorID(actorID),
	); err != nil {
		return RecordUnlistedInventoryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordUnlistedInventoryCommand) Validate() error {
	return c.guard.Validate(ErrRecordUnlistedInventoryCommandIsNotConstructed)
}

// Barcode returns the scanned code.
func (c RecordUnlistedInventoryCommand) Barcode() string {
	return c.barcode
}

// LocationID returns the location where the stock was found.
func (c RecordUnlistedInventoryCommand) LocationID() kernel.LocationID {
	return c.locationID
}

// Quantity returns the counted amount.
func (c RecordUnlistedInventoryCommand) Quantity() int {
	return c.quantity
}

// ActorID returns the recording user.
func (c RecordUnlistedInventoryCommand) ActorID() kernel.UserID {
	return c.actorID
}

func (c *RecordUnlistedInventoryCommand) setBarcode(barcode string) error {
	if barcode == "" {
		return errs.NewValueIsRequiredError("barcode is required")
	}

	c.barcode = barcode
	return nil
}

func (c *RecordUnlistedInventoryCommand) setLocationID(locationID kernel.LocationID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *RecordUnlistedInventoryCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	c.quantity = quantity
	return nil
}

func (c *RecordUnlistedInventoryCommand) setActorID(actorID kernel.UserID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
