package commands

import (
	"errors"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/pkg/guard"
)

var ErrTransferVanToLocationCommandIsNotConstructed = errors.New(
	"TransferVanToLocationCommand must be created via NewTransferVanToLocationCommand constructor",
)

// TransferVanToLocationCommand represents a request to unload a van transfer
// into a location's stock. Every remaining item quantity moves; the transfer
// ends up Delivered.
//
// Example:
//
//	cmd, err := NewTransferVanToLocationCommand(transferID, locationID, actorID)
//	if err != nil {
//	    return fmt.Errorf("invalid unload data: %w", err)
//	}
//
//	handler := NewTransferVanToLocationCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to unload van: %w", err)
//	}
type TransferVanToLocationCommand struct { //nolint:recvcheck //using for validation
	transferID kernel.UUID
	locationID kernel.LocationID
	actorID    kernel.UserID

	guard guard.ConstructorGuard
}

// NewTransferVanToLocationCommand creates a command to unload a transfer at
// a location. Validates all three identifiers.
func NewTransferVanToLocationCommand(
	transferID kernel.UUID,
	locationID kernel.LocationID,
	actorID kernel.UserID,
) (TransferVanToLocationCommand, error) {
	cmd := TransferVanToLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTransferID(transferID),
		cmd.setLocationID(locationID),
		cmd.setActorID(actorID),
	); err != nil {
		return TransferVanToLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransferVanToLocationCommand) Validate() error {
	return c.guard.Validate(ErrTransferVanToLocationCommandIsNotConstructed)
}

// TransferID returns the transfer being unloaded.
func (c TransferVanToLocationCommand) TransferID() kernel.UUID {
	return c.transferID
}

// LocationID returns the receiving location.
func (c TransferVanToLocationCommand) LocationID() kernel.LocationID {
	return c.locationID
}

// ActorID returns the user performing the unload.
func (c TransferVanToLocationCommand) ActorID() kernel.UserID {
	return c.actorID
}

func (c *TransferVanToLocationCommand) setTransferID(transferID kernel.UUID) error {
	if err := transferID.Validate(); err != nil {
		return err
	}

	c.transferID = transferID
	return nil
}

func (c *TransferVanToLocationCommand) setLocationID(locationID kernel.LocationID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *TransferVanToLocationCommand) setActorID(actorID kernel.UserID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
