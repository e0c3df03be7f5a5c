package commands

import (
	"errors"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/ledger"
	"supplyline/internal/pkg/errs"
	"supplyline/internal/pkg/guard"
)

var (
	ErrAdjustStockCommandIsNotConstructed = errors.New(
		"AdjustStockCommand must be created via NewAdjustStockCommand constructor",
	)
	ErrDeltaIsZero = errors.New("delta must not be zero")
)

// AdjustStockCommand represents a manual stock correction at any tier of the
// chain. A positive delta also serves as goods receipt into a warehouse.
//
// Example:
//
//	// Receive 120 units into warehouse 1
//	cmd, err := NewAdjustStockCommand(ledger.StageWarehouse, 1, 341, nil, 120, actorID)
//	if err != nil {
//	    return fmt.Errorf("invalid adjustment: %w", err)
//	}
//
//	handler := NewAdjustStockCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to adjust stock: %w", err)
//	}
type AdjustStockCommand struct { //nolint:recvcheck //using for validation
	stage      ledger.Stage
	entityID   int64
	productKey kernel.ProductKey
	delta      int
	actorID    kernel.UserID

	guard guard.ConstructorGuard
}

// NewAdjustStockCommand creates a command to adjust one stock line.
// Delta must be non-zero; negative deltas remove stock and are rejected
// downstream if the line cannot cover them.
func NewAdjustStockCommand(
	stage ledger.Stage,
	entityID int64,
	productID kernel.ProductID,
	variantID *kernel.VariantID,
	delta int,
	actorID kernel.UserID,
) (AdjustStockCommand, error) {
	cmd := AdjustStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStage(stage),
		cmd.setEntityID(entityID),
		cmd.setProductKey(productID, variantID),
		cmd.setDelta(delta),
		cmd.setActorID(actorID),
	); err != nil {
		return AdjustStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustStockCommand) Validate() error {
	return c.guard.Validate(ErrAdjustStockCommandIsNotConstructed)
}

// Stage returns the chain tier being adjusted.
func (c AdjustStockCommand) Stage() ledger.Stage {
	return c.stage
}

// EntityID returns the warehouse, van, or location holding the stock.
func (c AdjustStockCommand) EntityID() int64 {
	return c.entityID
}

// ProductKey returns the stock line being adjusted.
func (c AdjustStockCommand) ProductKey() kernel.ProductKey {
	return c.productKey
}

// Delta returns the signed adjustment amount.
func (c AdjustStockCommand) Delta() int {
	return c.delta
}

// ActorID returns the adjusting user.
func (c AdjustStockCommand) ActorID() kernel.UserID {
	return c.actorID
}

func (c *AdjustStockCommand) setStage(stage ledger.Stage) error {
	if err := stage.Validate(); err != nil {
		return err
	}

	c.stage = stage
	return nil
}

func (c *AdjustStockCommand) setEntityID(entityID int64) error {
	if entityID <= 0 {
		return errs.NewValueIsInvalidError("entityID is invalid")
	}

	c.entityID = entityID
	return nil
}

func (c *AdjustStockCommand) setProductKey(productID kernel.ProductID, variantID *kernel.VariantID) error {
	key, err := kernel.NewProductKey(productID, variantID)
	if err != nil {
		return err
	}

	c.productKey = key
	return nil
}

func (c *AdjustStockCommand) setDelta(delta int) error {
	if delta == 0 {
		return ErrDeltaIsZero
	}

	c.delta = delta
	return nil
}

func (c *AdjustStockCommand) setActorID(actorID kernel.UserID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
