package commands

import (
	"errors"
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/services"
	"supplyline/internal/pkg/guard"
)

var (
	ErrTransferWarehouseToVanCommandIsNotConstructed = errors.New(
		"TransferWarehouseToVanCommand must be created via NewTransferWarehouseToVanCommand constructor",
	)
	ErrLinesAreRequired = errors.New("at least one product line is required")
)

// ProductLine is one requested product quantity in a command payload.
type ProductLine struct {
	ProductID kernel.ProductID
	VariantID *kernel.VariantID
	Quantity  int
}

// TransferWarehouseToVanCommand represents a request to load a van from
// warehouse stock. The whole load is all-or-nothing: if any line cannot be
// covered by the warehouse, nothing moves.
//
// Example:
//
//	transferID := kernel.NewUUID()
//	lines := []ProductLine{{ProductID: 341, Quantity: 10}}
//	cmd, err := NewTransferWarehouseToVanCommand(transferID, 2, 1, nil, "J. Albano", nil, lines, actorID)
//	if err != nil {
//	    return fmt.Errorf("invalid transfer data: %w", err)
//	}
//
//	handler := NewTransferWarehouseToVanCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to load van: %w", err)
//	}
type TransferWarehouseToVanCommand struct { //nolint:recvcheck //using for validation
	transferID            kernel.UUID
	vanID                 kernel.VanID
	warehouseID           kernel.WarehouseID
	destinationLocationID *kernel.LocationID
	driverName            string
	deliveryDate          *time.Time
	lines                 []services.LoadLine
	actorID               kernel.UserID

	guard guard.ConstructorGuard
}

// NewTransferWarehouseToVanCommand creates a command to load a van.
// Validates the reference ids and converts the line payloads into product
// keys. Destination, driver name, and delivery date are optional.
func NewTransferWarehouseToVanCommand(
	transferID kernel.UUID,
	vanID kernel.VanID,
	warehouseID kernel.WarehouseID,
	destinationLocationID *kernel.LocationID,
	driverName string,
	deliveryDate *time.Time,
	lines []ProductLine,
	actorID kernel.UserID,
) (TransferWarehouseToVanCommand, error) {
	cmd := TransferWarehouseToVanCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTransferID(transferID),
		cmd.setVanID(vanID),
		cmd.setWarehouseID(warehouseID),
		cmd.setDestination(destinationLocationID),
		cmd.setLines(lines),
		cmd.setActorID(actorID),
	); err != nil {
		return TransferWarehouseToVanCommand{}, err
	}

	cmd.driverName = driverName
	cmd.deliveryDate = deliveryDate
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransferWarehouseToVanCommand) Validate() error {
	return c.guard.Validate(ErrTransferWarehouseToVanCommandIsNotConstructed)
}

// TransferID returns the identifier for the new transfer.
func (c TransferWarehouseToVanCommand) TransferID() kernel.UUID {
	return c.transferID
}

// VanID returns the van being loaded.
func (c TransferWarehouseToVanCommand) VanID() kernel.VanID {
	return c.vanID
}

// WarehouseID returns the source warehouse.
func (c TransferWarehouseToVanCommand) WarehouseID() kernel.WarehouseID {
	return c.warehouseID
}

// DestinationLocationID returns the planned drop-off, nil when undecided.
func (c TransferWarehouseToVanCommand) DestinationLocationID() *kernel.LocationID {
	return c.destinationLocationID
}

// DriverName returns the driver display snapshot, may be empty.
func (c TransferWarehouseToVanCommand) DriverName() string {
	return c.driverName
}

// DeliveryDate returns the planned delivery day, nil if unscheduled.
func (c TransferWarehouseToVanCommand) DeliveryDate() *time.Time {
	return c.deliveryDate
}

// Lines returns the validated product lines to move.
func (c TransferWarehouseToVanCommand) Lines() []services.LoadLine {
	return c.lines
}

// ActorID returns the user performing the load.
func (c TransferWarehouseToVanCommand) ActorID() kernel.UserID {
	return c.actorID
}

func (c *TransferWarehouseToVanCommand) setTransferID(transferID kernel.UUID) error {
	if err := transferID.Validate(); err != nil {
		return err
	}

	c.transferID = transferID
	return nil
}

func (c *TransferWarehouseToVanCommand) setVanID(vanID kernel.VanID) error {
	if err := vanID.Validate(); err != nil {
		return err
	}

	c.vanID = vanID
	return nil
}

func (c *TransferWarehouseToVanCommand) setWarehouseID(warehouseID kernel.WarehouseID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.warehouseID = warehouseID
	return nil
}

func (c *TransferWarehouseToVanCommand) setDestination(locationID *kernel.LocationID) error {
	if locationID != nil {
		if err := locationID.Validate(); err != nil {
			return err
		}
	}

	c.destinationLocationID = locationID
	return nil
}

func (c *TransferWarehouseToVanCommand) setLines(lines []ProductLine) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}

	converted, err := convertLines(lines)
	if err != nil {
		return err
	}

	c.lines = converted
	return nil
}

func (c *TransferWarehouseToVanCommand) setActorID(actorID kernel.UserID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

// convertLines validates line payloads and turns them into load lines with
// constructed product keys. Quantity bounds are enforced by the domain.
func convertLines(lines []ProductLine) ([]services.LoadLine, error) {
	converted := make([]services.LoadLine, 0, len(lines))
	for _, line := range lines {
		key, err := kernel.NewProductKey(line.ProductID, line.VariantID)
		if err != nil {
			return nil, err
		}

		converted = append(converted, services.LoadLine{Key: key, Quantity: line.Quantity})
	}
	return converted, nil
}
