// Package transferrepo provides data transfer objects and mapping functions
// for van transfer persistence. A transfer row exclusively owns its item rows.
package transferrepo

import (
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/transfer"

	"github.com/google/uuid"
)

// VanTransferDTO represents the database structure for persisting van
// transfer aggregates. CreatedAt is filled by the database on insert and
// orders competing transfers for the same destination.
type VanTransferDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	VanID                 int64     `gorm:"index"`
	SourceWarehouseID     int64
	DestinationLocationID *int64 `gorm:"index"`
	DriverName            string `gorm:"type:varchar(255)"`
	DeliveryDate          *time.Time
	Status                int
	Active                bool
	CreatedAt             time.Time         `gorm:"autoCreateTime;<-:create"`
	Items                 []TransferItemDTO `gorm:"foreignKey:TransferID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for van transfers.
func (VanTransferDTO) TableName() string {
	return "van_transfers"
}

// TransferItemDTO represents the database structure for persisting transfer
// item entities. Links to the owning transfer via foreign key.
type TransferItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	TransferID uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID  int64
	VariantID  int64
	Quantity   int
	Remaining  int
}

// TableName specifies the database table name for transfer items.
func (TransferItemDTO) TableName() string {
	return "transfer_items"
}

// variantColumn flattens an optional variant reference into its column form.
func variantColumn(variantID *kernel.VariantID) int64 {
	if variantID == nil {
		return 0
	}
	return int64(*variantID)
}

// variantFromColumn restores an optional variant reference from its column form.
func variantFromColumn(column int64) *kernel.VariantID {
	if column == 0 {
		return nil
	}
	v := kernel.VariantID(column)
	return &v
}

// fromDomain converts a van transfer aggregate to its database representation.
func fromDomain(aggregate *transfer.VanTransfer) VanTransferDTO {
	transferID := aggregate.ID().Bytes()
	items := make([]TransferItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, TransferItemDTO{
			ID:         item.ID().Bytes(),
			TransferID: transferID,
			ProductID:  int64(item.ProductKey().ProductID()),
			VariantID:  variantColumn(item.ProductKey().VariantID()),
			Quantity:   item.Quantity(),
			Remaining:  item.Remaining(),
		})
	}

	var destination *int64
	if locationID := aggregate.DestinationLocationID(); locationID != nil {
		raw := int64(*locationID)
		destination = &raw
	}

	return VanTransferDTO{
		ID:                    transferID,
		VanID:                 int64(aggregate.VanID()),
		SourceWarehouseID:     int64(aggregate.SourceWarehouseID()),
		DestinationLocationID: destination,
		DriverName:            aggregate.DriverName(),
		DeliveryDate:          aggregate.DeliveryDate(),
		Status:                int(aggregate.Status()),
		Active:                aggregate.IsActive(),
		Items:                 items,
	}
}

// toDomain converts a database DTO to a van transfer aggregate using
// RestoreVanTransfer.
func toDomain(dto VanTransferDTO) (*transfer.VanTransfer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*transfer.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var destination *kernel.LocationID
	if dto.DestinationLocationID != nil {
		locationID := kernel.LocationID(*dto.DestinationLocationID)
		destination = &locationID
	}

	return transfer.RestoreVanTransfer(
		id,
		kernel.VanID(dto.VanID),
		kernel.WarehouseID(dto.SourceWarehouseID),
		destination,
		dto.DriverName,
		dto.DeliveryDate,
		transfer.Status(dto.Status),
		items,
		dto.Active,
	)
}

// itemToDomain converts a transfer item DTO to its domain entity using
// RestoreItem.
func itemToDomain(dto TransferItemDTO) (*transfer.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	key, err := kernel.NewProductKey(
		kernel.ProductID(dto.ProductID), variantFromColumn(dto.VariantID))
	if err != nil {
		return nil, err
	}

	return transfer.RestoreItem(id, key, dto.Quantity, dto.Remaining)
}
