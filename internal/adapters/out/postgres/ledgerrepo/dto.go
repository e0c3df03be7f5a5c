// Package ledgerrepo provides data transfer objects and mapping functions for
// stock ledger persistence. It covers the staged stock records, the append-only
// outward usage rows, and the barcode-keyed unlisted stock rows.
package ledgerrepo

import (
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/ledger"

	"github.com/google/uuid"
)

// StockRecordDTO represents the database structure for a stock ledger line.
// The natural key (stage, entity, product, variant) is the primary key;
// a missing variant is stored as zero so the key stays non-nullable.
type StockRecordDTO struct {
	Stage     int   `gorm:"primaryKey;type:smallint"`
	EntityID  int64 `gorm:"primaryKey"`
	ProductID int64 `gorm:"primaryKey"`
	VariantID int64 `gorm:"primaryKey"`
	Quantity  int   `gorm:"not null"`
	CreatedAt time.Time
	CreatedBy int64
	UpdatedAt *time.Time
	UpdatedBy *int64
	Active    bool `gorm:"index"`
}

// TableName specifies the database table name for stock ledger lines.
func (StockRecordDTO) TableName() string {
	return "stock_records"
}

// OutwardRecordDTO represents the database structure for the append-only
// outward usage log.
type OutwardRecordDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	LocationID int64     `gorm:"index"`
	ProductID  int64
	VariantID  int64
	Quantity   int
	CreatedAt  time.Time
	CreatedBy  int64
	Active     bool
}

// TableName specifies the database table name for outward usage rows.
func (OutwardRecordDTO) TableName() string {
	return "outward_records"
}

// UnlistedStockDTO represents the database structure for barcode-only stock
// rows, keyed by (barcode, location).
type UnlistedStockDTO struct {
	Barcode    string `gorm:"primaryKey;type:varchar(64)"`
	LocationID int64  `gorm:"primaryKey"`
	Quantity   int    `gorm:"not null"`
	RecordedAt time.Time
	RecordedBy int64
}

// TableName specifies the database table name for unlisted stock rows.
func (UnlistedStockDTO) TableName() string {
	return "unlisted_stock"
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

// fromDomain converts a stock record to its database representation.
func fromDomain(record *ledger.StockRecord) StockRecordDTO {
	var updatedBy *int64
	if by := record.UpdatedBy(); by != nil {
		raw := int64(*by)
		updatedBy = &raw
	}

	return StockRecordDTO{
		Stage:     int(record.Stage()),
		EntityID:  record.EntityID(),
		ProductID: int64(record.ProductKey().ProductID()),
		VariantID: variantColumn(record.ProductKey().VariantID()),
		Quantity:  record.Quantity(),
		CreatedAt: record.CreatedAt(),
		CreatedBy: int64(record.CreatedBy()),
		UpdatedAt: record.UpdatedAt(),
		UpdatedBy: updatedBy,
		Active:    record.IsActive(),
	}
}

// toDomain converts a database DTO to a stock record using RestoreStockRecord.
func toDomain(dto StockRecordDTO) (*ledger.StockRecord, error) {
	key, err := kernel.NewProductKey(
		kernel.ProductID(dto.ProductID), variantFromColumn(dto.VariantID))
	if err != nil {
		return nil, err
	}

	var updatedBy *kernel.UserID
	if dto.UpdatedBy != nil {
		by := kernel.UserID(*dto.UpdatedBy)
		updatedBy = &by
	}

	return ledger.RestoreStockRecord(
		ledger.Stage(dto.Stage),
		dto.EntityID,
		key,
		dto.Quantity,
		dto.CreatedAt,
		kernel.UserID(dto.CreatedBy),
		dto.UpdatedAt,
		updatedBy,
		dto.Active,
	)
}

// outwardFromDomain converts an outward usage row to its database representation.
func outwardFromDomain(record *ledger.OutwardRecord) OutwardRecordDTO {
	return OutwardRecordDTO{
		ID:         record.ID().Bytes(),
		LocationID: int64(record.LocationID()),
		ProductID:  int64(record.ProductKey().ProductID()),
		VariantID:  variantColumn(record.ProductKey().VariantID()),
		Quantity:   record.Quantity(),
		CreatedAt:  record.CreatedAt(),
		CreatedBy:  int64(record.CreatedBy()),
		Active:     record.IsActive(),
	}
}

// unlistedFromDomain converts an unlisted stock row to its database representation.
func unlistedFromDomain(record *ledger.UnlistedStock) UnlistedStockDTO {
	return UnlistedStockDTO{
		Barcode:    record.Barcode(),
		LocationID: int64(record.LocationID()),
		Quantity:   record.Quantity(),
		RecordedAt: record.RecordedAt(),
		RecordedBy: int64(record.RecordedBy()),
	}
}
