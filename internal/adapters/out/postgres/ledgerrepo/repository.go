package ledgerrepo

import (
	"context"
	"errors"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/ledger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLedgerRepository implements LedgerRepository using GORM.
type GormLedgerRepository struct {
	db *gorm.DB
}

// NewGormLedgerRepository creates a new GORM ledger repository.
func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

// Add saves a new stock record to the database.
func (r *GormLedgerRepository) Add(ctx context.Context, record *ledger.StockRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing stock record to the database.
func (r *GormLedgerRepository) Update(ctx context.Context, record *ledger.StockRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	result := r.db.WithContext(ctx).
		Model(&StockRecordDTO{}).
		Where("stage = ? AND entity_id = ? AND product_id = ? AND variant_id = ?",
			dto.Stage, dto.EntityID, dto.ProductID, dto.VariantID).
		Select("quantity", "updated_at", "updated_by", "active").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves one stock line by its natural key.
// Returns a nil record when the line does not exist.
func (r *GormLedgerRepository) Get(
	ctx context.Context,
	stage ledger.Stage,
	entityID int64,
	key kernel.ProductKey,
) (*ledger.StockRecord, error) {
	return r.get(ctx, r.db, stage, entityID, key)
}

// GetForUpdate retrieves one stock line holding a row lock until the
// surrounding transaction ends.
func (r *GormLedgerRepository) GetForUpdate(
	ctx context.Context,
	stage ledger.Stage,
	entityID int64,
	key kernel.ProductKey,
) (*ledger.StockRecord, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), stage, entityID, key)
}

// GetAllForEntity retrieves every stock line held by one warehouse, van, or
// location.
func (r *GormLedgerRepository) GetAllForEntity(
	ctx context.Context,
	stage ledger.Stage,
	entityID int64,
) ([]*ledger.StockRecord, error) {
	return r.getAllForEntity(ctx, r.db, stage, entityID)
}

// GetAllForEntityForUpdate retrieves every stock line held by one entity,
// locking the rows until the surrounding transaction ends.
func (r *GormLedgerRepository) GetAllForEntityForUpdate(
	ctx context.Context,
	stage ledger.Stage,
	entityID int64,
) ([]*ledger.StockRecord, error) {
	return r.getAllForEntity(
		ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), stage, entityID)
}

// AddOutward appends an outward usage row. Rows are never updated.
func (r *GormLedgerRepository) AddOutward(ctx context.Context, record *ledger.OutwardRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := outwardFromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AddUnlisted upserts an unlisted stock row, accumulating quantity on the
// (barcode, location) key.
func (r *GormLedgerRepository) AddUnlisted(ctx context.Context, record *ledger.UnlistedStock) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := unlistedFromDomain(record)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "barcode"}, {Name: "location_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":    gorm.Expr("unlisted_stock.quantity + EXCLUDED.quantity"),
			"recorded_at": dto.RecordedAt,
			"recorded_by": dto.RecordedBy,
		}),
	}).Create(&dto).Error
}

func (r *GormLedgerRepository) get(
	ctx context.Context,
	db *gorm.DB,
	stage ledger.Stage,
	entityID int64,
	key kernel.ProductKey,
) (*ledger.StockRecord, error) {
	var dto StockRecordDTO
	err := db.WithContext(ctx).First(
		&dto,
		"stage = ? AND entity_id = ? AND product_id = ? AND variant_id = ?",
		int(stage), entityID, int64(key.ProductID()), variantColumn(key.VariantID()),
	).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormLedgerRepository) getAllForEntity(
	ctx context.Context,
	db *gorm.DB,
	stage ledger.Stage,
	entityID int64,
) ([]*ledger.StockRecord, error) {
	var dtos []StockRecordDTO
	err := db.WithContext(ctx).
		Order("product_id, variant_id").
		Find(&dtos, "stage = ? AND entity_id = ?", int(stage), entityID).Error
	if err != nil {
		return nil, err
	}

	records := make([]*ledger.StockRecord, 0, len(dtos))
	for _, dto := range dtos {
		record, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		records = append(records, record)
	}

	return records, nil
}
