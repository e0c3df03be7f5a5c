package transferrepo

import (
	"context"
	"errors"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/transfer"
	"supplyline/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTransferRepository implements TransferRepository using GORM.
type GormTransferRepository struct {
	db *gorm.DB
}

// NewGormTransferRepository creates a new GORM transfer repository.
func NewGormTransferRepository(db *gorm.DB) *GormTransferRepository {
	return &GormTransferRepository{db: db}
}

// Add saves a new van transfer with its items to the database.
func (r *GormTransferRepository) Add(ctx context.Context, aggregate *transfer.VanTransfer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing van transfer and its item state to the database.
func (r *GormTransferRepository) Update(ctx context.Context, aggregate *transfer.VanTransfer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves a van transfer by ID.
func (r *GormTransferRepository) Get(ctx context.Context, id kernel.UUID) (*transfer.VanTransfer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VanTransferDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("van transfer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByDestination retrieves the Loaded transfer destined for the given
// location. When several transfers compete, the earliest loaded wins.
// Returns a nil transfer when no such transfer exists.
func (r *GormTransferRepository) GetActiveByDestination(
	ctx context.Context,
	locationID kernel.LocationID,
) (*transfer.VanTransfer, error) {
	if err := locationID.Validate(); err != nil {
		return nil, err
	}

	var dto VanTransferDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at").
		First(&dto,
			"destination_location_id = ? AND status = ? AND active",
			int64(locationID), int(transfer.StatusLoaded)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllLoadedByVan retrieves every Loaded transfer currently on one van.
func (r *GormTransferRepository) GetAllLoadedByVan(
	ctx context.Context,
	vanID kernel.VanID,
) ([]*transfer.VanTransfer, error) {
	if err := vanID.Validate(); err != nil {
		return nil, err
	}

	var dtos []VanTransferDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at").
		Find(&dtos, "van_id = ? AND status = ? AND active",
			int64(vanID), int(transfer.StatusLoaded)).Error
	if err != nil {
		return nil, err
	}

	transfers := make([]*transfer.VanTransfer, 0, len(dtos))
	for _, dto := range dtos {
		t, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		transfers = append(transfers, t)
	}

	return transfers, nil
}
