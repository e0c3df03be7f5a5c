package requestrepo

import (
	"context"
	"errors"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/request"
	"supplyline/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRequestRepository implements RequestRepository using GORM.
// One repository covers both request kinds; they share a lifecycle and are
// loaded together by the planning use cases.
type GormRequestRepository struct {
	db *gorm.DB
}

// NewGormRequestRepository creates a new GORM request repository.
func NewGormRequestRepository(db *gorm.DB) *GormRequestRepository {
	return &GormRequestRepository{db: db}
}

// AddRestock saves a new restock request with its lines to the database.
func (r *GormRequestRepository) AddRestock(ctx context.Context, aggregate *request.RestockRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := restockFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// UpdateRestock saves an existing restock request to the database.
func (r *GormRequestRepository) UpdateRestock(ctx context.Context, aggregate *request.RestockRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := restockFromDomain(aggregate)

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

// GetRestock retrieves a restock request by ID.
func (r *GormRequestRepository) GetRestock(ctx context.Context, id kernel.UUID) (*request.RestockRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestockRequestDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restock request", id.String())
		}
		return nil, err
	}

	return restockToDomain(dto)
}

// GetAllPendingRestock retrieves every restock request still awaiting a route.
func (r *GormRequestRepository) GetAllPendingRestock(ctx context.Context) ([]*request.RestockRequest, error) {
	var dtos []RestockRequestDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("request_date").
		Find(&dtos, "status = ? AND active", int(request.StatusPending)).Error
	if err != nil {
		return nil, err
	}

	requests := make([]*request.RestockRequest, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, convErr := restockToDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		requests = append(requests, aggregate)
	}

	return requests, nil
}

// AddFollowup saves a new followup request to the database.
func (r *GormRequestRepository) AddFollowup(ctx context.Context, aggregate *request.FollowupRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := followupFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// UpdateFollowup saves an existing followup request to the database.
func (r *GormRequestRepository) UpdateFollowup(ctx context.Context, aggregate *request.FollowupRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := followupFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&FollowupRequestDTO{}).
		Where("id = ?", dto.ID).
		Select("status", "attached_stop_id", "active").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// GetFollowup retrieves a followup request by ID.
func (r *GormRequestRepository) GetFollowup(ctx context.Context, id kernel.UUID) (*request.FollowupRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FollowupRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("followup request", id.String())
		}
		return nil, err
	}

	return followupToDomain(dto)
}

// GetAllPendingFollowup retrieves every followup request still awaiting a route.
func (r *GormRequestRepository) GetAllPendingFollowup(ctx context.Context) ([]*request.FollowupRequest, error) {
	var dtos []FollowupRequestDTO
	err := r.db.WithContext(ctx).
		Order("request_date").
		Find(&dtos, "status = ? AND active", int(request.StatusPending)).Error
	if err != nil {
		return nil, err
	}

	requests := make([]*request.FollowupRequest, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, convErr := followupToDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		requests = append(requests, aggregate)
	}

	return requests, nil
}
