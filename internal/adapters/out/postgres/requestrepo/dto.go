// Package requestrepo provides data transfer objects and mapping functions
// for fulfillment request persistence. Restock requests own their item rows;
// followup requests are header-only.
package requestrepo

import (
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/request"

	"github.com/google/uuid"
)

// RestockRequestDTO represents the database structure for persisting restock
// request aggregates.
type RestockRequestDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID     int64     `gorm:"index"`
	LocationID     int64     `gorm:"index"`
	Status         int       `gorm:"index"`
	RequestDate    time.Time
	AttachedStopID *uuid.UUID `gorm:"type:uuid"`
	Active         bool
	Items          []RequestItemDTO `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for restock requests.
func (RestockRequestDTO) TableName() string {
	return "restock_requests"
}

// RequestItemDTO represents the database structure for persisting restock
// request lines. The line is identified by its request and product key.
type RequestItemDTO struct {
	RequestID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID int64     `gorm:"primaryKey"`
	VariantID int64     `gorm:"primaryKey"`
	Quantity  int       `gorm:"not null"`
}

// TableName specifies the database table name for restock request lines.
func (RequestItemDTO) TableName() string {
	return "restock_request_items"
}

// FollowupRequestDTO represents the database structure for persisting
// followup request aggregates.
type FollowupRequestDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID     int64     `gorm:"index"`
	LocationID     int64     `gorm:"index"`
	Status         int       `gorm:"index"`
	RequestDate    time.Time
	AttachedStopID *uuid.UUID `gorm:"type:uuid"`
	Active         bool
}

// TableName specifies the database table name for followup requests.
func (FollowupRequestDTO) TableName() string {
	return "followup_requests"
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

// stopRefColumn flattens an optional stop reference into its column form.
func stopRefColumn(stopID *kernel.UUID) *uuid.UUID {
	if stopID == nil {
		return nil
	}
	raw := stopID.Bytes()
	return &raw
}

// stopRefFromColumn restores an optional stop reference from its column form.
func stopRefFromColumn(column *uuid.UUID) (*kernel.UUID, error) {
	if column == nil {
		return nil, nil
	}

	stopID, err := kernel.UUIDFromBytes((*column)[:])
	if err != nil {
		return nil, err
	}
	return &stopID, nil
}

// restockFromDomain converts a restock request aggregate to its database
// representation.
func restockFromDomain(aggregate *request.RestockRequest) RestockRequestDTO {
	requestID := aggregate.ID().Bytes()
	items := make([]RequestItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, RequestItemDTO{
			RequestID: requestID,
			ProductID: int64(item.ProductKey().ProductID()),
			VariantID: variantColumn(item.ProductKey().VariantID()),
			Quantity:  item.Quantity(),
		})
	}

	return RestockRequestDTO{
		ID:             requestID,
		CustomerID:     int64(aggregate.CustomerID()),
		LocationID:     int64(aggregate.LocationID()),
		Status:         int(aggregate.Status()),
		RequestDate:    aggregate.RequestDate(),
		AttachedStopID: stopRefColumn(aggregate.AttachedStopID()),
		Active:         aggregate.IsActive(),
		Items:          items,
	}
}

// restockToDomain converts a database DTO to a restock request aggregate
// using RestoreRestockRequest.
func restockToDomain(dto RestockRequestDTO) (*request.RestockRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]request.RequestItem, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		key, keyErr := kernel.NewProductKey(
			kernel.ProductID(itemDto.ProductID), variantFromColumn(itemDto.VariantID))
		if keyErr != nil {
			return nil, keyErr
		}

		item, itemErr := request.NewRequestItem(key, itemDto.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	attachedStopID, err := stopRefFromColumn(dto.AttachedStopID)
	if err != nil {
		return nil, err
	}

	return request.RestoreRestockRequest(
		id,
		kernel.CustomerID(dto.CustomerID),
		kernel.LocationID(dto.LocationID),
		request.Status(dto.Status),
		dto.RequestDate,
		items,
		attachedStopID,
		dto.Active,
	)
}

// followupFromDomain converts a followup request aggregate to its database
// representation.
func followupFromDomain(aggregate *request.FollowupRequest) FollowupRequestDTO {
	return FollowupRequestDTO{
		ID:             aggregate.ID().Bytes(),
		CustomerID:     int64(aggregate.CustomerID()),
		LocationID:     int64(aggregate.LocationID()),
		Status:         int(aggregate.Status()),
		RequestDate:    aggregate.RequestDate(),
		AttachedStopID: stopRefColumn(aggregate.AttachedStopID()),
		Active:         aggregate.IsActive(),
	}
}

// followupToDomain converts a database DTO to a followup request aggregate
// using RestoreFollowupRequest.
func followupToDomain(dto FollowupRequestDTO) (*request.FollowupRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	attachedStopID, err := stopRefFromColumn(dto.AttachedStopID)
	if err != nil {
		return nil, err
	}

	return request.RestoreFollowupRequest(
		id,
		kernel.CustomerID(dto.CustomerID),
		kernel.LocationID(dto.LocationID),
		request.Status(dto.Status),
		dto.RequestDate,
		attachedStopID,
		dto.Active,
	)
}
