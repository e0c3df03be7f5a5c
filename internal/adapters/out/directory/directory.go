// Package directory resolves reference ids carried by the core into the
// platform's master data. The database copy is the source of truth; a Redis
// read-through cache in front of it absorbs the hot lookups commands make
// while validating references.
package directory

import (
	"context"
	"errors"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/ports"
	"supplyline/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDirectory implements ports.ReferenceDirectory with plain reads of the
// platform's master data tables.
type GormDirectory struct {
	db *gorm.DB
}

// NewGormDirectory creates a directory backed by the shared database.
func NewGormDirectory(db *gorm.DB) *GormDirectory {
	return &GormDirectory{db: db}
}

// ResolveLocation returns the site behind a location id.
func (d *GormDirectory) ResolveLocation(
	ctx context.Context,
	id kernel.LocationID,
) (ports.LocationInfo, error) {
	if err := id.Validate(); err != nil {
		return ports.LocationInfo{}, err
	}

	var dto LocationDTO
	err := d.db.WithContext(ctx).First(&dto, "id = ?", int64(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.LocationInfo{}, errs.NewObjectNotFoundError("location", int64(id))
		}
		return ports.LocationInfo{}, err
	}

	return ports.LocationInfo{
		ID:         kernel.LocationID(dto.ID),
		CustomerID: kernel.CustomerID(dto.CustomerID),
		Name:       dto.Name,
		Address:    dto.Address,
		Latitude:   dto.Latitude,
		Longitude:  dto.Longitude,
	}, nil
}

// ResolveProduct returns the catalog line behind a product key.
func (d *GormDirectory) ResolveProduct(
	ctx context.Context,
	key kernel.ProductKey,
) (ports.ProductInfo, error) {
	if err := key.Validate(); err != nil {
		return ports.ProductInfo{}, err
	}

	variantID := int64(0)
	if key.VariantID() != nil {
		variantID = int64(*key.VariantID())
	}

	var dto ProductDTO
	err := d.db.WithContext(ctx).
		First(&dto, "product_id = ? AND variant_id = ?", int64(key.ProductID()), variantID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.ProductInfo{}, errs.NewObjectNotFoundError("product", key.String())
		}
		return ports.ProductInfo{}, err
	}

	return ports.ProductInfo{
		Key:     key,
		Name:    dto.Name,
		Barcode: dto.Barcode,
	}, nil
}

// ResolveUser returns the user behind a user id.
func (d *GormDirectory) ResolveUser(
	ctx context.Context,
	id kernel.UserID,
) (ports.UserInfo, error) {
	if err := id.Validate(); err != nil {
		return ports.UserInfo{}, err
	}

	var dto UserDTO
	err := d.db.WithContext(ctx).First(&dto, "id = ?", int64(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.UserInfo{}, errs.NewObjectNotFoundError("user", int64(id))
		}
		return ports.UserInfo{}, err
	}

	return ports.UserInfo{
		ID:   kernel.UserID(dto.ID),
		Name: dto.Name,
	}, nil
}

// ResolveCustomer returns the customer behind a customer id.
func (d *GormDirectory) ResolveCustomer(
	ctx context.Context,
	id kernel.CustomerID,
) (ports.CustomerInfo, error) {
	if err := id.Validate(); err != nil {
		return ports.CustomerInfo{}, err
	}

	var dto CustomerDTO
	err := d.db.WithContext(ctx).First(&dto, "id = ?", int64(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.CustomerInfo{}, errs.NewObjectNotFoundError("customer", int64(id))
		}
		return ports.CustomerInfo{}, err
	}

	return ports.CustomerInfo{
		ID:   kernel.CustomerID(dto.ID),
		Name: dto.Name,
	}, nil
}
