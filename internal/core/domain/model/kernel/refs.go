package kernel

import (
	"fmt"

	"supplyline/internal/pkg/errs"
)

// Reference identifiers for entities owned by the surrounding platform.
// The core consumes these by numeric key through the reference directory
// and never manages their lifecycle. Distinct types keep a warehouse id
// from being passed where a van id is expected.
type (
	// WarehouseID identifies a source warehouse.
	WarehouseID int64

	// VanID identifies a delivery van.
	VanID int64

	// LocationID identifies a customer site that receives stock.
	LocationID int64

	// CustomerID identifies the customer owning one or more locations.
	CustomerID int64

	// ProductID identifies a catalog product.
	ProductID int64

	// VariantID identifies a product variant. Optional on most records.
	VariantID int64

	// UserID identifies a platform user (driver, operator).
	UserID int64
)

// Validate reports whether the id is a usable reference key.
func (id WarehouseID) Validate() error { return validateRef("warehouseID", int64(id)) }

// Validate reports whether the id is a usable reference key.
func (id VanID) Validate() error { return validateRef("vanID", int64(id)) }

// Validate reports whether the id is a usable reference key.
func (id LocationID) Validate() error { return validateRef("locationID", int64(id)) }

// Validate reports whether the id is a usable reference key.
func (id CustomerID) Validate() error { return validateRef("customerID", int64(id)) }

// Validate reports whether the id is a usable reference key.
func (id ProductID) Validate() error { return validateRef("productID", int64(id)) }

// Validate reports whether the id is a usable reference key.
func (id VariantID) Validate() error { return validateRef("variantID", int64(id)) }

// Validate reports whether the id is a usable reference key.
func (id UserID) Validate() error { return validateRef("userID", int64(id)) }

func validateRef(name string, v int64) error {
	if v <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is not a positive reference key", v))
	}
	return nil
}

// ErrProductKeyIsNotConstructed indicates a ProductKey was not created via
// NewProductKey.
var ErrProductKeyIsNotConstructed = errs.NewValueIsRequiredError(
	"product key must be created via NewProductKey")

// ProductKey is a value object identifying a product line in any ledger
// stage: a product id plus an optional variant id. Two records with the same
// product but different variants are distinct stock lines.
//
// Example:
//
//	key, err := kernel.NewProductKey(341, kernel.VariantRef(12))
//	if err != nil {
//	    // handle validation error
//	}
type ProductKey struct {
	productID ProductID
	variantID *VariantID
}

// NewProductKey creates a validated ProductKey.
// The variant is optional; pass nil for products without variants.
func NewProductKey(productID ProductID, variantID *VariantID) (ProductKey, error) {
	if err := productID.Validate(); err != nil {
		return ProductKey{}, err
	}
	if variantID != nil {
		if err := variantID.Validate(); err != nil {
			return ProductKey{}, err
		}
	}

	return ProductKey{productID: productID, variantID: variantID}, nil
}

// VariantRef is a convenience helper returning a pointer to the given
// variant id, for use with NewProductKey.
func VariantRef(id VariantID) *VariantID {
	return &id
}

// ProductID returns the product component of the key.
func (k ProductKey) ProductID() ProductID {
	return k.productID
}

// VariantID returns the variant component of the key, nil when the product
// has no variant.
func (k ProductKey) VariantID() *VariantID {
	return k.variantID
}

// IsEqual reports whether two keys address the same stock line.
func (k ProductKey) IsEqual(other ProductKey) bool {
	if k.productID != other.productID {
		return false
	}
	if k.variantID == nil || other.variantID == nil {
		return k.variantID == nil && other.variantID == nil
	}
	return *k.variantID == *other.variantID
}

// String renders the key as "product" or "product/variant" for logs and
// error messages.
func (k ProductKey) String() string {
	if k.variantID == nil {
		return fmt.Sprintf("%d", k.productID)
	}
	return fmt.Sprintf("%d/%d", k.productID, *k.variantID)
}

// Validate checks the key was built through NewProductKey.
func (k ProductKey) Validate() error {
	if k.productID == 0 {
		return ErrProductKeyIsNotConstructed
	}
	return nil
}
