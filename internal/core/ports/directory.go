package ports

import (
	"context"

	"supplyline/internal/core/domain/model/kernel"
)

// LocationInfo is the directory snapshot of a customer site.
type LocationInfo struct {
	ID         kernel.LocationID
	CustomerID kernel.CustomerID
	Name       string
	Address    string
	Latitude   *float64
	Longitude  *float64
}

// ProductInfo is the directory snapshot of a catalog product line.
type ProductInfo struct {
	Key     kernel.ProductKey
	Name    string
	Barcode string
}

// UserInfo is the directory snapshot of a platform user.
type UserInfo struct {
	ID   kernel.UserID
	Name string
}

// CustomerInfo is the directory snapshot of a customer account.
type CustomerInfo struct {
	ID   kernel.CustomerID
	Name string
}

// ReferenceDirectory resolves the reference ids the core carries into the
// master data owned by the surrounding platform. The core never mutates
// these records; a resolution failure means the id points nowhere.
type ReferenceDirectory interface {
	// ResolveLocation returns the site behind a location id.
	ResolveLocation(ctx context.Context, id kernel.LocationID) (LocationInfo, error)

	// ResolveProduct returns the catalog line behind a product key.
	ResolveProduct(ctx context.Context, key kernel.ProductKey) (ProductInfo, error)

	// ResolveUser returns the user behind a user id.
	ResolveUser(ctx context.Context, id kernel.UserID) (UserInfo, error)

	// ResolveCustomer returns the customer behind a customer id.
	ResolveCustomer(ctx context.Context, id kernel.CustomerID) (CustomerInfo, error)
}
