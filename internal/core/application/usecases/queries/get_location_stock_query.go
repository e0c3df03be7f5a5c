package queries

import (
	"errors"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/pkg/guard"
)

var ErrGetLocationStockQueryIsNotConstructed = errors.New(
	"GetLocationStockQuery must be created via NewGetLocationStockQuery constructor",
)

// GetLocationStockQuery retrieves everything on hand at a customer location.
// Covers both catalogued stock lines and unlisted items recorded by barcode,
// so the response reflects what a site audit would actually find.
//
// Example:
//
//	query, err := NewGetLocationStockQuery(locationID)
//	if err != nil {
//	    return err
//	}
//
//	stock, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to read location stock: %w", err)
//	}
type GetLocationStockQuery struct { //nolint:recvcheck //using for validation
	locationID kernel.LocationID

	guard guard.ConstructorGuard
}

// NewGetLocationStockQuery creates a query for one location's full inventory.
func NewGetLocationStockQuery(locationID kernel.LocationID) (GetLocationStockQuery, error) {
	if err := locationID.Validate(); err != nil {
		return GetLocationStockQuery{}, err
	}

	return GetLocationStockQuery{
		locationID: locationID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLocationStockQuery) Validate() error {
	return q.guard.Validate(ErrGetLocationStockQueryIsNotConstructed)
}

// LocationID returns the customer location being read.
func (q GetLocationStockQuery) LocationID() kernel.LocationID {
	return q.locationID
}

// GetLocationStockQueryResponse aggregates the two kinds of inventory held at
// a location.
type GetLocationStockQueryResponse struct {
	Lines    []GetStockQueryResponse
	Unlisted []UnlistedStockResponse
}

// UnlistedStockResponse represents uncatalogued stock recorded at a location.
type UnlistedStockResponse struct {
	Barcode  string
	Quantity int
}
