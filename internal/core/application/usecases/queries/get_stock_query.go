// Package queries contains read operations over the persistence model.
// Implements the query side of the CQRS architecture: handlers read with raw
// SQL and return flat response structs, bypassing the domain aggregates.
package queries

import (
	"errors"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/ledger"
	"supplyline/internal/pkg/guard"
)

var ErrGetStockQueryIsNotConstructed = errors.New(
	"GetStockQuery must be created via NewGetStockQuery constructor",
)

// GetStockQuery retrieves the active stock lines held by one warehouse, van,
// or location.
//
// Example:
//
//	query, err := NewGetStockQuery(ledger.StageWarehouse, 1)
//	if err != nil {
//	    return fmt.Errorf("invalid stock query: %w", err)
//	}
//
//	lines, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to read stock: %w", err)
//	}
//
//	for _, line := range lines {
//	    fmt.Printf("product %d: %d on hand\n", line.ProductID, line.Quantity)
//	}
type GetStockQuery struct { //nolint:recvcheck //using for validation
	stage    ledger.Stage
	entityID int64

	guard guard.ConstructorGuard
}

// NewGetStockQuery creates a query for one entity's stock lines.
func NewGetStockQuery(stage ledger.Stage, entityID int64) (GetStockQuery, error) {
	if err := stage.Validate(); err != nil {
		return GetStockQuery{}, err
	}

	if entityID <= 0 {
		return GetStockQuery{}, errors.New("entityID must be positive")
	}

	return GetStockQuery{
		stage:    stage,
		entityID: entityID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStockQuery) Validate() error {
	return q.guard.Validate(ErrGetStockQueryIsNotConstructed)
}

// Stage returns the chain tier being read.
func (q GetStockQuery) Stage() ledger.Stage {
	return q.stage
}

// EntityID returns the warehouse, van, or location being read.
func (q GetStockQuery) EntityID() int64 {
	return q.entityID
}

// GetStockQueryResponse represents one stock line of the queried entity.
type GetStockQueryResponse struct {
	ProductID kernel.ProductID
	VariantID *kernel.VariantID
	Quantity  int
}
