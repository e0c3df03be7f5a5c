package queries

import (
	"context"

	"supplyline/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetStockQueryHandler reads the stock lines of one entity from the database.
//
// Example:
//
//	handler := NewGetStockQueryHandler(db)
//	query, _ := NewGetStockQuery(ledger.StageVan, vanID)
//
//	lines, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to read van stock: %v", err)
//	    return err
//	}
type GetStockQueryHandler struct {
	db *gorm.DB
}

// NewGetStockQueryHandler creates a handler for stock queries.
// Requires a GORM database connection for query execution.
func NewGetStockQueryHandler(db *gorm.DB) GetStockQueryHandler {
	return GetStockQueryHandler{db: db}
}

// Handle executes the query and returns the entity's active stock lines.
// Results are sorted by product and variant for consistent output.
func (h GetStockQueryHandler) Handle(
	ctx context.Context,
	query GetStockQuery,
) ([]GetStockQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	lines := make([]GetStockQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			variant_id,
			quantity
		FROM stock_records
		WHERE stage = ? AND entity_id = ? AND active
		ORDER BY product_id, variant_id
	`, query.Stage(), query.EntityID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var productID, variantID int64
		var quantity int

		err = rows.Scan(
			&productID,
			&variantID,
			&quantity,
		)
		if err != nil {
			return nil, err
		}

		line := GetStockQueryResponse{
			ProductID: kernel.ProductID(productID),
			Quantity:  quantity,
		}
		if variantID != 0 {
			variant := kernel.VariantID(variantID)
			line.VariantID = &variant
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
