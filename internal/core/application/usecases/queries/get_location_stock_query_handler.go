package queries

import (
	"context"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/ledger"

	"gorm.io/gorm"
)

// GetLocationStockQueryHandler reads a location's catalogued and unlisted
// stock from the database.
type GetLocationStockQueryHandler struct {
	db *gorm.DB
}

// NewGetLocationStockQueryHandler creates a handler for location stock queries.
// Requires a GORM database connection for query execution.
func NewGetLocationStockQueryHandler(db *gorm.DB) GetLocationStockQueryHandler {
	return GetLocationStockQueryHandler{db: db}
}

// Handle executes the query and returns the location's full inventory.
func (h GetLocationStockQueryHandler) Handle(
	ctx context.Context,
	query GetLocationStockQuery,
) (GetLocationStockQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLocationStockQueryResponse{}, err
	}

	response := GetLocationStockQueryResponse{
		Lines:    make([]GetStockQueryResponse, 0),
		Unlisted: make([]UnlistedStockResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			variant_id,
			quantity
		FROM stock_records
		WHERE stage = ? AND entity_id = ? AND active
		ORDER BY product_id, variant_id
	`, ledger.StageLocation, query.LocationID()).Rows()
	if err != nil {
		return GetLocationStockQueryResponse{}, err
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
			return GetLocationStockQueryResponse{}, err
		}

		line := GetStockQueryResponse{
			ProductID: kernel.ProductID(productID),
			Quantity:  quantity,
		}
		if variantID != 0 {
			variant := kernel.VariantID(variantID)
			line.VariantID = &variant
		}
		response.Lines = append(response.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return GetLocationStockQueryResponse{}, err
	}

	unlistedRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			barcode,
			quantity
		FROM unlisted_stock
		WHERE location_id = ?
		ORDER BY barcode
	`, query.LocationID()).Rows()
	if err != nil {
		return GetLocationStockQueryResponse{}, err
	}
	defer unlistedRows.Close()

	for unlistedRows.Next() {
		var unlisted UnlistedStockResponse

		err = unlistedRows.Scan(
			&unlisted.Barcode,
			&unlisted.Quantity,
		)
		if err != nil {
			return GetLocationStockQueryResponse{}, err
		}

		response.Unlisted = append(response.Unlisted, unlisted)
	}

	if err = unlistedRows.Err(); err != nil {
		return GetLocationStockQueryResponse{}, err
	}

	return response, nil
}
