package queries

import (
	"context"
	"database/sql"
	"errors"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRouteQueryHandler reads a route with its stops from the database.
type GetRouteQueryHandler struct {
	db *gorm.DB
}

// NewGetRouteQueryHandler creates a handler for route queries.
// Requires a GORM database connection for query execution.
func NewGetRouteQueryHandler(db *gorm.DB) GetRouteQueryHandler {
	return GetRouteQueryHandler{db: db}
}

// Handle executes the query and returns the route header with stops sorted by
// visiting order. OTP codes never leave the database through this query.
func (h GetRouteQueryHandler) Handle(
	ctx context.Context,
	query GetRouteQuery,
) (GetRouteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRouteQueryResponse{}, err
	}

	response, err := h.readHeader(ctx, query)
	if err != nil {
		return GetRouteQueryResponse{}, err
	}

	response.Stops, err = h.readStops(ctx, query)
	if err != nil {
		return GetRouteQueryResponse{}, err
	}

	return response, nil
}

func (h GetRouteQueryHandler) readHeader(
	ctx context.Context,
	query GetRouteQuery,
) (GetRouteQueryResponse, error) {
	var response GetRouteQueryResponse
	var id uuid.UUID
	var driverID, warehouseID int64

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			driver_id,
			warehouse_id,
			delivery_date,
			status
		FROM routes
		WHERE id = ? AND active
	`, query.RouteID().Bytes()).Row()

	err := row.Scan(
		&id,
		&driverID,
		&warehouseID,
		&response.DeliveryDate,
		&response.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetRouteQueryResponse{}, errs.NewObjectNotFoundError("route", query.RouteID().String())
		}
		return GetRouteQueryResponse{}, err
	}

	routeID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return GetRouteQueryResponse{}, idErr
	}
	response.ID = routeID
	response.DriverID = kernel.UserID(driverID)
	response.WarehouseID = kernel.WarehouseID(warehouseID)

	return response, nil
}

func (h GetRouteQueryHandler) readStops(
	ctx context.Context,
	query GetRouteQuery,
) ([]RouteStopResponse, error) {
	stops := make([]RouteStopResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			location_id,
			stop_order,
			customer_id,
			restock_request_id,
			followup_request_id,
			address,
			status,
			completed_at
		FROM route_stops
		WHERE route_id = ? AND active
		ORDER BY stop_order
	`, query.RouteID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var stop RouteStopResponse
		var id uuid.UUID
		var locationID int64
		var customerID sql.NullInt64
		var restockRef, followupRef uuid.NullUUID
		var completedAt sql.NullTime

		err = rows.Scan(
			&id,
			&locationID,
			&stop.StopOrder,
			&customerID,
			&restockRef,
			&followupRef,
			&stop.Address,
			&stop.Status,
			&completedAt,
		)
		if err != nil {
			return nil, err
		}

		stopID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		stop.ID = stopID
		stop.LocationID = kernel.LocationID(locationID)

		if customerID.Valid {
			customer := kernel.CustomerID(customerID.Int64)
			stop.CustomerID = &customer
		}
		if restockRef.Valid {
			ref, refErr := kernel.UUIDFromBytes(restockRef.UUID[:])
			if refErr != nil {
				return nil, refErr
			}
			stop.RestockRequestID = &ref
		}
		if followupRef.Valid {
			ref, refErr := kernel.UUIDFromBytes(followupRef.UUID[:])
			if refErr != nil {
				return nil, refErr
			}
			stop.FollowupRequestID = &ref
		}
		if completedAt.Valid {
			completed := completedAt.Time
			stop.CompletedAt = &completed
		}

		stops = append(stops, stop)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stops, nil
}
