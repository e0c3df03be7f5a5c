package queries

import (
	"errors"
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/route"
	"supplyline/internal/pkg/guard"
)

var ErrGetRouteQueryIsNotConstructed = errors.New(
	"GetRouteQuery must be created via NewGetRouteQuery constructor",
)

// GetRouteQuery retrieves one route with its stops in visiting order.
//
// Example:
//
//	query, err := NewGetRouteQuery(routeID)
//	if err != nil {
//	    return err
//	}
//
//	routeView, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to read route: %w", err)
//	}
//
//	for _, stop := range routeView.Stops {
//	    fmt.Printf("%d. %s\n", stop.StopOrder, stop.Address)
//	}
type GetRouteQuery struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRouteQuery creates a query for one route.
func NewGetRouteQuery(routeID kernel.UUID) (GetRouteQuery, error) {
	if err := routeID.Validate(); err != nil {
		return GetRouteQuery{}, err
	}

	return GetRouteQuery{
		routeID: routeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRouteQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteQueryIsNotConstructed)
}

// RouteID returns the route being read.
func (q GetRouteQuery) RouteID() kernel.UUID {
	return q.routeID
}

// GetRouteQueryResponse represents a route header with its ordered stops.
type GetRouteQueryResponse struct {
	ID           kernel.UUID
	DriverID     kernel.UserID
	WarehouseID  kernel.WarehouseID
	DeliveryDate time.Time
	Status       route.Status
	Stops        []RouteStopResponse
}

// RouteStopResponse represents one stop of a route.
type RouteStopResponse struct {
	ID                kernel.UUID
	LocationID        kernel.LocationID
	StopOrder         int
	CustomerID        *kernel.CustomerID
	RestockRequestID  *kernel.UUID
	FollowupRequestID *kernel.UUID
	Address           string
	Status            route.StopStatus
	CompletedAt       *time.Time
}
