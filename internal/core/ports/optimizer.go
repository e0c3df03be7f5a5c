package ports

import (
	"context"
	"time"

	"supplyline/internal/core/domain/model/kernel"
)

// OptimizeWaypoint is one stop submitted for route optimization.
type OptimizeWaypoint struct {
	StopID    kernel.UUID
	Latitude  float64
	Longitude float64
}

// OptimizeRequest asks the external optimizer for a visit order over the
// given waypoints.
type OptimizeRequest struct {
	RouteID   kernel.UUID
	Vehicle   string
	StartTime time.Time
	Waypoints []OptimizeWaypoint
}

// OptimizeResponse carries the suggested visit order. Sequence lists stop
// ids in visit order; Skipped lists waypoints the optimizer could not place.
type OptimizeResponse struct {
	Sequence []kernel.UUID
	Skipped  []kernel.UUID
}

// RouteOptimizer is the gateway to the external route optimization service.
// The optimizer only suggests an ordering; applying it goes through the
// route aggregate, which enforces the permutation rules. Retry policy lives
// entirely inside the adapter.
type RouteOptimizer interface {
	// Optimize submits the waypoints and returns the suggested visit order.
	// Sequence and Skipped together must cover exactly the submitted stops.
	Optimize(ctx context.Context, req OptimizeRequest) (OptimizeResponse, error)
}
