package ports

import (
	"context"
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for route aggregates.
// Routes are stored with their stops; the aggregate is always loaded and
// saved as a whole so ordering stays consistent.
type RouteRepository interface {
	// Add persists a new route aggregate with all of its stops.
	Add(ctx context.Context, aggregate *route.Route) error

	// Update persists changes to an existing route and its stops.
	Update(ctx context.Context, aggregate *route.Route) error

	// Get retrieves a route aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// GetAllDraftForDate retrieves every Draft route planned for the given
	// delivery day. Used by the optimization job to pick up routes that still
	// need stop ordering.
	GetAllDraftForDate(ctx context.Context, date time.Time) ([]*route.Route, error)

	// GetAllInProgress retrieves every route currently being driven. Used by
	// the completion sweep to close routes whose stops are all terminal.
	GetAllInProgress(ctx context.Context) ([]*route.Route, error)
}
