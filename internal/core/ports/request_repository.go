package ports

import (
	"context"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/request"
)

// RequestRepository defines the persistence contract for restock and followup
// request aggregates. Restock requests are stored with their item lines.
type RequestRepository interface {
	// AddRestock persists a new restock request with its items.
	AddRestock(ctx context.Context, aggregate *request.RestockRequest) error

	// UpdateRestock persists changes to an existing restock request.
	UpdateRestock(ctx context.Context, aggregate *request.RestockRequest) error

	// GetRestock retrieves a restock request by its unique identifier.
	GetRestock(ctx context.Context, id kernel.UUID) (*request.RestockRequest, error)

	// GetAllPendingRestock retrieves every restock request still awaiting
	// attachment to a stop.
	GetAllPendingRestock(ctx context.Context) ([]*request.RestockRequest, error)

	// AddFollowup persists a new followup request.
	AddFollowup(ctx context.Context, aggregate *request.FollowupRequest) error

	// UpdateFollowup persists changes to an existing followup request.
	UpdateFollowup(ctx context.Context, aggregate *request.FollowupRequest) error

	// GetFollowup retrieves a followup request by its unique identifier.
	GetFollowup(ctx context.Context, id kernel.UUID) (*request.FollowupRequest, error)

	// GetAllPendingFollowup retrieves every followup request still awaiting
	// attachment to a stop.
	GetAllPendingFollowup(ctx context.Context) ([]*request.FollowupRequest, error)
}
