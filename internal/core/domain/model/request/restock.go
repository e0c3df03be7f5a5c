package request

import (
	"errors"
	"fmt"
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/pkg/errs"
	"supplyline/internal/pkg/guard"
)

var (
	// ErrRestockRequestIsNotConstructed is returned when a RestockRequest
	// instance was not created through its constructors.
	ErrRestockRequestIsNotConstructed = errors.New(
		"RestockRequest must be created via NewRestockRequest or RestoreRestockRequest")

	// ErrRequestHasNoItems indicates an attempt to create a restock request
	// with an empty item list.
	ErrRequestHasNoItems = errors.New("restock request requires at least one item")
)

// RequestItem is one product line asked for by a location.
// It is an immutable value object within the request aggregate.
type RequestItem struct {
	productKey kernel.ProductKey
	quantity   int

	guard guard.ConstructorGuard
}

// NewRequestItem creates a validated request line. Quantity must be positive.
func NewRequestItem(key kernel.ProductKey, quantity int) (RequestItem, error) {
	if err := key.Validate(); err != nil {
		return RequestItem{}, err
	}

	if quantity <= 0 {
		return RequestItem{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return RequestItem{productKey: key, quantity: quantity, guard: guard.NewConstructorGuard()}, nil
}

// ProductKey returns the requested product line.
func (i RequestItem) ProductKey() kernel.ProductKey { return i.productKey }

// Quantity returns the requested amount.
func (i RequestItem) Quantity() int { return i.quantity }

// Validate ensures the item was created via NewRequestItem.
func (i RequestItem) Validate() error {
	return i.guard.Validate(errs.NewValueIsRequiredError("request item must be created via NewRequestItem"))
}

// RestockRequest is an itemized ask from a location: which product lines a
// route stop should bring. A route stop consumes the request to know what to
// deliver; completing the stop fulfills it.
//
// RestockRequest follows these invariants:
//   - At least one item
//   - Attachable to at most one active stop at a time
//     (DuplicateAttachmentError otherwise)
//   - Status transitions follow Pending -> InRoute -> Fulfilled, with
//     Cancelled reachable from any non-terminal state
type RestockRequest struct {
	id          kernel.UUID
	customerID  kernel.CustomerID
	locationID  kernel.LocationID
	status      Status
	requestDate time.Time
	items       []RequestItem

	// attachedStopID is the stop currently holding the request, nil when
	// unattached
	attachedStopID *kernel.UUID

	// active is the soft-delete flag
	active bool

	guard guard.ConstructorGuard
}

// NewRestockRequest creates a Pending restock request with the given items.
func NewRestockRequest(
	id kernel.UUID,
	customerID kernel.CustomerID,
	locationID kernel.LocationID,
	requestDate time.Time,
	items []RequestItem,
) (*RestockRequest, error) {
	if err := errors.Join(id.Validate(), customerID.Validate(), locationID.Validate()); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, ErrRequestHasNoItems
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &RestockRequest{
		id:          id,
		customerID:  customerID,
		locationID:  locationID,
		status:      StatusPending,
		requestDate: requestDate,
		items:       items,
		active:      true,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreRestockRequest reconstructs a restock request from persistence.
func RestoreRestockRequest(
	id kernel.UUID,
	customerID kernel.CustomerID,
	locationID kernel.LocationID,
	status Status,
	requestDate time.Time,
	items []RequestItem,
	attachedStopID *kernel.UUID,
	active bool,
) (*RestockRequest, error) {
	r, err := NewRestockRequest(id, customerID, locationID, requestDate, items)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if attachedStopID != nil {
		if err = attachedStopID.Validate(); err != nil {
			return nil, err
		}
	}

	r.status = status
	r.attachedStopID = attachedStopID
	r.active = active
	return r, nil
}

// IsEqual compares two requests by their unique identifiers.
func (r *RestockRequest) IsEqual(other *RestockRequest) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the request's unique identifier.
func (r *RestockRequest) ID() kernel.UUID { return r.id }

// CustomerID returns the customer who raised the request.
func (r *RestockRequest) CustomerID() kernel.CustomerID { return r.customerID }

// LocationID returns the location asking for stock.
func (r *RestockRequest) LocationID() kernel.LocationID { return r.locationID }

// Status returns the current lifecycle state.
func (r *RestockRequest) Status() Status { return r.status }

// RequestDate returns the day the request was raised.
func (r *RestockRequest) RequestDate() time.Time { return r.requestDate }

// Items returns the requested product lines.
func (r *RestockRequest) Items() []RequestItem { return r.items }

// AttachedStopID returns the stop currently holding the request, nil when
// unattached.
func (r *RestockRequest) AttachedStopID() *kernel.UUID { return r.attachedStopID }

// IsActive reports the soft-delete state.
func (r *RestockRequest) IsActive() bool { return r.active }

// AttachToStop links the request to a route stop and moves it InRoute.
//
// Fails with DuplicateAttachmentError if another active stop already holds
// the request, or with a status error if the request is not Pending.
func (r *RestockRequest) AttachToStop(stopID kernel.UUID) error {
	if err := r.Validate(); err != nil {
		return err
	}

	if err := stopID.Validate(); err != nil {
		return err
	}

	if r.attachedStopID != nil && !r.attachedStopID.IsEqual(stopID) {
		return NewDuplicateAttachmentError(r.id, *r.attachedStopID)
	}

	newStatus, err := r.status.Attach()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.attachedStopID = &stopID
	return nil
}

// MarkFulfilled completes the request. Invoked only by the stop-completion
// transition after stock has moved into the location.
func (r *RestockRequest) MarkFulfilled() error {
	if err := r.Validate(); err != nil {
		return err
	}

	newStatus, err := r.status.Fulfill()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Cancel withdraws the request from any non-terminal state.
func (r *RestockRequest) Cancel() error {
	if err := r.Validate(); err != nil {
		return err
	}

	newStatus, err := r.status.Cancel()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Validate ensures the RestockRequest instance was properly constructed.
func (r *RestockRequest) Validate() error {
	if r == nil {
		return ErrRestockRequestIsNotConstructed
	}
	return r.guard.Validate(ErrRestockRequestIsNotConstructed)
}
