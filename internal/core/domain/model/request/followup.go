package request

import (
	"errors"
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/pkg/guard"
)

// ErrFollowupRequestIsNotConstructed is returned when a FollowupRequest
// instance was not created through its constructors.
var ErrFollowupRequestIsNotConstructed = errors.New(
	"FollowupRequest must be created via NewFollowupRequest or RestoreFollowupRequest")

// FollowupRequest is an address-only ask: a location wants a visit without
// any stock lines (complaints, inspections, equipment checks). It shares the
// lifecycle of RestockRequest but carries no items, so completing its stop
// moves no inventory.
type FollowupRequest struct {
	id          kernel.UUID
	customerID  kernel.CustomerID
	locationID  kernel.LocationID
	status      Status
	requestDate time.Time

	attachedStopID *kernel.UUID
	active         bool

	guard guard.ConstructorGuard
}

// NewFollowupRequest creates a Pending followup request.
func NewFollowupRequest(
	id kernel.UUID,
	customerID kernel.CustomerID,
	locationID kernel.LocationID,
	requestDate time.Time,
) (*FollowupRequest, error) {
	if err := errors.Join(id.Validate(), customerID.Validate(), locationID.Validate()); err != nil {
		return nil, err
	}

	return &FollowupRequest{
		id:          id,
		customerID:  customerID,
		locationID:  locationID,
		status:      StatusPending,
		requestDate: requestDate,
		active:      true,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreFollowupRequest reconstructs a followup request from persistence.
func RestoreFollowupRequest(
	id kernel.UUID,
	customerID kernel.CustomerID,
	locationID kernel.LocationID,
	status Status,
	requestDate time.Time,
	attachedStopID *kernel.UUID,
	active bool,
) (*FollowupRequest, error) {
	f, err := NewFollowupRequest(id, customerID, locationID, requestDate)
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

	f.status = status
	f.attachedStopID = attachedStopID
	f.active = active
	return f, nil
}

// IsEqual compares two requests by their unique identifiers.
func (f *FollowupRequest) IsEqual(other *FollowupRequest) bool {
	return other != nil && f.id.IsEqual(other.id)
}

// ID returns the request's unique identifier.
func (f *FollowupRequest) ID() kernel.UUID { return f.id }

// CustomerID returns the customer who raised the request.
func (f *FollowupRequest) CustomerID() kernel.CustomerID { return f.customerID }

// LocationID returns the location asking for the visit.
func (f *FollowupRequest) LocationID() kernel.LocationID { return f.locationID }

// Status returns the current lifecycle state.
func (f *FollowupRequest) Status() Status { return f.status }

// RequestDate returns the day the request was raised.
func (f *FollowupRequest) RequestDate() time.Time { return f.requestDate }

// AttachedStopID returns the stop currently holding the request, nil when
// unattached.
func (f *FollowupRequest) AttachedStopID() *kernel.UUID { return f.attachedStopID }

// IsActive reports the soft-delete state.
func (f *FollowupRequest) IsActive() bool { return f.active }

// AttachToStop links the request to a route stop and moves it InRoute.
// Same attachment rules as RestockRequest.AttachToStop.
func (f *FollowupRequest) AttachToStop(stopID kernel.UUID) error {
	if err := f.Validate(); err != nil {
		return err
	}

	if err := stopID.Validate(); err != nil {
		return err
	}

	if f.attachedStopID != nil && !f.attachedStopID.IsEqual(stopID) {
		return NewDuplicateAttachmentError(f.id, *f.attachedStopID)
	}

	newStatus, err := f.status.Attach()
	if err != nil {
		return err
	}

	f.status = newStatus
	f.attachedStopID = &stopID
	return nil
}

// MarkFulfilled completes the request when its stop is delivered.
func (f *FollowupRequest) MarkFulfilled() error {
	if err := f.Validate(); err != nil {
		return err
	}

	newStatus, err := f.status.Fulfill()
	if err != nil {
		return err
	}

	f.status = newStatus
	return nil
}

// Cancel withdraws the request from any non-terminal state.
func (f *FollowupRequest) Cancel() error {
	if err := f.Validate(); err != nil {
		return err
	}

	newStatus, err := f.status.Cancel()
	if err != nil {
		return err
	}

	f.status = newStatus
	return nil
}

// Validate ensures the FollowupRequest instance was properly constructed.
func (f *FollowupRequest) Validate() error {
	if f == nil {
		return ErrFollowupRequestIsNotConstructed
	}
	return f.guard.Validate(ErrFollowupRequestIsNotConstructed)
}
