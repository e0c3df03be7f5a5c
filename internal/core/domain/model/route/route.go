package route

import (
	"errors"
	"fmt"
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/pkg/errs"
	"supplyline/internal/pkg/guard"
)

// ErrRouteIsNotConstructed is returned when a Route instance was not created
// through NewRoute or RestoreRoute.
var ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute or RestoreRoute")

// Route is the aggregate root for one driver's delivery day: one driver,
// one day, one starting warehouse, and an ordered list of stops. The route
// exclusively owns its stops.
//
// Route follows these invariants:
//   - Active stop orders always form a permutation of 1..N
//   - Status transitions follow Draft -> Scheduled -> InProgress ->
//     Completed, with Cancelled reachable from any non-terminal state
//   - The route is Completed only when every active stop is terminal
//   - A route with zero stops is valid but inert
type Route struct {
	// id is the unique identifier for the route
	id kernel.UUID

	// driverID is the user driving the route
	driverID kernel.UserID

	// warehouseID is the starting point where the van is loaded
	warehouseID kernel.WarehouseID

	// deliveryDate is the day the route runs
	deliveryDate time.Time

	// status is the current lifecycle state
	status Status

	// stops are the scheduled visits, exclusively owned
	stops []*Stop

	// active is the soft-delete flag
	active bool

	guard guard.ConstructorGuard
}

// NewRoute creates a Draft route owning the given stops.
//
// The stop orders must form a permutation of 1..N; fails with
// OrderingConflictError otherwise. An empty stop list is valid.
func NewRoute(
	id kernel.UUID,
	driverID kernel.UserID,
	warehouseID kernel.WarehouseID,
	deliveryDate time.Time,
	stops []*Stop,
) (*Route, error) {
	r := &Route{
		status: StatusDraft,
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setDriverID(driverID),
		r.setWarehouseID(warehouseID),
		r.setStops(stops),
	); err != nil {
		return nil, err
	}

	r.deliveryDate = deliveryDate
	return r, nil
}

// RestoreRoute reconstructs a route from persistence with its current
// status, stops, and soft-delete flag.
func RestoreRoute(
	id kernel.UUID,
	driverID kernel.UserID,
	warehouseID kernel.WarehouseID,
	deliveryDate time.Time,
	status Status,
	stops []*Stop,
	active bool,
) (*Route, error) {
	r, err := NewRoute(id, driverID, warehouseID, deliveryDate, stops)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	r.status = status
	r.active = active
	return r, nil
}

// IsEqual compares two routes by their unique identifiers.
func (r *Route) IsEqual(other *Route) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the route's unique identifier.
func (r *Route) ID() kernel.UUID { return r.id }

// DriverID returns the assigned driver.
func (r *Route) DriverID() kernel.UserID { return r.driverID }

// WarehouseID returns the starting warehouse.
func (r *Route) WarehouseID() kernel.WarehouseID { return r.warehouseID }

// DeliveryDate returns the day the route runs.
func (r *Route) DeliveryDate() time.Time { return r.deliveryDate }

// Status returns the current lifecycle state.
func (r *Route) Status() Status { return r.status }

// Stops returns the owned stops. The slice order is storage order; use
// StopOrder for the visit sequence.
func (r *Route) Stops() []*Stop { return r.stops }

// IsActive reports the soft-delete state.
func (r *Route) IsActive() bool { return r.active }

// FindStop returns the owned stop with the given id.
// Fails with an ObjectNotFoundError if the route does not own it.
func (r *Route) FindStop(stopID kernel.UUID) (*Stop, error) {
	for _, s := range r.stops {
		if s.ID().IsEqual(stopID) {
			return s, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("stopID", stopID.String())
}

// Schedule finalizes the stop sequence and moves the route Draft -> Scheduled.
func (r *Route) Schedule() error {
	if err := r.Validate(); err != nil {
		return err
	}

	newStatus, err := r.status.Schedule()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Reorder replaces every active stop's position atomically. The mapping must
// cover each active stop exactly once and the new positions must form a
// permutation of 1..N; the route keeps its prior order on any failure.
//
// Used to apply the sequence returned by the external optimizer. Stop
// identities are preserved, only positions change.
func (r *Route) Reorder(newOrder map[kernel.UUID]int) error {
	if err := r.Validate(); err != nil {
		return err
	}

	if r.status.IsTerminal() {
		return NewInvalidTransitionError(r.status, r.status)
	}

	activeStops := r.activeStops()
	if len(newOrder) != len(activeStops) {
		return errs.NewValueIsInvalidErrorWithCause(
			"newOrder is invalid",
			fmt.Errorf("mapping covers %d stops, route has %d active stops", len(newOrder), len(activeStops)),
		)
	}

	orders := make([]int, 0, len(activeStops))
	for _, s := range activeStops {
		order, ok := newOrder[s.ID()]
		if !ok {
			return errs.NewObjectNotFoundError("stopID", s.ID().String())
		}
		orders = append(orders, order)
	}

	if err := validateOrderPermutation(orders); err != nil {
		return err
	}

	for _, s := range activeStops {
		s.reorder(newOrder[s.ID()])
	}
	return nil
}

// AdvanceStop applies one transition to an owned stop.
//
// The route must be Scheduled or InProgress; the first departure moves a
// Scheduled route to InProgress. The otpCode is consulted only for the
// Delivered transition.
func (r *Route) AdvanceStop(stopID kernel.UUID, target StopStatus, otpCode string, now time.Time) error {
	if err := r.Validate(); err != nil {
		return err
	}

	if r.status != StatusScheduled && r.status != StatusInProgress {
		return NewInvalidTransitionError(r.status, target)
	}

	stop, err := r.FindStop(stopID)
	if err != nil {
		return err
	}

	switch target {
	case StopEnRoute:
		err = stop.Depart()
	case StopArrived:
		err = stop.Arrive()
	case StopDelivered:
		err = stop.Deliver(otpCode, now)
	case StopFailed:
		err = stop.Fail()
	default:
		err = errs.NewValueIsInvalidErrorWithCause(
			"target status is invalid",
			fmt.Errorf("%s is not an advanceable stop status", target),
		)
	}
	if err != nil {
		return err
	}

	if r.status == StatusScheduled {
		newStatus, startErr := r.status.Start()
		if startErr != nil {
			return startErr
		}
		r.status = newStatus
	}
	return nil
}

// AttachRequestToStop links a fulfillment request to an owned stop. The
// references are mutually exclusive; the stop must still be Draft and not
// already linked.
func (r *Route) AttachRequestToStop(stopID kernel.UUID, restockRequestID, followupRequestID *kernel.UUID) error {
	if err := r.Validate(); err != nil {
		return err
	}

	if r.status.IsTerminal() {
		return NewInvalidTransitionError(r.status, r.status)
	}

	stop, err := r.FindStop(stopID)
	if err != nil {
		return err
	}

	return stop.attachRequest(restockRequestID, followupRequestID)
}

// AllStopsTerminal reports whether every active stop is Delivered or Failed.
// Vacuously true for a route with no active stops.
func (r *Route) AllStopsTerminal() bool {
	for _, s := range r.activeStops() {
		if !s.Status().IsTerminal() {
			return false
		}
	}
	return true
}

// Complete marks the route Completed once every active stop is terminal.
// Idempotent when called again on an already completed route.
func (r *Route) Complete() error {
	if err := r.Validate(); err != nil {
		return err
	}

	if !r.AllStopsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"route is not completable",
			fmt.Errorf("route %s still has non-terminal stops", r.id),
		)
	}

	if r.status == StatusCompleted {
		return nil
	}

	newStatus, err := r.status.Complete()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Cancel abandons the route from any non-terminal state. This is a status
// change only; stock movements already committed are not reversed.
func (r *Route) Cancel() error {
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

// Validate ensures the Route instance was properly constructed.
func (r *Route) Validate() error {
	if r == nil {
		return ErrRouteIsNotConstructed
	}
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

func (r *Route) activeStops() []*Stop {
	active := make([]*Stop, 0, len(r.stops))
	for _, s := range r.stops {
		if s.IsActive() {
			active = append(active, s)
		}
	}
	return active
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setDriverID(driverID kernel.UserID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	r.driverID = driverID
	return nil
}

func (r *Route) setWarehouseID(warehouseID kernel.WarehouseID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}
	r.warehouseID = warehouseID
	return nil
}

func (r *Route) setStops(stops []*Stop) error {
	orders := make([]int, 0, len(stops))
	for _, s := range stops {
		if err := s.Validate(); err != nil {
			return err
		}
		if s.IsActive() {
			orders = append(orders, s.StopOrder())
		}
	}

	if err := validateOrderPermutation(orders); err != nil {
		return err
	}

	r.stops = stops
	return nil
}

// validateOrderPermutation checks that orders form a permutation of 1..N.
func validateOrderPermutation(orders []int) error {
	seen := make(map[int]bool, len(orders))
	for _, order := range orders {
		if order < 1 || order > len(orders) || seen[order] {
			return NewOrderingConflictError(orders)
		}
		seen[order] = true
	}
	return nil
}
