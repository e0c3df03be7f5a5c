package route

import (
	"errors"
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/pkg/errs"
	"supplyline/internal/pkg/guard"
)

var (
	// ErrStopIsNotConstructed indicates a Stop was not created through
	// NewStop or RestoreStop.
	ErrStopIsNotConstructed = errors.New("Stop must be created via NewStop or RestoreStop")

	// ErrStopHasTwoRequests indicates a stop was given both a restock and a
	// followup request; at most one may be set.
	ErrStopHasTwoRequests = errors.New("stop may reference a restock request or a followup request, not both")

	// ErrStopAlreadyLinked indicates an attempt to attach a request to a
	// stop that already references one.
	ErrStopAlreadyLinked = errors.New("stop already references a fulfillment request")
)

// GeoPoint is an optional latitude/longitude pair for optimizer input.
type GeoPoint struct {
	Lat  float64
	Long float64
}

// Stop is a single scheduled visit within a route. It is an entity
// exclusively owned by its Route aggregate.
//
// Stop follows these invariants:
//   - stopOrder is unique within the route (enforced by the aggregate)
//   - references at most one fulfillment request (restock XOR followup)
//   - the Delivered transition requires the issued OTP to match and stamps
//     completedAt
type Stop struct {
	// id uniquely identifies the stop
	id kernel.UUID

	// locationID is the site being visited
	locationID kernel.LocationID

	// stopOrder is the 1-based position within the route
	stopOrder int

	// customerID optionally names the customer for display
	customerID *kernel.CustomerID

	// restockRequestID links the stock ask this stop fulfills, if any
	restockRequestID *kernel.UUID

	// followupRequestID links the visit ask this stop addresses, if any
	followupRequestID *kernel.UUID

	// address is the display address snapshot taken at planning time
	address string

	// geo optionally carries coordinates for the optimizer
	geo *GeoPoint

	// status is the current lifecycle state
	status StopStatus

	// deliveryOTP is issued on arrival, nil before
	deliveryOTP *DeliveryOTP

	// completedAt is stamped on the Delivered transition
	completedAt *time.Time

	// active is the soft-delete flag
	active bool

	guard guard.ConstructorGuard
}

// NewStop creates a Draft stop.
// The request references are optional but mutually exclusive.
func NewStop(
	id kernel.UUID,
	locationID kernel.LocationID,
	stopOrder int,
	customerID *kernel.CustomerID,
	restockRequestID *kernel.UUID,
	followupRequestID *kernel.UUID,
	address string,
	geo *GeoPoint,
) (*Stop, error) {
	s := &Stop{
		status: StopDraft,
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setLocationID(locationID),
		s.setStopOrder(stopOrder),
		s.setCustomerID(customerID),
		s.setRequestRefs(restockRequestID, followupRequestID),
		s.setAddress(address),
	); err != nil {
		return nil, err
	}

	s.geo = geo
	return s, nil
}

// RestoreStop reconstructs a stop from persistence with its full state.
func RestoreStop(
	id kernel.UUID,
	locationID kernel.LocationID,
	stopOrder int,
	customerID *kernel.CustomerID,
	restockRequestID *kernel.UUID,
	followupRequestID *kernel.UUID,
	address string,
	geo *GeoPoint,
	status StopStatus,
	deliveryOTP *DeliveryOTP,
	completedAt *time.Time,
	active bool,
) (*Stop, error) {
	s, err := NewStop(id, locationID, stopOrder, customerID, restockRequestID, followupRequestID, address, geo)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if deliveryOTP != nil {
		if err = deliveryOTP.Validate(); err != nil {
			return nil, err
		}
	}

	s.status = status
	s.deliveryOTP = deliveryOTP
	s.completedAt = completedAt
	s.active = active
	return s, nil
}

// IsEqual compares two stops by identity.
func (s *Stop) IsEqual(other *Stop) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the stop's unique identifier.
func (s *Stop) ID() kernel.UUID { return s.id }

// LocationID returns the site being visited.
func (s *Stop) LocationID() kernel.LocationID { return s.locationID }

// StopOrder returns the 1-based position within the route.
func (s *Stop) StopOrder() int { return s.stopOrder }

// CustomerID returns the optional customer reference.
func (s *Stop) CustomerID() *kernel.CustomerID { return s.customerID }

// RestockRequestID returns the linked stock ask, nil if none.
func (s *Stop) RestockRequestID() *kernel.UUID { return s.restockRequestID }

// FollowupRequestID returns the linked visit ask, nil if none.
func (s *Stop) FollowupRequestID() *kernel.UUID { return s.followupRequestID }

// Address returns the display address snapshot.
func (s *Stop) Address() string { return s.address }

// Geo returns the optional coordinates for the optimizer.
func (s *Stop) Geo() *GeoPoint { return s.geo }

// Status returns the current lifecycle state.
func (s *Stop) Status() StopStatus { return s.status }

// DeliveryOTP returns the issued confirmation code, nil before arrival.
func (s *Stop) DeliveryOTP() *DeliveryOTP { return s.deliveryOTP }

// CompletedAt returns the delivery timestamp, nil before completion.
func (s *Stop) CompletedAt() *time.Time { return s.completedAt }

// IsActive reports the soft-delete state.
func (s *Stop) IsActive() bool { return s.active }

// Depart moves the stop Draft -> EnRoute.
func (s *Stop) Depart() error {
	if err := s.Validate(); err != nil {
		return err
	}

	newStatus, err := s.status.Advance(StopEnRoute)
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// Arrive moves the stop EnRoute -> Arrived and issues the delivery OTP.
func (s *Stop) Arrive() error {
	if err := s.Validate(); err != nil {
		return err
	}

	newStatus, err := s.status.Advance(StopArrived)
	if err != nil {
		return err
	}

	otp := GenerateOTP()
	s.status = newStatus
	s.deliveryOTP = &otp
	return nil
}

// Deliver moves the stop Arrived -> Delivered after OTP confirmation and
// stamps completedAt.
//
// Fails with OtpMismatchError when the supplied code does not match the
// issued OTP; the stop remains Arrived.
func (s *Stop) Deliver(otpCode string, now time.Time) error {
	if err := s.Validate(); err != nil {
		return err
	}

	newStatus, err := s.status.Advance(StopDelivered)
	if err != nil {
		return err
	}

	if s.deliveryOTP != nil && !s.deliveryOTP.Matches(otpCode) {
		return NewOtpMismatchError(s.id)
	}

	s.status = newStatus
	s.completedAt = &now
	return nil
}

// Fail marks the stop failed. Legal from EnRoute and Arrived only; failure
// is an explicit operator decision.
func (s *Stop) Fail() error {
	if err := s.Validate(); err != nil {
		return err
	}

	newStatus, err := s.status.Advance(StopFailed)
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// Validate ensures the Stop instance was properly constructed.
func (s *Stop) Validate() error {
	if s == nil {
		return ErrStopIsNotConstructed
	}
	return s.guard.Validate(ErrStopIsNotConstructed)
}

// reorder assigns a new position. Only the owning route calls this, after
// validating the full permutation.
func (s *Stop) reorder(order int) {
	s.stopOrder = order
}

// attachRequest links a fulfillment request to the stop. Only the owning
// route calls this. Legal only while the stop is Draft and unlinked.
func (s *Stop) attachRequest(restockRequestID, followupRequestID *kernel.UUID) error {
	if s.restockRequestID != nil || s.followupRequestID != nil {
		return ErrStopAlreadyLinked
	}

	if s.status != StopDraft {
		return NewInvalidTransitionError(s.status, s.status)
	}

	return s.setRequestRefs(restockRequestID, followupRequestID)
}

func (s *Stop) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Stop) setLocationID(locationID kernel.LocationID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}
	s.locationID = locationID
	return nil
}

func (s *Stop) setStopOrder(order int) error {
	if order < 1 {
		return errs.NewValueIsOutOfRangeError("stopOrder", order, 1, "N")
	}
	s.stopOrder = order
	return nil
}

func (s *Stop) setCustomerID(customerID *kernel.CustomerID) error {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return err
		}
	}
	s.customerID = customerID
	return nil
}

func (s *Stop) setRequestRefs(restockRequestID, followupRequestID *kernel.UUID) error {
	if restockRequestID != nil && followupRequestID != nil {
		return ErrStopHasTwoRequests
	}

	if restockRequestID != nil {
		if err := restockRequestID.Validate(); err != nil {
			return err
		}
	}

	if followupRequestID != nil {
		if err := followupRequestID.Validate(); err != nil {
			return err
		}
	}

	s.restockRequestID = restockRequestID
	s.followupRequestID = followupRequestID
	return nil
}

func (s *Stop) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address is required")
	}
	s.address = address
	return nil
}
