package commands

import (
	"errors"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/pkg/guard"
)

var (
	ErrAttachRequestCommandIsNotConstructed = errors.New(
		"AttachRequestCommand must be created via NewAttachRequestCommand constructor",
	)
	ErrExactlyOneRequestRequired = errors.New(
		"exactly one of restock request or followup request must be given")
)

// AttachRequestCommand represents linking a pending fulfillment request to
// an existing route stop. The request moves Pending -> InRoute and the stop
// records the reference; both changes commit together.
//
// Example:
//
//	cmd, err := NewAttachRequestCommand(routeID, stopID, &restockRequestID, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid attachment: %w", err)
//	}
//
//	handler := NewAttachRequestCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, request.ErrDuplicateAttachment) {
//	    // The request is already on another stop
//	}
type AttachRequestCommand struct { //nolint:recvcheck //using for validation
	routeID           kernel.UUID
	stopID            kernel.UUID
	restockRequestID  *kernel.UUID
	followupRequestID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAttachRequestCommand creates a command to attach a request to a stop.
// Exactly one request reference must be supplied.
func NewAttachRequestCommand(
	routeID kernel.UUID,
	stopID kernel.UUID,
	restockRequestID *kernel.UUID,
	followupRequestID *kernel.UUID,
) (AttachRequestCommand, error) {
	cmd := AttachRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRouteID(routeID),
		cmd.setStopID(stopID),
		cmd.setRequestRefs(restockRequestID, followupRequestID),
	); err != nil {
		return AttachRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachRequestCommand) Validate() error {
	return c.guard.Validate(ErrAttachRequestCommandIsNotConstructed)
}

// RouteID returns the route owning the stop.
func (c AttachRequestCommand) RouteID() kernel.UUID {
	return c.routeID
}

// StopID returns the stop receiving the request.
func (c AttachRequestCommand) StopID() kernel.UUID {
	return c.stopID
}

// RestockRequestID returns the restock request to attach, nil if a followup
// is being attached instead.
func (c AttachRequestCommand) RestockRequestID() *kernel.UUID {
	return c.restockRequestID
}

// FollowupRequestID returns the followup request to attach, nil if a restock
// is being attached instead.
func (c AttachRequestCommand) FollowupRequestID() *kernel.UUID {
	return c.followupRequestID
}

func (c *AttachRequestCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}

func (c *AttachRequestCommand) setStopID(stopID kernel.UUID) error {
	if err := stopID.Validate(); err != nil {
		return err
	}

	c.stopID = stopID
	return nil
}

func (c *AttachRequestCommand) setRequestRefs(restockRequestID, followupRequestID *kernel.UUID) error {
	if (restockRequestID == nil) == (followupRequestID == nil) {
		return ErrExactlyOneRequestRequired
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

	c.restockRequestID = restockRequestID
	c.followupRequestID = followupRequestID
	return nil
}
