package commands

import (
	"errors"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/route"
	"supplyline/internal/pkg/errs"
	"supplyline/internal/pkg/guard"
)

var (
	ErrAdvanceStopCommandIsNotConstructed = errors.New(
		"AdvanceStopCommand must be created via NewAdvanceStopCommand constructor",
	)
	ErrOtpCodeIsRequired = errors.New("otp code is required for the delivered transition")
)

// AdvanceStopCommand represents one lifecycle transition of a route stop:
// departure, arrival, delivery, or failure. Delivery requires the OTP code
// issued on arrival.
//
// Example:
//
//	cmd, err := NewAdvanceStopCommand(routeID, stopID, route.StopDelivered, "482913", actorID)
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	handler := NewAdvanceStopCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, route.ErrOtpMismatch) {
//	    // Wrong code, stop remains Arrived
//	}
type AdvanceStopCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID
	stopID  kernel.UUID
	target  route.StopStatus
	otpCode string
	actorID kernel.UserID

	guard guard.ConstructorGuard
}

// NewAdvanceStopCommand creates a command to advance a stop.
// The OTP code is required when targeting Delivered and ignored otherwise.
func NewAdvanceStopCommand(
	routeID kernel.UUID,
	stopID kernel.UUID,
	target route.StopStatus,
	otpCode string,
	actorID kernel.UserID,
) (AdvanceStopCommand, error) {
	cmd := AdvanceStopCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRouteID(routeID),
		cmd.setStopID(stopID),
		cmd.setTarget(target, otpCode),
		cmd.setActorID(actorID),
	); err != nil {
		return AdvanceStopCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceStopCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceStopCommandIsNotConstructed)
}

// RouteID returns the route owning the stop.
func (c AdvanceStopCommand) RouteID() kernel.UUID {
	return c.routeID
}

// StopID returns the stop being advanced.
func (c AdvanceStopCommand) StopID() kernel.UUID {
	return c.stopID
}

// Target returns the requested stop status.
func (c AdvanceStopCommand) Target() route.StopStatus {
	return c.target
}

// OtpCode returns the confirmation code, empty for non-delivery transitions.
func (c AdvanceStopCommand) OtpCode() string {
	return c.otpCode
}

// ActorID returns the user performing the transition.
func (c AdvanceStopCommand) ActorID() kernel.UserID {
	return c.actorID
}

func (c *AdvanceStopCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}

func (c *AdvanceStopCommand) setStopID(stopID kernel.UUID) error {
	if err := stopID.Validate(); err != nil {
		return err
	}

	c.stopID = stopID
	return nil
}

func (c *AdvanceStopCommand) setTarget(target route.StopStatus, otpCode string) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if target == route.StopDraft {
		return errs.NewValueIsInvalidError("a stop cannot be advanced back to draft")
	}

	if target == route.StopDelivered && otpCode == "" {
		return ErrOtpCodeIsRequired
	}

	c.target = target
	c.otpCode = otpCode
	return nil
}

func (c *AdvanceStopCommand) setActorID(actorID kernel.UserID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
