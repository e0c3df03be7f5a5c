package commands

import (
	"errors"
	"time"

	"supplyline/internal/pkg/guard"
)

var (
	ErrOptimizeDueRoutesCommandIsNotConstructed = errors.New(
		"OptimizeDueRoutesCommand must be created via NewOptimizeDueRoutesCommand constructor",
	)
	ErrDateIsRequired = errors.New("date is required")
)

// OptimizeDueRoutesCommand represents the morning sweep: optimize and
// schedule every Draft route planned for the given delivery day.
type OptimizeDueRoutesCommand struct { //nolint:recvcheck //using for validation
	date    time.Time
	vehicle string

	guard guard.ConstructorGuard
}

// NewOptimizeDueRoutesCommand creates a command to schedule a day's routes.
func NewOptimizeDueRoutesCommand(date time.Time, vehicle string) (OptimizeDueRoutesCommand, error) {
	cmd := OptimizeDueRoutesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDate(date); err != nil {
		return OptimizeDueRoutesCommand{}, err
	}

	cmd.vehicle = vehicle
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OptimizeDueRoutesCommand) Validate() error {
	return c.guard.Validate(ErrOptimizeDueRoutesCommandIsNotConstructed)
}

// Date returns the delivery day to sweep.
func (c OptimizeDueRoutesCommand) Date() time.Time {
	return c.date
}

// Vehicle returns the optimizer vehicle profile, may be empty.
func (c OptimizeDueRoutesCommand) Vehicle() string {
	return c.vehicle
}

func (c *OptimizeDueRoutesCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return ErrDateIsRequired
	}

	c.date = date
	return nil
}
