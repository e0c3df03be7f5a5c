package commands

import (
	"errors"

	"supplyline/internal/pkg/guard"
)

var ErrCompleteFinishedRoutesCommandIsNotConstructed = errors.New(
	"CompleteFinishedRoutesCommand must be created via NewCompleteFinishedRoutesCommand constructor",
)

// CompleteFinishedRoutesCommand triggers a sweep over every route currently
// being driven, completing the ones whose stops have all reached a terminal
// status. Run periodically so drivers do not have to close routes by hand.
type CompleteFinishedRoutesCommand struct {
	guard guard.ConstructorGuard
}

// NewCompleteFinishedRoutesCommand creates a command for the completion sweep.
// This is a parameterless command that processes all in-progress routes.
func NewCompleteFinishedRoutesCommand() CompleteFinishedRoutesCommand {
	return CompleteFinishedRoutesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CompleteFinishedRoutesCommand) Validate() error {
	return c.guard.Validate(ErrCompleteFinishedRoutesCommandIsNotConstructed)
}
