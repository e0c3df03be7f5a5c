package route

import (
	"errors"
	"fmt"

	"supplyline/internal/core/domain/model/kernel"
)

// ErrInvalidTransition is the sentinel for illegal state-machine moves on
// routes and stops.
var ErrInvalidTransition = errors.New("invalid transition")

// InvalidTransitionError reports the exact transition that was attempted,
// so the caller can correct and retry.
type InvalidTransitionError struct {
	From string
	To   string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// states. From and To carry the String() forms of the status values.
func NewInvalidTransitionError(from, to fmt.Stringer) *InvalidTransitionError {
	return &InvalidTransitionError{From: from.String(), To: to.String()}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

// Unwrap returns the sentinel ErrInvalidTransition for errors.Is classification.
func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ErrOtpMismatch is the sentinel for delivery confirmations with a wrong
// one-time code. The stop stays Arrived.
var ErrOtpMismatch = errors.New("delivery OTP mismatch")

// OtpMismatchError reports which stop rejected the confirmation code.
type OtpMismatchError struct {
	StopID kernel.UUID
}

// NewOtpMismatchError creates an OtpMismatchError for the given stop.
func NewOtpMismatchError(stopID kernel.UUID) *OtpMismatchError {
	return &OtpMismatchError{StopID: stopID}
}

func (e *OtpMismatchError) Error() string {
	return fmt.Sprintf("%s: stop %s", ErrOtpMismatch, e.StopID)
}

// Unwrap returns the sentinel ErrOtpMismatch for errors.Is classification.
func (e *OtpMismatchError) Unwrap() error {
	return ErrOtpMismatch
}

// ErrOrderingConflict is the sentinel for stop orderings that do not form a
// permutation of 1..N.
var ErrOrderingConflict = errors.New("stop ordering conflict")

// OrderingConflictError reports the offending order values.
type OrderingConflictError struct {
	Orders []int
}

// NewOrderingConflictError creates an OrderingConflictError carrying the
// supplied order values.
func NewOrderingConflictError(orders []int) *OrderingConflictError {
	return &OrderingConflictError{Orders: orders}
}

func (e *OrderingConflictError) Error() string {
	return fmt.Sprintf("%s: %v is not a permutation of 1..%d", ErrOrderingConflict, e.Orders, len(e.Orders))
}

// Unwrap returns the sentinel ErrOrderingConflict for errors.Is classification.
func (e *OrderingConflictError) Unwrap() error {
	return ErrOrderingConflict
}
