package request

import (
	"errors"
	"fmt"

	"supplyline/internal/core/domain/model/kernel"
)

// ErrDuplicateAttachment is the sentinel for attaching a request that is
// already linked to an active route stop.
var ErrDuplicateAttachment = errors.New("request already attached to a stop")

// DuplicateAttachmentError reports which stop already holds the request, so
// the caller can locate the conflicting route.
type DuplicateAttachmentError struct {
	RequestID      kernel.UUID
	AttachedStopID kernel.UUID
}

// NewDuplicateAttachmentError creates a DuplicateAttachmentError naming the
// conflicting stop.
func NewDuplicateAttachmentError(requestID, attachedStopID kernel.UUID) *DuplicateAttachmentError {
	return &DuplicateAttachmentError{RequestID: requestID, AttachedStopID: attachedStopID}
}

func (e *DuplicateAttachmentError) Error() string {
	return fmt.Sprintf("%s: request %s is held by stop %s",
		ErrDuplicateAttachment, e.RequestID, e.AttachedStopID)
}

// Unwrap returns the sentinel ErrDuplicateAttachment for errors.Is classification.
func (e *DuplicateAttachmentError) Unwrap() error {
	return ErrDuplicateAttachment
}
