// Package request provides the fulfillment request aggregates consumed by
// route stops: RestockRequest (itemized stock ask) and FollowupRequest
// (address-only visit).
//
// Key business rules:
//   - Both kinds share one lifecycle: Pending -> InRoute -> Fulfilled, with
//     Cancelled reachable from any non-terminal state
//   - A request is held by at most one active stop; a second attachment
//     fails with DuplicateAttachmentError
//   - Fulfillment is driven exclusively by stop completion
package request
