// Package route provides the Route aggregate: one driver's delivery day and
// its ordered stops.
//
// The package includes:
//   - Route: the aggregate root owning stops and the route state machine
//   - Stop: a single scheduled visit with its own lifecycle and OTP gate
//   - Status / StopStatus: the two state machines
//   - DeliveryOTP: the confirmation code issued on arrival
//
// Key business rules:
//   - Active stop orders always form a permutation of 1..N; reordering is
//     atomic and preserves stop identities
//   - A stop is Delivered only after OTP confirmation and records its
//     completion time
//   - The route completes only when every active stop is terminal; failure
//     of a stop is an explicit operator decision
package route
