// Package transfer provides the VanTransfer aggregate: one warehouse-to-van
// load and its journey toward location stock.
//
// The package includes:
//   - VanTransfer: the aggregate root owning the transfer header
//   - Item: a product line with loaded and remaining quantities
//   - Status: the Loaded -> Delivered state machine
//
// Key business rules:
//   - A transfer owns at least one item; items cannot outlive the header
//   - Draining an item moves its remainder toward location stock; the
//     transfer is Delivered only when every item is drained
//   - Creation and warehouse decrements happen in one unit of work
//     (all-or-nothing), coordinated by the stock transfer domain service
package transfer
