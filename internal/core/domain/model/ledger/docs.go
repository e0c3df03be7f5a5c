// Package ledger provides the quantity-tracking domain model for the
// three-stage inventory chain: Warehouse, Van, and Location.
//
// The package includes:
//   - Stage: the chain tier enum with validated transitions
//   - StockRecord: the conserved quantity for one (stage, entity, product)
//     line, with non-negative adjustment semantics
//   - OutwardRecord: append-only usage rows for stock leaving a location
//   - UnlistedStock: barcode-keyed counts outside the conservation chain
//
// Key business rules:
//   - A quantity never goes negative; shortfalls fail with
//     InsufficientStockError naming the exact line
//   - Rows are soft-deleted through an active flag, never removed
//   - Every mutation stamps the acting user and time
package ledger
