// Package kernel provides the shared building blocks used across all domain
// models: aggregate identifiers and typed reference keys.
//
// The package includes:
//   - UUID: identifier for aggregates owned by this system
//   - Typed reference ids (WarehouseID, VanID, LocationID, CustomerID,
//     ProductID, VariantID, UserID) for entities resolved through the
//     reference directory
//   - ProductKey: the (product, optional variant) pair that addresses a
//     single stock line in every ledger stage
//
// All types are immutable value objects created through validated
// constructors, following the same conventions as the rest of the domain.
package kernel
