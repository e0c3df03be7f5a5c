// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the supply chain. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - StockTransferService: A domain service moving stock between chain tiers
//     while preserving quantity conservation
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
