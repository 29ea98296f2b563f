// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the yard system. It implements business
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - StackingValidator: ordered physical-constraint rules over yard occupancy
//   - PlacementSuggester: advisory search for the best vacant coordinates
//   - VehicleDispatcher: vehicle selection and assignment for work orders
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
