// Package kernel provides core domain primitives for the yard system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Coordinate: A value object identifying one addressable slot of the yard
//     as the five-part tuple (zone, row, bay, tier, subSlot)
//
// Coordinate is the single place where yard topology bounds are enforced:
// every other component receives already-validated coordinates, which prevents
// divergent bounds checking across the codebase.
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are designed to be
// immutable and thread-safe, making them suitable for concurrent use.
package kernel
