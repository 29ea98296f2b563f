// Package ports defines repository interfaces for the yard domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"yard/internal/core/domain/model/kernel"
	"yard/internal/core/domain/model/yard"
)

// PositionRepository defines the persistence contract for occupancy records.
// Each record binds a container to a yard coordinate; the coordinate is the
// natural uniqueness boundary and is enforced by the storage layer.
type PositionRepository interface {
	// Add persists a new position aggregate to storage.
	// The position must be valid and its coordinate must not already be bound.
	Add(ctx context.Context, aggregate *yard.Position) error

	// Update persists changes to an existing position aggregate.
	// Used when a container is moved to a different coordinate.
	Update(ctx context.Context, aggregate *yard.Position) error

	// Remove deletes the position aggregate from storage.
	// Used when a container leaves the yard.
	Remove(ctx context.Context, aggregate *yard.Position) error

	// Get retrieves a position aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*yard.Position, error)

	// GetByContainer retrieves the position occupied by the given container,
	// if any. A container holds at most one position at a time.
	GetByContainer(ctx context.Context, containerID kernel.UUID) (*yard.Position, error)

	// GetAll retrieves every position currently on record.
	// Used to seed the in-memory occupancy grid at startup.
	GetAll(ctx context.Context) ([]*yard.Position, error)
}
