package ports

import (
	"context"

	"yard/internal/core/domain/model/kernel"
	"yard/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for yard vehicles.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate to storage.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle aggregate.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetAllActive retrieves every vehicle currently marked active.
	// Used by the dispatcher to pick a vehicle for pending work orders.
	GetAllActive(ctx context.Context) ([]*vehicle.Vehicle, error)
}
