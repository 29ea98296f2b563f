package ports

import (
	"context"

	"yard/internal/core/domain/model/container"
	"yard/internal/core/domain/model/kernel"
)

// ContainerRepository defines the persistence contract for container entities.
// Containers are registered by external collaborators and referenced by
// occupancy records and work orders.
type ContainerRepository interface {
	// Add persists a new container entity to storage.
	// The container must be valid and its number must be unique.
	Add(ctx context.Context, entity *container.Container) error

	// Update persists changes to an existing container entity.
	Update(ctx context.Context, entity *container.Container) error

	// Get retrieves a container entity by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*container.Container, error)

	// GetAll retrieves every registered container.
	// Used to seed the in-memory occupancy grid at startup.
	GetAll(ctx context.Context) ([]*container.Container, error)
}
