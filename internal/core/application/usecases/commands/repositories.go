// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"yard/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PositionRepoFactory provides access to position repository within a transaction.
	PositionRepoFactory interface {
		PositionRepository() ports.PositionRepository
	}

	// ContainerRepoFactory provides access to container repository within a transaction.
	ContainerRepoFactory interface {
		ContainerRepository() ports.ContainerRepository
	}

	// VehicleRepoFactory provides access to vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// WorkOrderRepoFactory provides access to work order repository within a transaction.
	WorkOrderRepoFactory interface {
		WorkOrderRepository() ports.WorkOrderRepository
	}

	// PlacementUoW manages transactions for occupancy changes.
	// Used by commands that bind, move, or unbind containers directly.
	PlacementUoW interface {
		TxManager
		PositionRepoFactory
		ContainerRepoFactory
	}

	// PlacementUoWFactory creates new placement unit of work instances.
	PlacementUoWFactory interface {
		Create() PlacementUoW
	}

	// WorkOrderUoW manages transactions for work order lifecycle operations.
	// Completion also writes occupancy, so the position repository is included.
	WorkOrderUoW interface {
		TxManager
		WorkOrderRepoFactory
		ContainerRepoFactory
		PositionRepoFactory
		VehicleRepoFactory
	}

	// WorkOrderUoWFactory creates new work order unit of work instances.
	WorkOrderUoWFactory interface {
		Create() WorkOrderUoW
	}

	// DispatchUoW manages transactions for vehicle dispatch.
	// Used when the auto-dispatcher attaches vehicles to pending orders.
	DispatchUoW interface {
		TxManager
		WorkOrderRepoFactory
		VehicleRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}
)
