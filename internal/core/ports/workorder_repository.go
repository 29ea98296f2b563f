package ports

import (
	"context"

	"yard/internal/core/domain/model/kernel"
	"yard/internal/core/domain/model/workorder"
)

// WorkOrderRepository defines the persistence contract for work order
// aggregates. Provides methods for storing, retrieving, and querying work
// orders by their lifecycle status.
type WorkOrderRepository interface {
	// Add persists a new work order aggregate to storage.
	// The work order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Update persists changes to an existing work order aggregate.
	// The work order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Get retrieves a work order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error)

	// GetFirstPendingUnassigned retrieves the pending work order that should
	// be dispatched next. Ordering is highest priority first, then earliest
	// created. Returns errs.ErrObjectNotFound when nothing is pending.
	GetFirstPendingUnassigned(ctx context.Context) (*workorder.WorkOrder, error)

	// GetAllInAssignedStatus retrieves all work orders currently assigned to
	// vehicles. Used to compute vehicle load during dispatch.
	GetAllInAssignedStatus(ctx context.Context) ([]*workorder.WorkOrder, error)

	// GetOpenByContainer retrieves the open (pending or assigned) work order
	// referencing the given container, if any.
	GetOpenByContainer(ctx context.Context, containerID kernel.UUID) (*workorder.WorkOrder, error)
}
