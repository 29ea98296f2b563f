package queries

import (
	"errors"
	"time"

	"yard/internal/core/domain/model/kernel"
	"yard/internal/core/domain/model/workorder"
	"yard/internal/pkg/guard"
)

var ErrGetWorkOrdersQueryIsNotConstructed = errors.New(
	"GetWorkOrdersQuery must be created via NewGetWorkOrdersQuery constructor",
)

// GetWorkOrdersQuery retrieves work orders, optionally filtered by status.
//
// Example:
//
//	status := workorder.Pending
//	query, _ := NewGetWorkOrdersQuery(&status)
//	handler := NewGetWorkOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get work orders: %w", err)
//	}
type GetWorkOrdersQuery struct {
	status *workorder.Status

	guard guard.ConstructorGuard
}

// NewGetWorkOrdersQuery creates a work order listing query.
// A nil status means "all statuses".
func NewGetWorkOrdersQuery(status *workorder.Status) (GetWorkOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetWorkOrdersQuery{}, err
		}
	}

	return GetWorkOrdersQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetWorkOrdersQueryIsNotConstructed if validation fails.
func (q GetWorkOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or nil for all statuses.
func (q GetWorkOrdersQuery) Status() *workorder.Status {
	return q.status
}

// GetWorkOrdersQueryResponse represents one work order.
type GetWorkOrdersQueryResponse struct {
	ID          kernel.UUID
	Number      string
	ContainerID kernel.UUID
	VehicleID   *kernel.UUID
	Coordinate  kernel.Coordinate
	Priority    workorder.Priority
	Status      workorder.Status
	CreatedAt   time.Time
	CompletedAt *time.Time
}
