package queries

import (
	"errors"

	"yard/internal/core/domain/model/container"
	"yard/internal/core/domain/model/kernel"
	"yard/internal/pkg/guard"
)

var ErrGetLayoutQueryIsNotConstructed = errors.New(
	"GetLayoutQuery must be created via NewGetLayoutQuery constructor",
)

// GetLayoutQuery retrieves the current yard occupancy with aggregate
// statistics for dashboards and capacity monitoring.
//
// Example:
//
//	query := NewGetLayoutQuery()
//	handler := NewGetLayoutQueryHandler(grid)
//
//	layout, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get yard layout: %w", err)
//	}
//
//	fmt.Printf("%d of %d slots occupied\n", len(layout.OccupiedSlots), layout.Capacity)
type GetLayoutQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLayoutQuery creates a query to retrieve the yard layout.
// This is a parameterless query that reads the full occupancy state.
func NewGetLayoutQuery() GetLayoutQuery {
	return GetLayoutQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLayoutQueryIsNotConstructed if validation fails.
func (q GetLayoutQuery) Validate() error {
	return q.guard.Validate(ErrGetLayoutQueryIsNotConstructed)
}

// LayoutSlotResponse represents one occupied slot of the yard.
// A full-length container appears once, under its record's coordinate.
type LayoutSlotResponse struct {
	PositionID      kernel.UUID
	Coordinate      kernel.Coordinate
	ContainerID     kernel.UUID
	ContainerNumber string
	Size            container.Size
	LoadState       container.LoadState
	AutoAssigned    bool
}

// GetLayoutQueryResponse represents the occupancy state of the whole yard.
type GetLayoutQueryResponse struct {
	Capacity      int
	OccupiedSlots []LayoutSlotResponse
	ZoneCounts    map[kernel.Zone]int
	LadenCount    int
	EmptyCount    int
}
