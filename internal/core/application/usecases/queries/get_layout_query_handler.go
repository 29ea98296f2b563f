package queries

import (
	"context"

	"yard/internal/core/domain/model/yard"
)

// GetLayoutQueryHandler reads the occupancy grid and produces a point-in-time
// layout with aggregate statistics. It does not touch the database: the grid
// is the runtime source of truth for occupancy.
type GetLayoutQueryHandler struct {
	grid *yard.Grid
}

// NewGetLayoutQueryHandler creates a handler for layout queries.
// Requires the shared occupancy grid.
func NewGetLayoutQueryHandler(grid *yard.Grid) GetLayoutQueryHandler {
	return GetLayoutQueryHandler{grid: grid}
}

// Handle executes the query against the current occupancy state.
// Occupied slots come back in coordinate scan order.
func (h GetLayoutQueryHandler) Handle(
	_ context.Context,
	query GetLayoutQuery,
) (GetLayoutQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLayoutQueryResponse{}, err
	}

	snapshot := h.grid.Snapshot()

	response := GetLayoutQueryResponse{
		Capacity:      snapshot.Capacity,
		OccupiedSlots: make([]LayoutSlotResponse, 0, len(snapshot.Occupied)),
		ZoneCounts:    snapshot.ZoneCounts,
		LadenCount:    snapshot.LadenCount,
		EmptyCount:    snapshot.EmptyCount,
	}

	for _, slot := range snapshot.Occupied {
		response.OccupiedSlots = append(response.OccupiedSlots, LayoutSlotResponse{
			PositionID:      slot.Position.ID(),
			Coordinate:      slot.Position.Coordinate(),
			ContainerID:     slot.Container.ID(),
			ContainerNumber: slot.Container.Number(),
			Size:            slot.Container.Size(),
			LoadState:       slot.Container.LoadState(),
			AutoAssigned:    slot.Position.AutoAssigned(),
		})
	}

	return response, nil
}
