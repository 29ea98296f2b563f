package queries

import (
	"context"

	"yard/internal/core/domain/model/yard"
)

// GetAvailablePositionsQueryHandler lists vacant coordinates from the
// occupancy grid.
type GetAvailablePositionsQueryHandler struct {
	grid *yard.Grid
}

// NewGetAvailablePositionsQueryHandler creates a handler for vacancy queries.
// Requires the shared occupancy grid.
func NewGetAvailablePositionsQueryHandler(grid *yard.Grid) GetAvailablePositionsQueryHandler {
	return GetAvailablePositionsQueryHandler{grid: grid}
}

// Handle executes the vacancy listing against the current occupancy state.
func (h GetAvailablePositionsQueryHandler) Handle(
	_ context.Context,
	query GetAvailablePositionsQuery,
) (GetAvailablePositionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAvailablePositionsQueryResponse{}, err
	}

	coordinates := h.grid.ListVacant(yard.VacancyFilter{
		Zone:  query.Zone(),
		Tier:  query.Tier(),
		Limit: query.Limit(),
	})

	return GetAvailablePositionsQueryResponse{Coordinates: coordinates}, nil
}
