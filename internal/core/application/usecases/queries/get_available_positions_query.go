package queries

import (
	"errors"

	"yard/internal/core/domain/model/kernel"
	"yard/internal/pkg/guard"
)

var ErrGetAvailablePositionsQueryIsNotConstructed = errors.New(
	"GetAvailablePositionsQuery must be created via NewGetAvailablePositionsQuery constructor",
)

// GetAvailablePositionsQuery lists vacant coordinates, optionally narrowed to
// a zone or tier. The scan order is deterministic, so repeated calls against
// an unchanged yard return the same sequence.
type GetAvailablePositionsQuery struct {
	zone  *kernel.Zone
	tier  *kernel.Tier
	limit int

	guard guard.ConstructorGuard
}

// NewGetAvailablePositionsQuery creates a vacancy listing query.
// Nil zone and tier mean "no restriction"; limit <= 0 means unbounded.
func NewGetAvailablePositionsQuery(zone *kernel.Zone, tier *kernel.Tier, limit int) (GetAvailablePositionsQuery, error) {
	if zone != nil {
		if err := zone.Validate(); err != nil {
			return GetAvailablePositionsQuery{}, err
		}
	}
	if tier != nil {
		if err := tier.Validate(); err != nil {
			return GetAvailablePositionsQuery{}, err
		}
	}

	return GetAvailablePositionsQuery{
		zone:  zone,
		tier:  tier,
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailablePositionsQueryIsNotConstructed if validation fails.
func (q GetAvailablePositionsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailablePositionsQueryIsNotConstructed)
}

// Zone returns the zone restriction, or nil for all zones.
func (q GetAvailablePositionsQuery) Zone() *kernel.Zone {
	return q.zone
}

// Tier returns the tier restriction, or nil for all tiers.
func (q GetAvailablePositionsQuery) Tier() *kernel.Tier {
	return q.tier
}

// Limit returns the maximum number of results, or <= 0 for unbounded.
func (q GetAvailablePositionsQuery) Limit() int {
	return q.limit
}

// GetAvailablePositionsQueryResponse represents the vacant coordinates
// matching the query.
type GetAvailablePositionsQueryResponse struct {
	Coordinates []kernel.Coordinate
}
