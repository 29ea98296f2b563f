package queries

import (
	"errors"

	"yard/internal/core/domain/model/kernel"
	"yard/internal/pkg/guard"
)

var ErrSuggestPositionQueryIsNotConstructed = errors.New(
	"SuggestPositionQuery must be created via NewSuggestPositionQuery constructor",
)

// SuggestPositionQuery asks the suggestion engine for the best vacant slot
// for a container, without reserving it.
//
// Example:
//
//	query, _ := NewSuggestPositionQuery(containerID, nil)
//	handler := NewSuggestPositionQueryHandler(db, grid)
//
//	suggestion, err := handler.Handle(ctx, query)
//	if errors.Is(err, services.ErrNoAvailablePositions) {
//	    // yard cannot take this container right now
//	}
type SuggestPositionQuery struct {
	containerID    kernel.UUID
	zonePreference *kernel.Zone

	guard guard.ConstructorGuard
}

// NewSuggestPositionQuery creates a suggestion query for the given container.
// A non-nil zonePreference restricts candidates to that zone.
func NewSuggestPositionQuery(containerID kernel.UUID, zonePreference *kernel.Zone) (SuggestPositionQuery, error) {
	if err := containerID.Validate(); err != nil {
		return SuggestPositionQuery{}, err
	}
	if zonePreference != nil {
		if err := zonePreference.Validate(); err != nil {
			return SuggestPositionQuery{}, err
		}
	}

	return SuggestPositionQuery{
		containerID:    containerID,
		zonePreference: zonePreference,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrSuggestPositionQueryIsNotConstructed if validation fails.
func (q SuggestPositionQuery) Validate() error {
	return q.guard.Validate(ErrSuggestPositionQueryIsNotConstructed)
}

// ContainerID returns the container to find a slot for.
func (q SuggestPositionQuery) ContainerID() kernel.UUID {
	return q.containerID
}

// ZonePreference returns the requested zone, or nil for no restriction.
func (q SuggestPositionQuery) ZonePreference() *kernel.Zone {
	return q.zonePreference
}

// SuggestPositionQueryResponse represents a placement recommendation.
// Alternatives are ranked fallbacks that also satisfy the stacking rules.
type SuggestPositionQueryResponse struct {
	Primary      kernel.Coordinate
	Alternatives []kernel.Coordinate
	Reason       string
}
