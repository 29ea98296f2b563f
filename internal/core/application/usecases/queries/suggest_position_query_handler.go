package queries

import (
	"context"
	"errors"

	"yard/internal/core/domain/model/container"
	"yard/internal/core/domain/model/kernel"
	"yard/internal/core/domain/model/yard"
	"yard/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrContainerNotFound is returned when a query references a container that
// is not registered.
var ErrContainerNotFound = errors.New("container not found")

// SuggestPositionQueryHandler resolves the container from the database and
// runs the suggestion engine against the live occupancy grid. The suggestion
// is advisory: nothing is reserved, and a concurrent placement can take the
// slot before the caller acts on it.
type SuggestPositionQueryHandler struct {
	db        *gorm.DB
	grid      *yard.Grid
	suggester services.PlacementSuggester
}

// NewSuggestPositionQueryHandler creates a handler for suggestion queries.
// Requires a GORM database connection and the shared occupancy grid.
func NewSuggestPositionQueryHandler(db *gorm.DB, grid *yard.Grid) SuggestPositionQueryHandler {
	return SuggestPositionQueryHandler{
		db:        db,
		grid:      grid,
		suggester: services.NewPlacementSuggester(),
	}
}

// Handle executes the suggestion query.
// Fails with ErrContainerNotFound for unknown containers, with
// yard.ErrContainerAlreadyPlaced when the container already occupies a slot,
// and with services.ErrNoAvailablePositions when no vacant slot satisfies
// the stacking rules.
func (h SuggestPositionQueryHandler) Handle(
	ctx context.Context,
	query SuggestPositionQuery,
) (SuggestPositionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return SuggestPositionQueryResponse{}, err
	}

	cont, err := h.fetchContainer(ctx, query.ContainerID())
	if err != nil {
		return SuggestPositionQueryResponse{}, err
	}

	if h.grid.PositionOf(cont.ID()) != nil {
		return SuggestPositionQueryResponse{}, yard.ErrContainerAlreadyPlaced
	}

	suggestion, err := h.suggester.Suggest(h.grid, cont, query.ZonePreference())
	if err != nil {
		return SuggestPositionQueryResponse{}, err
	}

	return SuggestPositionQueryResponse{
		Primary:      suggestion.Primary,
		Alternatives: suggestion.Alternatives,
		Reason:       suggestion.Reason,
	}, nil
}

func (h SuggestPositionQueryHandler) fetchContainer(
	ctx context.Context,
	containerID kernel.UUID,
) (*container.Container, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			owner_id,
			size,
			load_state
		FROM containers
		WHERE id = ?
	`, containerID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrContainerNotFound
	}

	var id, ownerID uuid.UUID
	var number string
	var size, loadState int

	if err = rows.Scan(&id, &number, &ownerID, &size, &loadState); err != nil {
		return nil, err
	}

	kernelID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	kernelOwnerID, err := kernel.UUIDFromBytes(ownerID[:])
	if err != nil {
		return nil, err
	}

	return container.RestoreContainer(
		kernelID,
		number,
		kernelOwnerID,
		container.Size(size),
		container.LoadState(loadState),
	)
}
