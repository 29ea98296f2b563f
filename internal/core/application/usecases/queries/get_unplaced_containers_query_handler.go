package queries

import (
	"context"

	"yard/internal/core/domain/model/container"
	"yard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnplacedContainersQueryHandler retrieves containers without an
// occupancy record from the database.
type GetUnplacedContainersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnplacedContainersQueryHandler creates a handler for backlog queries.
// Requires a GORM database connection for query execution.
func NewGetUnplacedContainersQueryHandler(db *gorm.DB) GetUnplacedContainersQueryHandler {
	return GetUnplacedContainersQueryHandler{db: db}
}

// Handle executes the query to retrieve all unplaced containers.
// Results are sorted by container number for consistent output.
func (h GetUnplacedContainersQueryHandler) Handle(
	ctx context.Context,
	query GetUnplacedContainersQuery,
) ([]GetUnplacedContainersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	containers := make([]GetUnplacedContainersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.number,
			c.owner_id,
			c.size,
			c.load_state
		FROM containers c
		LEFT JOIN positions p ON p.container_id = c.id
		WHERE p.id IS NULL
		ORDER BY c.number
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, ownerID uuid.UUID
		var number string
		var size, loadState int

		err = rows.Scan(
			&id,
			&number,
			&ownerID,
			&size,
			&loadState,
		)
		if err != nil {
			return nil, err
		}

		containerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		containerOwnerID, ownerErr := kernel.UUIDFromBytes(ownerID[:])
		if ownerErr != nil {
			return nil, ownerErr
		}

		containers = append(containers, GetUnplacedContainersQueryResponse{
			ID:        containerID,
			Number:    number,
			OwnerID:   containerOwnerID,
			Size:      container.Size(size),
			LoadState: container.LoadState(loadState),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return containers, nil
}
