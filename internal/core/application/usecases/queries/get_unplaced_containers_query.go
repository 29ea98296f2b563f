package queries

import (
	"errors"

	"yard/internal/core/domain/model/container"
	"yard/internal/core/domain/model/kernel"
	"yard/internal/pkg/guard"
)

var ErrGetUnplacedContainersQueryIsNotConstructed = errors.New(
	"GetUnplacedContainersQuery must be created via NewGetUnplacedContainersQuery constructor",
)

// GetUnplacedContainersQuery retrieves all registered containers that have no
// occupancy record, i.e. the backlog waiting to be placed in the yard.
type GetUnplacedContainersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnplacedContainersQuery creates a query for the placement backlog.
// This is a parameterless query.
func NewGetUnplacedContainersQuery() GetUnplacedContainersQuery {
	return GetUnplacedContainersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnplacedContainersQueryIsNotConstructed if validation fails.
func (q GetUnplacedContainersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnplacedContainersQueryIsNotConstructed)
}

// GetUnplacedContainersQueryResponse represents one container awaiting
// placement.
type GetUnplacedContainersQueryResponse struct {
	ID        kernel.UUID
	Number    string
	OwnerID   kernel.UUID
	Size      container.Size
	LoadState container.LoadState
}
