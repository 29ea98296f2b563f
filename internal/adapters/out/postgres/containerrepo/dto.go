// Package containerrepo provides data transfer objects and mapping functions
// for container persistence.
package containerrepo

import (
	"yard/internal/core/domain/model/container"
	"yard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ContainerDTO represents the database structure for persisting containers.
type ContainerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number    string    `gorm:"type:varchar(11);uniqueIndex"`
	OwnerID   uuid.UUID `gorm:"type:uuid;index"`
	Size      int
	LoadState int
}

// TableName specifies the database table name for container entities.
func (ContainerDTO) TableName() string {
	return "containers"
}

// fromDomain converts a container entity to its database representation.
func fromDomain(entity *container.Container) ContainerDTO {
	return ContainerDTO{
		ID:        entity.ID().Bytes(),
		Number:    entity.Number(),
		OwnerID:   entity.OwnerID().Bytes(),
		Size:      int(entity.Size()),
		LoadState: int(entity.LoadState()),
	}
}

// toDomain converts a database DTO to a container entity using RestoreContainer.
func toDomain(dto ContainerDTO) (*container.Container, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return container.RestoreContainer(
		id,
		dto.Number,
		ownerID,
		container.Size(dto.Size),
		container.LoadState(dto.LoadState),
	)
}
