// Package positionrepo provides data transfer objects and mapping functions for
// occupancy record persistence. This package implements the repository pattern
// for the position aggregate, handling the conversion between domain entities
// and database representations.
package positionrepo

import (
	"time"

	"yard/internal/core/domain/model/kernel"
	"yard/internal/core/domain/model/yard"

	"github.com/google/uuid"
)

// PositionDTO represents the database structure for persisting occupancy
// records. The coordinate columns carry a composite unique index so the
// database enforces the one-container-per-slot invariant even if the
// in-memory grid was bypassed.
type PositionDTO struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey"`
	ContainerID  uuid.UUID     `gorm:"type:uuid;uniqueIndex"`
	Coordinate   CoordinateDTO `gorm:"embedded;embeddedPrefix:coordinate_"`
	AutoAssigned bool
	CreatedAt    time.Time
}

// TableName specifies the database table name for occupancy records.
func (PositionDTO) TableName() string {
	return "positions"
}

// CoordinateDTO represents the embedded yard coordinate within the positions table.
type CoordinateDTO struct {
	Zone    string `gorm:"type:varchar(1);uniqueIndex:idx_positions_coordinate"`
	Row     int16  `gorm:"type:smallint;uniqueIndex:idx_positions_coordinate"`
	Bay     int16  `gorm:"type:smallint;uniqueIndex:idx_positions_coordinate"`
	Tier    int16  `gorm:"type:smallint;uniqueIndex:idx_positions_coordinate"`
	SubSlot string `gorm:"type:varchar(1);uniqueIndex:idx_positions_coordinate"`
}

// fromDomain converts a position domain aggregate to its database representation.
func fromDomain(position *yard.Position) PositionDTO {
	coordinate := position.Coordinate()

	return PositionDTO{
		ID:          position.ID().Bytes(),
		ContainerID: position.ContainerID().Bytes(),
		Coordinate: CoordinateDTO{
			Zone:    string(coordinate.Zone()),
			Row:     int16(coordinate.Row()),
			Bay:     int16(coordinate.Bay()),
			Tier:    int16(coordinate.Tier()),
			SubSlot: string(coordinate.SubSlot()),
		},
		AutoAssigned: position.AutoAssigned(),
		CreatedAt:    position.CreatedAt(),
	}
}

// toDomain converts a database DTO to a position domain aggregate using RestorePosition.
func toDomain(dto PositionDTO) (*yard.Position, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	containerID, err := kernel.UUIDFromBytes(dto.ContainerID[:])
	if err != nil {
		return nil, err
	}

	coordinate, err := kernel.NewCoordinate(
		kernel.Zone(dto.Coordinate.Zone),
		kernel.Row(dto.Coordinate.Row),
		kernel.Bay(dto.Coordinate.Bay),
		kernel.Tier(dto.Coordinate.Tier),
		kernel.SubSlot(dto.Coordinate.SubSlot),
	)
	if err != nil {
		return nil, err
	}

	return yard.RestorePosition(id, coordinate, containerID, dto.AutoAssigned, dto.CreatedAt)
}
