// Package workorderrepo provides data transfer objects and mapping functions
// for work order persistence. This package implements the repository pattern
// for the work order aggregate, handling the conversion between domain
// entities and database representations.
package workorderrepo

import (
	"time"

	"yard/internal/core/domain/model/kernel"
	"yard/internal/core/domain/model/workorder"

	"github.com/google/uuid"
)

// WorkOrderDTO represents the database structure for persisting work order
// aggregates, indexed for the dispatch queries by status and priority.
type WorkOrderDTO struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Number      string        `gorm:"type:varchar(11);uniqueIndex"`
	ContainerID uuid.UUID     `gorm:"type:uuid;index"`
	VehicleID   *uuid.UUID    `gorm:"type:uuid;index"`
	Coordinate  CoordinateDTO `gorm:"embedded;embeddedPrefix:coordinate_"`
	Priority    int           `gorm:"index:idx_work_orders_dispatch"`
	Status      int           `gorm:"index:idx_work_orders_dispatch"`
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// TableName specifies the database table name for work order entities.
func (WorkOrderDTO) TableName() string {
	return "work_orders"
}

// CoordinateDTO represents the embedded target coordinate within the work_orders table.
type CoordinateDTO struct {
	Zone    string `gorm:"type:varchar(1)"`
	Row     int16  `gorm:"type:smallint"`
	Bay     int16  `gorm:"type:smallint"`
	Tier    int16  `gorm:"type:smallint"`
	SubSlot string `gorm:"type:varchar(1)"`
}

// fromDomain converts a work order domain aggregate to its database representation.
// Maps all attributes including the optional vehicle assignment and completion time.
func fromDomain(order *workorder.WorkOrder) WorkOrderDTO {
	var vehicleID *uuid.UUID
	if id := order.Vehicle(); id != nil {
		raw := id.Bytes()
		vehicleID = &raw
	}

	coordinate := order.Coordinate()

	return WorkOrderDTO{
		ID:          order.ID().Bytes(),
		Number:      order.Number(),
		ContainerID: order.ContainerID().Bytes(),
		VehicleID:   vehicleID,
		Coordinate: CoordinateDTO{
			Zone:    string(coordinate.Zone()),
			Row:     int16(coordinate.Row()),
			Bay:     int16(coordinate.Bay()),
			Tier:    int16(coordinate.Tier()),
			SubSlot: string(coordinate.SubSlot()),
		},
		Priority:    int(order.Priority()),
		Status:      int(order.Status()),
		CreatedAt:   order.CreatedAt(),
		CompletedAt: order.CompletedAt(),
	}
}

// toDomain converts a database DTO to a work order domain aggregate.
// Reconstructs the complete aggregate including status and vehicle assignment
// using RestoreWorkOrder.
func toDomain(dto WorkOrderDTO) (*workorder.WorkOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	containerID, err := kernel.UUIDFromBytes(dto.ContainerID[:])
	if err != nil {
		return nil, err
	}

	var vehicleID *kernel.UUID
	if dto.VehicleID != nil {
		vID, vehicleErr := kernel.UUIDFromBytes((*dto.VehicleID)[:])
		if vehicleErr != nil {
			return nil, vehicleErr
		}

		vehicleID = &vID
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

	return workorder.RestoreWorkOrder(
		id,
		dto.Number,
		coordinate,
		containerID,
		workorder.Priority(dto.Priority),
		workorder.Status(dto.Status),
		vehicleID,
		dto.CreatedAt,
		dto.CompletedAt,
	)
}
