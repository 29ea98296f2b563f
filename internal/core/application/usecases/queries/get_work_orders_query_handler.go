package queries

import (
	"context"
	"time"

	"yard/internal/core/domain/model/kernel"
	"yard/internal/core/domain/model/workorder"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWorkOrdersQueryHandler retrieves work orders from the database.
type GetWorkOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkOrdersQueryHandler creates a handler for work order queries.
// Requires a GORM database connection for query execution.
func NewGetWorkOrdersQueryHandler(db *gorm.DB) GetWorkOrdersQueryHandler {
	return GetWorkOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve work orders.
// Results come back newest first.
func (h GetWorkOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetWorkOrdersQuery,
) ([]GetWorkOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			number,
			container_id,
			vehicle_id,
			coordinate_zone,
			coordinate_row,
			coordinate_bay,
			coordinate_tier,
			coordinate_sub_slot,
			priority,
			status,
			created_at,
			completed_at
		FROM work_orders
	`
	args := make([]any, 0, 1)
	if status := query.Status(); status != nil {
		sql += " WHERE status = ?"
		args = append(args, *status)
	}
	sql += " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetWorkOrdersQueryResponse, 0)

	for rows.Next() {
		var id, containerID uuid.UUID
		var vehicleID *uuid.UUID
		var number, zone, subSlot string
		var row, bay, tier int16
		var priority, status int
		var createdAt time.Time
		var completedAt *time.Time

		err = rows.Scan(
			&id,
			&number,
			&containerID,
			&vehicleID,
			&zone,
			&row,
			&bay,
			&tier,
			&subSlot,
			&priority,
			&status,
			&createdAt,
			&completedAt,
		)
		if err != nil {
			return nil, err
		}

		orderResp, respErr := buildWorkOrderResponse(
			id, number, containerID, vehicleID,
			zone, row, bay, tier, subSlot,
			priority, status, createdAt, completedAt,
		)
		if respErr != nil {
			return nil, respErr
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func buildWorkOrderResponse(
	id uuid.UUID,
	number string,
	containerID uuid.UUID,
	vehicleID *uuid.UUID,
	zone string,
	row, bay, tier int16,
	subSlot string,
	priority, status int,
	createdAt time.Time,
	completedAt *time.Time,
) (GetWorkOrdersQueryResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetWorkOrdersQueryResponse{}, err
	}

	orderContainerID, err := kernel.UUIDFromBytes(containerID[:])
	if err != nil {
		return GetWorkOrdersQueryResponse{}, err
	}

	var orderVehicleID *kernel.UUID
	if vehicleID != nil {
		raw := *vehicleID
		kernelVehicleID, vErr := kernel.UUIDFromBytes(raw[:])
		if vErr != nil {
			return GetWorkOrdersQueryResponse{}, vErr
		}
		orderVehicleID = &kernelVehicleID
	}

	coordinate, err := kernel.NewCoordinate(
		kernel.Zone(zone),
		kernel.Row(row),
		kernel.Bay(bay),
		kernel.Tier(tier),
		kernel.SubSlot(subSlot),
	)
	if err != nil {
		return GetWorkOrdersQueryResponse{}, err
	}

	return GetWorkOrdersQueryResponse{
		ID:          orderID,
		Number:      number,
		ContainerID: orderContainerID,
		VehicleID:   orderVehicleID,
		Coordinate:  coordinate,
		Priority:    workorder.Priority(priority),
		Status:      workorder.Status(status),
		CreatedAt:   createdAt,
		CompletedAt: completedAt,
	}, nil
}
