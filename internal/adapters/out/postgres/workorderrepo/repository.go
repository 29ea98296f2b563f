package workorderrepo

import (
	"context"
	"errors"

	"yard/internal/core/domain/model/kernel"
	"yard/internal/core/domain/model/workorder"
	"yard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWorkOrderRepository implements WorkOrderRepository using GORM.
type GormWorkOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWorkOrderRepository creates a new GORM work order repository.
func NewGormWorkOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkOrderRepository {
	return &GormWorkOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new work order to the database.
func (r *GormWorkOrderRepository) Add(ctx context.Context, aggregate *workorder.WorkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing work order to the database. Columns are named
// explicitly so clearing the vehicle or keeping a zero completion time is
// not silently skipped by the struct update.
func (r *GormWorkOrderRepository) Update(ctx context.Context, aggregate *workorder.WorkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&WorkOrderDTO{}).
		Where("id = ?", dto.ID).
		Select("vehicle_id", "priority", "status", "completed_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a work order by ID.
func (r *GormWorkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("work order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetFirstPendingUnassigned retrieves the pending work order that should be
// dispatched next: highest priority first, then earliest created.
func (r *GormWorkOrderRepository) GetFirstPendingUnassigned(ctx context.Context) (*workorder.WorkOrder, error) {
	var dto WorkOrderDTO
	err := r.db.WithContext(ctx).
		Order("priority DESC, created_at ASC").
		First(&dto, "status = ? AND vehicle_id IS NULL", workorder.Pending).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("work order", "first pending unassigned")
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInAssignedStatus retrieves all work orders with Assigned status.
func (r *GormWorkOrderRepository) GetAllInAssignedStatus(ctx context.Context) ([]*workorder.WorkOrder, error) {
	var dtos []WorkOrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", workorder.Assigned).Error; err != nil {
		return nil, err
	}

	orders := make([]*workorder.WorkOrder, 0, len(dtos))
	for _, dto := range dtos {
		order, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// GetOpenByContainer retrieves the open work order referencing the container.
func (r *GormWorkOrderRepository) GetOpenByContainer(ctx context.Context, containerID kernel.UUID) (*workorder.WorkOrder, error) {
	if err := containerID.Validate(); err != nil {
		return nil, err
	}

	var dto WorkOrderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "container_id = ? AND status IN ?",
			containerID.Bytes(), []int{int(workorder.Pending), int(workorder.Assigned)}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("work order", containerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
