package positionrepo

import (
	"context"
	"errors"

	"yard/internal/core/domain/model/kernel"
	"yard/internal/core/domain/model/yard"
	"yard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPositionRepository implements PositionRepository using GORM.
type GormPositionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPositionRepository creates a new GORM position repository.
func NewGormPositionRepository(db *gorm.DB, tracker aggregateTracker) *GormPositionRepository {
	return &GormPositionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new occupancy record to the database.
func (r *GormPositionRepository) Add(ctx context.Context, aggregate *yard.Position) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return yard.ErrPositionOccupied
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing occupancy record to the database.
func (r *GormPositionRepository) Update(ctx context.Context, aggregate *yard.Position) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PositionDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return yard.ErrPositionOccupied
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Remove deletes the occupancy record from the database.
func (r *GormPositionRepository) Remove(ctx context.Context, aggregate *yard.Position) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Delete(&PositionDTO{}, "id = ?", dto.ID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an occupancy record by ID.
func (r *GormPositionRepository) Get(ctx context.Context, id kernel.UUID) (*yard.Position, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PositionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("position", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByContainer retrieves the occupancy record for the given container.
func (r *GormPositionRepository) GetByContainer(ctx context.Context, containerID kernel.UUID) (*yard.Position, error) {
	if err := containerID.Validate(); err != nil {
		return nil, err
	}

	var dto PositionDTO
	if err := r.db.WithContext(ctx).First(&dto, "container_id = ?", containerID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("position", containerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every occupancy record.
func (r *GormPositionRepository) GetAll(ctx context.Context) ([]*yard.Position, error) {
	var dtos []PositionDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	positions := make([]*yard.Position, 0, len(dtos))
	for _, dto := range dtos {
		position, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		positions = append(positions, position)
	}

	return positions, nil
}
