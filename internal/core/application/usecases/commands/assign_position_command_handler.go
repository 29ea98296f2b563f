package commands

import (
	"context"
	"errors"

	"yard/internal/core/domain/model/yard"
	"yard/internal/core/domain/services"
	"yard/internal/pkg/errs"
)

var (
	// ErrContainerNotFound is returned when a command references a container
	// that is not registered.
	ErrContainerNotFound = errors.New("container not found")

	// ErrPositionNotFound is returned when a command references an occupancy
	// record that does not exist.
	ErrPositionNotFound = errors.New("position not found")
)

// AssignPositionCommandHandler handles direct container placement.
// Binds the container in the occupancy grid under the stacking rules, then
// persists the record. The grid bind is the serialization point: of two
// concurrent placements targeting the same coordinate exactly one wins.
//
// Example:
//
//	handler := NewAssignPositionCommandHandler(uowFactory, grid)
//	cmd, _ := NewAssignPositionCommand(kernel.NewUUID(), containerID, coordinate, false)
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, yard.ErrPositionOccupied):
//	    // slot was taken, pick another coordinate
//	case errors.Is(err, ErrContainerNotFound):
//	    // unknown container
//	}
type AssignPositionCommandHandler struct {
	uowFactory PlacementUoWFactory
	grid       *yard.Grid
	validator  services.StackingValidator
}

// NewAssignPositionCommandHandler creates a handler for direct placement operations.
// Requires a PlacementUoWFactory for transactional persistence and the shared
// occupancy grid.
func NewAssignPositionCommandHandler(uowFactory PlacementUoWFactory, grid *yard.Grid) AssignPositionCommandHandler {
	return AssignPositionCommandHandler{
		uowFactory: uowFactory,
		grid:       grid,
		validator:  services.NewStackingValidator(),
	}
}

// Handle processes the placement command.
// Validates the stacking rules inside the grid's critical section, persists
// the occupancy record, and releases the grid binding again if persistence
// fails so memory and storage stay consistent.
func (h AssignPositionCommandHandler) Handle(ctx context.Context, command AssignPositionCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cont, err := uow.ContainerRepository().Get(ctx, command.ContainerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrContainerNotFound
	}
	if err != nil {
		return err
	}

	position, err := yard.NewPosition(command.PositionID(), command.Coordinate(), cont.ID(), command.AutoAssigned())
	if err != nil {
		return err
	}

	err = h.grid.Bind(position, cont, func(view yard.OccupancyView) error {
		return h.validator.Validate(view, command.Coordinate(), cont)
	})
	if err != nil {
		return err
	}

	if err = uow.PositionRepository().Add(ctx, position); err != nil {
		_, _ = h.grid.Unbind(command.Coordinate())
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		_, _ = h.grid.Unbind(command.Coordinate())
		return err
	}

	return nil
}
