package commands

import (
	"context"
	"errors"

	"yard/internal/core/domain/model/yard"
	"yard/internal/core/domain/services"
	"yard/internal/pkg/errs"
)

// MovePositionCommandHandler handles atomic container relocation.
// The grid performs unbind-validate-bind under one lock acquisition; the
// handler then persists the updated record and moves the container back in
// memory if persistence fails.
type MovePositionCommandHandler struct {
	uowFactory PlacementUoWFactory
	grid       *yard.Grid
	validator  services.StackingValidator
}

// NewMovePositionCommandHandler creates a handler for relocation operations.
func NewMovePositionCommandHandler(uowFactory PlacementUoWFactory, grid *yard.Grid) MovePositionCommandHandler {
	return MovePositionCommandHandler{
		uowFactory: uowFactory,
		grid:       grid,
		validator:  services.NewStackingValidator(),
	}
}

// Handle processes the relocation command.
// The stacking rules are re-checked at the destination with the container's
// old footprint already released, so a container can move within its own bay.
func (h MovePositionCommandHandler) Handle(ctx context.Context, command MovePositionCommand) error {
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

	positionRepo := uow.PositionRepository()

	position, err := positionRepo.Get(ctx, command.PositionID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrPositionNotFound
	}
	if err != nil {
		return err
	}

	cont, err := uow.ContainerRepository().Get(ctx, position.ContainerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrContainerNotFound
	}
	if err != nil {
		return err
	}

	from := position.Coordinate()

	moved, err := h.grid.Move(from, command.Coordinate(), func(view yard.OccupancyView) error {
		return h.validator.Validate(view, command.Coordinate(), cont)
	})
	if err != nil {
		return err
	}

	moveBack := func() {
		_, _ = h.grid.Move(command.Coordinate(), from, nil)
	}

	if err = positionRepo.Update(ctx, moved); err != nil {
		moveBack()
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		moveBack()
		return err
	}

	return nil
}
