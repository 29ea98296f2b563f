package commands

import (
	"context"
	"errors"

	"yard/internal/core/domain/model/yard"
	"yard/internal/pkg/errs"
)

// RemovePositionCommandHandler handles the release of occupancy records.
// Unbinding is refused while another container rests on top of the occupant,
// preserving the support invariant of the stack.
type RemovePositionCommandHandler struct {
	uowFactory PlacementUoWFactory
	grid       *yard.Grid
}

// NewRemovePositionCommandHandler creates a handler for removal operations.
func NewRemovePositionCommandHandler(uowFactory PlacementUoWFactory, grid *yard.Grid) RemovePositionCommandHandler {
	return RemovePositionCommandHandler{
		uowFactory: uowFactory,
		grid:       grid,
	}
}

// Handle processes the removal command.
// Releases the grid binding first, deletes the stored record, and rebinds in
// memory if persistence fails.
func (h RemovePositionCommandHandler) Handle(ctx context.Context, command RemovePositionCommand) error {
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

	unbound, err := h.grid.Unbind(position.Coordinate())
	if err != nil {
		return err
	}

	rebind := func() {
		_ = h.grid.Bind(unbound, cont, nil)
	}

	if err = positionRepo.Remove(ctx, position); err != nil {
		rebind()
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		rebind()
		return err
	}

	return nil
}
