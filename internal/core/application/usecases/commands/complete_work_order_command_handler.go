package commands

import (
	"context"
	"errors"

	"yard/internal/core/domain/model/kernel"
	"yard/internal/core/domain/model/yard"
	"yard/internal/core/domain/services"
	"yard/internal/pkg/errs"
)

// CompleteWorkOrderCommandHandler handles the Assigned to Completed
// transition. Completion re-validates the target coordinate through the
// stacking rules inside the grid's critical section, because time may have
// passed since the order was created and another task may have filled a
// prerequisite slot or the same slot. Of two concurrent completions
// targeting the same coordinate exactly one succeeds; the other observes
// yard.ErrPositionOccupied as a retryable conflict.
type CompleteWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
	grid       *yard.Grid
	validator  services.StackingValidator
}

// NewCompleteWorkOrderCommandHandler creates a handler for work order completion.
func NewCompleteWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory, grid *yard.Grid) CompleteWorkOrderCommandHandler {
	return CompleteWorkOrderCommandHandler{
		uowFactory: uowFactory,
		grid:       grid,
		validator:  services.NewStackingValidator(),
	}
}

// Handle processes the completion command.
// Binds the container at the order's coordinate, marks the order completed,
// and persists both in one transaction. The grid binding is released again
// if persistence fails.
func (h CompleteWorkOrderCommandHandler) Handle(ctx context.Context, command CompleteWorkOrderCommand) error {
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

	orderRepo := uow.WorkOrderRepository()

	order, err := orderRepo.Get(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrWorkOrderNotFound
	}
	if err != nil {
		return err
	}

	cont, err := uow.ContainerRepository().Get(ctx, order.ContainerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrContainerNotFound
	}
	if err != nil {
		return err
	}

	if err = order.Complete(); err != nil {
		return err
	}

	position, err := yard.NewPosition(kernel.NewUUID(), order.Coordinate(), cont.ID(), false)
	if err != nil {
		return err
	}

	err = h.grid.Bind(position, cont, func(view yard.OccupancyView) error {
		return h.validator.Validate(view, order.Coordinate(), cont)
	})
	if err != nil {
		return err
	}

	unbind := func() {
		_, _ = h.grid.Unbind(order.Coordinate())
	}

	if err = uow.PositionRepository().Add(ctx, position); err != nil {
		unbind()
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		unbind()
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		unbind()
		return err
	}

	return nil
}
