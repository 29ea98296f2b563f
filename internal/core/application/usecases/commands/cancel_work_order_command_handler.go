package commands

import (
	"context"
	"errors"

	"yard/internal/pkg/errs"
)

// CancelWorkOrderCommandHandler handles work order withdrawal.
// Only pending and assigned orders can be cancelled; terminal orders refuse
// the transition. Occupancy is never touched.
type CancelWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewCancelWorkOrderCommandHandler creates a handler for work order cancellation.
func NewCancelWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) CancelWorkOrderCommandHandler {
	return CancelWorkOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h CancelWorkOrderCommandHandler) Handle(ctx context.Context, command CancelWorkOrderCommand) error {
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

	if err = order.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
