package commands

import (
	"context"
	"errors"

	"yard/internal/core/domain/services"
	"yard/internal/pkg/errs"
)

// ErrWorkOrderNotFound is returned when a command references a work order
// that does not exist.
var ErrWorkOrderNotFound = errors.New("work order not found")

// AssignVehicleCommandHandler handles manual vehicle assignment.
// The vehicle must exist and be active; assigned orders may be reassigned to
// a different vehicle as long as they have not reached a terminal state.
//
// Example:
//
//	handler := NewAssignVehicleCommandHandler(uowFactory)
//	cmd, _ := NewAssignVehicleCommand(orderID, vehicleID)
//
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrVehicleInactive) {
//	    // pick another vehicle or leave the order pending
//	}
type AssignVehicleCommandHandler struct {
	uowFactory DispatchUoWFactory
	dispatcher services.VehicleDispatcher
}

// NewAssignVehicleCommandHandler creates a handler for manual vehicle assignment.
func NewAssignVehicleCommandHandler(uowFactory DispatchUoWFactory) AssignVehicleCommandHandler {
	return AssignVehicleCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewVehicleDispatcher(),
	}
}

// Handle processes the vehicle assignment command.
func (h AssignVehicleCommandHandler) Handle(ctx context.Context, command AssignVehicleCommand) error {
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

	vehicle, err := uow.VehicleRepository().Get(ctx, command.VehicleID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrVehicleNotFound
	}
	if err != nil {
		return err
	}

	if err = h.dispatcher.AssignVehicle(order, vehicle); err != nil {
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
