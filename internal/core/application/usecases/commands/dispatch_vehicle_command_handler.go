package commands

import (
	"context"
	"errors"

	"yard/internal/core/domain/services"
	"yard/internal/pkg/errs"
)

var (
	// ErrNoPendingWorkOrders is returned when nothing is waiting for dispatch.
	ErrNoPendingWorkOrders = errors.New("no pending work orders found")

	// ErrNoActiveVehicles is returned when no active vehicle is available.
	ErrNoActiveVehicles = errors.New("no active vehicles found")
)

// DispatchVehicleCommandHandler orchestrates automatic vehicle dispatch.
// Finds the next pending order and matches it with the least loaded active
// vehicle. Ensures transactional consistency when updating the order.
//
// Example:
//
//	handler := NewDispatchVehicleCommandHandler(uowFactory)
//	err := handler.Handle(ctx, NewDispatchVehicleCommand())
//	switch {
//	case errors.Is(err, ErrNoPendingWorkOrders):
//	    log.Println("Nothing to dispatch")
//	case errors.Is(err, ErrNoActiveVehicles):
//	    log.Println("All vehicles are out of service")
//	case err != nil:
//	    log.Printf("Dispatch failed: %v", err)
//	}
type DispatchVehicleCommandHandler struct {
	uowFactory DispatchUoWFactory
	dispatcher services.VehicleDispatcher
}

// NewDispatchVehicleCommandHandler creates a handler for automatic dispatch operations.
// Requires a DispatchUoWFactory for coordinating transactional updates across repositories.
func NewDispatchVehicleCommandHandler(uowFactory DispatchUoWFactory) DispatchVehicleCommandHandler {
	return DispatchVehicleCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewVehicleDispatcher(),
	}
}

// Handle processes the dispatch command.
// Retrieves the highest-priority pending order, the active vehicles and
// their current load, and uses the VehicleDispatcher to pick the best match.
// Returns ErrNoPendingWorkOrders or ErrNoActiveVehicles when either side of
// the match is missing.
func (h DispatchVehicleCommandHandler) Handle(ctx context.Context, command DispatchVehicleCommand) error {
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

	order, err := orderRepo.GetFirstPendingUnassigned(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPendingWorkOrders
	}
	if err != nil {
		return err
	}

	vehicles, err := uow.VehicleRepository().GetAllActive(ctx)
	if err != nil {
		return err
	}
	if len(vehicles) == 0 {
		return ErrNoActiveVehicles
	}

	openOrders, err := orderRepo.GetAllInAssignedStatus(ctx)
	if err != nil {
		return err
	}

	if _, err = h.dispatcher.Dispatch(order, vehicles, openOrders); err != nil {
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
