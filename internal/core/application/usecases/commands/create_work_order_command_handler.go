package commands

import (
	"context"
	"errors"

	"yard/internal/core/domain/model/workorder"
	"yard/internal/core/domain/model/yard"
	"yard/internal/core/domain/services"
	"yard/internal/pkg/errs"
)

// ErrVehicleNotFound is returned when a command references a vehicle that is
// not registered.
var ErrVehicleNotFound = errors.New("vehicle not found")

// CreateWorkOrderCommandHandler handles work order registration.
// Resolves the target coordinate through the suggestion engine when the
// caller did not pick one, and optionally attaches a vehicle right away.
//
// Creation is advisory with respect to occupancy: the coordinate is not
// reserved here. The stacking rules are re-checked when the order completes.
type CreateWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
	grid       *yard.Grid
	suggester  services.PlacementSuggester
	dispatcher services.VehicleDispatcher
}

// NewCreateWorkOrderCommandHandler creates a handler for work order registration.
// Requires a WorkOrderUoWFactory for transactional persistence and the shared
// occupancy grid for placement suggestions.
func NewCreateWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory, grid *yard.Grid) CreateWorkOrderCommandHandler {
	return CreateWorkOrderCommandHandler{
		uowFactory: uowFactory,
		grid:       grid,
		suggester:  services.NewPlacementSuggester(),
		dispatcher: services.NewVehicleDispatcher(),
	}
}

// Handle processes the work order registration command.
// Fails with ErrContainerNotFound for unknown containers and with
// yard.ErrContainerAlreadyPlaced when the container already occupies a slot.
func (h CreateWorkOrderCommandHandler) Handle(ctx context.Context, command CreateWorkOrderCommand) error {
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

	if h.grid.PositionOf(cont.ID()) != nil {
		return yard.ErrContainerAlreadyPlaced
	}

	coordinate := command.Coordinate()
	if coordinate == nil {
		suggestion, suggestErr := h.suggester.Suggest(h.grid, cont, nil)
		if suggestErr != nil {
			return suggestErr
		}

		coordinate = &suggestion.Primary
	}

	order, err := workorder.NewWorkOrder(command.OrderID(), *coordinate, cont.ID(), command.Priority())
	if err != nil {
		return err
	}

	if vehicleID := command.VehicleID(); vehicleID != nil {
		vehicle, vehicleErr := uow.VehicleRepository().Get(ctx, *vehicleID)
		if errors.Is(vehicleErr, errs.ErrObjectNotFound) {
			return ErrVehicleNotFound
		}
		if vehicleErr != nil {
			return vehicleErr
		}

		if err = h.dispatcher.AssignVehicle(order, vehicle); err != nil {
			return err
		}
	}

	if err = uow.WorkOrderRepository().Add(ctx, order); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
