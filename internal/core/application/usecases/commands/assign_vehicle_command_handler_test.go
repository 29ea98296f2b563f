package commands_test

import (
	"testing"

	"yard/internal/core/application/usecases/commands"
	"yard/internal/core/domain/model/kernel"
	"yard/internal/core/domain/model/workorder"
	"yard/internal/core/domain/services"
	"yard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignVehicleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	order := newPendingOrder(t, kernel.NewUUID(), "A-03-12-1-A")
	v := newActiveVehicle(t, "Reach Stacker 1")

	cmd, err := commands.NewAssignVehicleCommand(order.ID(), v.ID())
	require.NoError(t, err)

	orderRepo := new(MockWorkOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Get", ctx, v.ID()).Return(v, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*workorder.WorkOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignVehicleCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, workorder.Assigned, order.Status())
	require.NotNil(t, order.Vehicle())
	assert.True(t, order.Vehicle().IsEqual(v.ID()))
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestAssignVehicleCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AssignVehicleCommand{} // not constructed properly

	factory := new(MockDispatchUoWFactory)
	handler := commands.NewAssignVehicleCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAssignVehicleCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAssignVehicleCommandHandler_Handle_WorkOrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAssignVehicleCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockWorkOrderRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, cmd.OrderID()).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignVehicleCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrWorkOrderNotFound)
}

func TestAssignVehicleCommandHandler_Handle_VehicleNotFound(t *testing.T) {
	ctx := t.Context()
	order := newPendingOrder(t, kernel.NewUUID(), "A-03-12-1-A")
	cmd, err := commands.NewAssignVehicleCommand(order.ID(), kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockWorkOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Get", ctx, cmd.VehicleID()).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignVehicleCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrVehicleNotFound)
}

func TestAssignVehicleCommandHandler_Handle_InactiveVehicle(t *testing.T) {
	ctx := t.Context()
	order := newPendingOrder(t, kernel.NewUUID(), "A-03-12-1-A")
	v := newInactiveVehicle(t, "Broken Stacker")

	cmd, err := commands.NewAssignVehicleCommand(order.ID(), v.ID())
	require.NoError(t, err)

	orderRepo := new(MockWorkOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Get", ctx, v.ID()).Return(v, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignVehicleCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, services.ErrVehicleInactive)
	assert.Equal(t, workorder.Pending, order.Status())
	orderRepo.AssertNotCalled(t, "Update")
}

func TestAssignVehicleCommandHandler_Handle_CompletedOrderRefused(t *testing.T) {
	ctx := t.Context()
	order := newPendingOrder(t, kernel.NewUUID(), "A-03-12-1-A")
	helper := newActiveVehicle(t, "Reach Stacker 1")
	require.NoError(t, order.Assign(helper.ID()))
	require.NoError(t, order.Complete())

	v := newActiveVehicle(t, "Reach Stacker 2")
	cmd, err := commands.NewAssignVehicleCommand(order.ID(), v.ID())
	require.NoError(t, err)

	orderRepo := new(MockWorkOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Get", ctx, v.ID()).Return(v, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignVehicleCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	orderRepo.AssertNotCalled(t, "Update")
}
