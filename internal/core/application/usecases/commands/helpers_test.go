package commands_test

import (
	"fmt"
	"testing"

	"yard/internal/core/domain/model/container"
	"yard/internal/core/domain/model/kernel"
	"yard/internal/core/domain/model/vehicle"
	"yard/internal/core/domain/model/workorder"
	"yard/internal/core/domain/model/yard"

	"github.com/stretchr/testify/require"
)

var containerSequence int

func newTestContainer(t *testing.T, size container.Size, loadState container.LoadState) *container.Container {
	t.Helper()

	containerSequence++
	cont, err := container.NewContainer(
		kernel.NewUUID(),
		fmt.Sprintf("MSCU%07d", containerSequence),
		kernel.NewUUID(),
		size,
		loadState,
	)
	require.NoError(t, err)

	return cont
}

func mustCoordinate(t *testing.T, raw string) kernel.Coordinate {
	t.Helper()

	coordinate, err := kernel.ParseCoordinate(raw)
	require.NoError(t, err)

	return coordinate
}

func bindContainer(t *testing.T, grid *yard.Grid, raw string, cont *container.Container) *yard.Position {
	t.Helper()

	position, err := yard.NewPosition(kernel.NewUUID(), mustCoordinate(t, raw), cont.ID(), false)
	require.NoError(t, err)
	require.NoError(t, grid.Bind(position, cont, nil))

	return position
}

func newPendingOrder(t *testing.T, containerID kernel.UUID, raw string) *workorder.WorkOrder {
	t.Helper()

	order, err := workorder.NewWorkOrder(kernel.NewUUID(), mustCoordinate(t, raw), containerID, workorder.Medium)
	require.NoError(t, err)

	return order
}

func newActiveVehicle(t *testing.T, name string) *vehicle.Vehicle {
	t.Helper()

	v, err := vehicle.NewVehicle(kernel.NewUUID(), name)
	require.NoError(t, err)

	return v
}

func newInactiveVehicle(t *testing.T, name string) *vehicle.Vehicle {
	t.Helper()

	v, err := vehicle.RestoreVehicle(kernel.NewUUID(), name, false)
	require.NoError(t, err)

	return v
}
