package services_test

import (
	"fmt"
	"testing"

	"yard/internal/core/domain/model/container"
	"yard/internal/core/domain/model/kernel"
	"yard/internal/core/domain/model/yard"
	"yard/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var containerSequence int

func newContainer(t *testing.T, size container.Size, loadState container.LoadState) *container.Container {
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

func ownedContainer(t *testing.T, ownerID kernel.UUID, size container.Size, loadState container.LoadState) *container.Container {
	t.Helper()
	containerSequence++
	cont, err := container.NewContainer(
		kernel.NewUUID(),
		fmt.Sprintf("MSCU%07d", containerSequence),
		ownerID,
		size,
		loadState,
	)
	require.NoError(t, err)
	return cont
}

func coordinateAt(t *testing.T, row kernel.Row, bay kernel.Bay, tier kernel.Tier, subSlot kernel.SubSlot) kernel.Coordinate {
	t.Helper()
	coordinate, err := kernel.NewCoordinate(kernel.ZoneA, row, bay, tier, subSlot)
	require.NoError(t, err)
	return coordinate
}

func place(t *testing.T, grid *yard.Grid, coordinate kernel.Coordinate, cont *container.Container) {
	t.Helper()
	position, err := yard.NewPosition(kernel.NewUUID(), coordinate, cont.ID(), false)
	require.NoError(t, err)
	require.NoError(t, grid.Bind(position, cont, nil))
}

func TestStackingValidator_Validate(t *testing.T) {
	validator := services.NewStackingValidator()

	t.Run("ground slot in an empty yard is always valid", func(t *testing.T) {
		grid := yard.NewGrid()
		cont := newContainer(t, container.Full, container.Laden)

		err := validator.Validate(grid, coordinateAt(t, 1, 1, 1, kernel.SubSlotA), cont)

		assert.NoError(t, err)
	})

	t.Run("occupied slot is rejected first", func(t *testing.T) {
		grid := yard.NewGrid()
		target := coordinateAt(t, 1, 1, 1, kernel.SubSlotA)
		place(t, grid, target, newContainer(t, container.Half, container.Empty))

		err := validator.Validate(grid, target, newContainer(t, container.Half, container.Empty))

		assert.ErrorIs(t, err, yard.ErrPositionOccupied)
	})

	t.Run("full container is blocked by an occupant on either half", func(t *testing.T) {
		grid := yard.NewGrid()
		place(t, grid, coordinateAt(t, 1, 1, 1, kernel.SubSlotB), newContainer(t, container.Half, container.Empty))

		err := validator.Validate(grid, coordinateAt(t, 1, 1, 1, kernel.SubSlotA), newContainer(t, container.Full, container.Empty))

		assert.ErrorIs(t, err, yard.ErrPositionOccupied)
	})

	t.Run("elevated slot without support is rejected", func(t *testing.T) {
		grid := yard.NewGrid()

		err := validator.Validate(grid, coordinateAt(t, 1, 1, 2, kernel.SubSlotA), newContainer(t, container.Half, container.Empty))

		assert.ErrorIs(t, err, services.ErrNoSupport)
	})

	t.Run("half container may rest on a half support", func(t *testing.T) {
		grid := yard.NewGrid()
		place(t, grid, coordinateAt(t, 1, 1, 1, kernel.SubSlotA), newContainer(t, container.Half, container.Laden))

		err := validator.Validate(grid, coordinateAt(t, 1, 1, 2, kernel.SubSlotA), newContainer(t, container.Half, container.Laden))

		assert.NoError(t, err)
	})

	t.Run("half container may rest on a full support", func(t *testing.T) {
		grid := yard.NewGrid()
		place(t, grid, coordinateAt(t, 1, 1, 1, kernel.SubSlotA), newContainer(t, container.Full, container.Laden))

		err := validator.Validate(grid, coordinateAt(t, 1, 1, 2, kernel.SubSlotB), newContainer(t, container.Half, container.Laden))

		assert.NoError(t, err)
	})

	t.Run("full container over a single occupied half is a size violation", func(t *testing.T) {
		grid := yard.NewGrid()
		place(t, grid, coordinateAt(t, 1, 1, 1, kernel.SubSlotA), newContainer(t, container.Half, container.Laden))

		err := validator.Validate(grid, coordinateAt(t, 1, 1, 2, kernel.SubSlotA), newContainer(t, container.Full, container.Laden))

		assert.ErrorIs(t, err, services.ErrSizeIncompatibility)
	})

	t.Run("full container over two occupied halves is valid", func(t *testing.T) {
		grid := yard.NewGrid()
		place(t, grid, coordinateAt(t, 1, 1, 1, kernel.SubSlotA), newContainer(t, container.Half, container.Laden))
		place(t, grid, coordinateAt(t, 1, 1, 1, kernel.SubSlotB), newContainer(t, container.Half, container.Laden))

		err := validator.Validate(grid, coordinateAt(t, 1, 1, 2, kernel.SubSlotA), newContainer(t, container.Full, container.Laden))

		assert.NoError(t, err)
	})

	t.Run("laden container may not rest on an empty one", func(t *testing.T) {
		grid := yard.NewGrid()
		place(t, grid, coordinateAt(t, 1, 1, 1, kernel.SubSlotA), newContainer(t, container.Half, container.Empty))

		err := validator.Validate(grid, coordinateAt(t, 1, 1, 2, kernel.SubSlotA), newContainer(t, container.Half, container.Laden))

		assert.ErrorIs(t, err, services.ErrWeightDistributionViolation)
	})

	t.Run("load state pairings on top of a support", func(t *testing.T) {
		tests := []struct {
			name    string
			support container.LoadState
			placed  container.LoadState
			wantErr error
		}{
			{name: "empty on empty", support: container.Empty, placed: container.Empty, wantErr: nil},
			{name: "empty on laden", support: container.Laden, placed: container.Empty, wantErr: nil},
			{name: "laden on laden", support: container.Laden, placed: container.Laden, wantErr: nil},
			{name: "laden on empty", support: container.Empty, placed: container.Laden, wantErr: services.ErrWeightDistributionViolation},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				grid := yard.NewGrid()
				place(t, grid, coordinateAt(t, 1, 1, 1, kernel.SubSlotA), newContainer(t, container.Half, test.support))

				err := validator.Validate(grid, coordinateAt(t, 1, 1, 2, kernel.SubSlotA), newContainer(t, container.Half, test.placed))

				if test.wantErr != nil {
					assert.ErrorIs(t, err, test.wantErr)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("laden full container needs laden support under both halves", func(t *testing.T) {
		grid := yard.NewGrid()
		place(t, grid, coordinateAt(t, 1, 1, 1, kernel.SubSlotA), newContainer(t, container.Half, container.Laden))
		place(t, grid, coordinateAt(t, 1, 1, 1, kernel.SubSlotB), newContainer(t, container.Half, container.Empty))

		err := validator.Validate(grid, coordinateAt(t, 1, 1, 2, kernel.SubSlotA), newContainer(t, container.Full, container.Laden))

		assert.ErrorIs(t, err, services.ErrWeightDistributionViolation)
	})

	t.Run("rejects unconstructed coordinate", func(t *testing.T) {
		var coordinate kernel.Coordinate

		err := validator.Validate(yard.NewGrid(), coordinate, newContainer(t, container.Half, container.Empty))

		assert.Error(t, err)
	})

	t.Run("rejects nil container", func(t *testing.T) {
		err := validator.Validate(yard.NewGrid(), coordinateAt(t, 1, 1, 1, kernel.SubSlotA), nil)

		assert.ErrorIs(t, err, container.ErrContainerIsNotConstructed)
	})
}
