package services_test

import (
	"testing"

	"yard/internal/core/domain/model/container"
	"yard/internal/core/domain/model/kernel"
	"yard/internal/core/domain/model/yard"
	"yard/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillGroundTier(t *testing.T, grid *yard.Grid, loadState container.LoadState) {
	t.Helper()
	for row := kernel.RowMin; row <= kernel.RowMax; row++ {
		for bay := kernel.BayMin; bay <= kernel.BayMax; bay++ {
			for _, subSlot := range kernel.SubSlots() {
				place(t, grid, coordinateAt(t, row, bay, 1, subSlot), newContainer(t, container.Half, loadState))
			}
		}
	}
}

func TestPlacementSuggester_Suggest(t *testing.T) {
	suggester := services.NewPlacementSuggester()

	t.Run("empty yard suggests a ground slot for a full laden container", func(t *testing.T) {
		grid := yard.NewGrid()
		cont := newContainer(t, container.Full, container.Laden)

		suggestion, err := suggester.Suggest(grid, cont, nil)

		require.NoError(t, err)
		assert.Equal(t, kernel.TierMin, suggestion.Primary.Tier())
		assert.Equal(t, "nearest vacant ground slot", suggestion.Reason)
		assert.Len(t, suggestion.Alternatives, 3)
	})

	t.Run("full containers are only offered the first half of a bay", func(t *testing.T) {
		grid := yard.NewGrid()
		cont := newContainer(t, container.Full, container.Empty)

		suggestion, err := suggester.Suggest(grid, cont, nil)

		require.NoError(t, err)
		assert.Equal(t, kernel.SubSlotA, suggestion.Primary.SubSlot())
		for _, alternative := range suggestion.Alternatives {
			assert.Equal(t, kernel.SubSlotA, alternative.SubSlot())
		}
	})

	t.Run("every suggested coordinate passes the stacking rules", func(t *testing.T) {
		grid := yard.NewGrid()
		place(t, grid, coordinateAt(t, 1, 1, 1, kernel.SubSlotA), newContainer(t, container.Half, container.Laden))
		place(t, grid, coordinateAt(t, 1, 2, 1, kernel.SubSlotA), newContainer(t, container.Full, container.Laden))
		cont := newContainer(t, container.Half, container.Laden)

		suggestion, err := suggester.Suggest(grid, cont, nil)

		require.NoError(t, err)
		validator := services.NewStackingValidator()
		assert.NoError(t, validator.Validate(grid, suggestion.Primary, cont))
		for _, alternative := range suggestion.Alternatives {
			assert.NoError(t, validator.Validate(grid, alternative, cont))
		}
	})

	t.Run("prefers slots next to containers of the same owner", func(t *testing.T) {
		grid := yard.NewGrid()
		ownerID := kernel.NewUUID()
		place(t, grid, coordinateAt(t, 1, 5, 1, kernel.SubSlotA), ownedContainer(t, ownerID, container.Half, container.Laden))
		cont := ownedContainer(t, ownerID, container.Half, container.Laden)

		suggestion, err := suggester.Suggest(grid, cont, nil)

		require.NoError(t, err)
		assert.Equal(t, "grouped with same-company containers", suggestion.Reason)
		assert.Equal(t, kernel.Row(1), suggestion.Primary.Row())
		assert.InDelta(t, 5, int(suggestion.Primary.Bay()), 1)
	})

	t.Run("unrelated owner gets the plain scan-order slot", func(t *testing.T) {
		grid := yard.NewGrid()
		place(t, grid, coordinateAt(t, 1, 5, 1, kernel.SubSlotA), newContainer(t, container.Half, container.Laden))

		suggestion, err := suggester.Suggest(grid, newContainer(t, container.Half, container.Laden), nil)

		require.NoError(t, err)
		assert.Equal(t, "A-01-01-1-A", suggestion.Primary.String())
	})

	t.Run("is deterministic for the same occupancy", func(t *testing.T) {
		grid := yard.NewGrid()
		place(t, grid, coordinateAt(t, 2, 3, 1, kernel.SubSlotB), newContainer(t, container.Half, container.Empty))
		cont := newContainer(t, container.Half, container.Empty)

		first, err := suggester.Suggest(grid, cont, nil)
		require.NoError(t, err)
		second, err := suggester.Suggest(grid, cont, nil)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("honors the zone preference", func(t *testing.T) {
		grid := yard.NewGrid()
		zone := kernel.ZoneA
		cont := newContainer(t, container.Half, container.Empty)

		suggestion, err := suggester.Suggest(grid, cont, &zone)

		require.NoError(t, err)
		assert.Equal(t, kernel.ZoneA, suggestion.Primary.Zone())
	})

	t.Run("fails when constraints rule out every vacancy", func(t *testing.T) {
		grid := yard.NewGrid()
		fillGroundTier(t, grid, container.Empty)

		// Vacancies remain above ground, but a laden container may not rest
		// on the empty ground layer.
		_, err := suggester.Suggest(grid, newContainer(t, container.Half, container.Laden), nil)

		assert.ErrorIs(t, err, services.ErrNoAvailablePositions)
	})

	t.Run("fails when the yard is completely full", func(t *testing.T) {
		grid := yard.NewGrid()
		for row := kernel.RowMin; row <= kernel.RowMax; row++ {
			for bay := kernel.BayMin; bay <= kernel.BayMax; bay++ {
				for tier := kernel.TierMin; tier <= kernel.TierMax; tier++ {
					place(t, grid, coordinateAt(t, row, bay, tier, kernel.SubSlotA), newContainer(t, container.Full, container.Laden))
				}
			}
		}
		require.Zero(t, len(grid.ListVacant(yard.VacancyFilter{})))

		_, err := suggester.Suggest(grid, newContainer(t, container.Half, container.Empty), nil)

		assert.ErrorIs(t, err, services.ErrNoAvailablePositions)
	})

	t.Run("rejects nil container", func(t *testing.T) {
		_, err := suggester.Suggest(yard.NewGrid(), nil, nil)

		assert.ErrorIs(t, err, container.ErrContainerIsNotConstructed)
	})
}
