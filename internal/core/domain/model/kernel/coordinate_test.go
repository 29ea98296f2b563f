package kernel_test

import (
	"testing"

	"yard/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinate(t *testing.T) {
	t.Run("should create valid coordinate with all valid parts", func(t *testing.T) {
		coord, err := kernel.NewCoordinate(kernel.ZoneA, 3, 12, 2, kernel.SubSlotB)

		require.NoError(t, err)
		require.NoError(t, coord.Validate())
		assert.Equal(t, kernel.ZoneA, coord.Zone())
		assert.Equal(t, kernel.Row(3), coord.Row())
		assert.Equal(t, kernel.Bay(12), coord.Bay())
		assert.Equal(t, kernel.Tier(2), coord.Tier())
		assert.Equal(t, kernel.SubSlotB, coord.SubSlot())
	})

	t.Run("should accept boundary values", func(t *testing.T) {
		_, err := kernel.NewCoordinate(kernel.ZoneA, kernel.RowMin, kernel.BayMin, kernel.TierMin, kernel.SubSlotA)
		require.NoError(t, err)

		_, err = kernel.NewCoordinate(kernel.ZoneA, kernel.RowMax, kernel.BayMax, kernel.TierMax, kernel.SubSlotB)
		require.NoError(t, err)
	})

	t.Run("should fail with reserved zone", func(t *testing.T) {
		_, err := kernel.NewCoordinate("B", 1, 1, 1, kernel.SubSlotA)

		require.ErrorIs(t, err, kernel.ErrInvalidZone)
	})

	t.Run("should fail with row out of range", func(t *testing.T) {
		_, err := kernel.NewCoordinate(kernel.ZoneA, kernel.RowMax+1, 1, 1, kernel.SubSlotA)
		require.ErrorIs(t, err, kernel.ErrInvalidRow)

		_, err = kernel.NewCoordinate(kernel.ZoneA, 0, 1, 1, kernel.SubSlotA)
		require.ErrorIs(t, err, kernel.ErrInvalidRow)
	})

	t.Run("should fail with bay out of range", func(t *testing.T) {
		_, err := kernel.NewCoordinate(kernel.ZoneA, 1, kernel.BayMax+1, 1, kernel.SubSlotA)
		require.ErrorIs(t, err, kernel.ErrInvalidBay)
	})

	t.Run("should fail with tier out of range", func(t *testing.T) {
		_, err := kernel.NewCoordinate(kernel.ZoneA, 1, 1, kernel.TierMax+1, kernel.SubSlotA)
		require.ErrorIs(t, err, kernel.ErrInvalidTier)

		_, err = kernel.NewCoordinate(kernel.ZoneA, 1, 1, 0, kernel.SubSlotA)
		require.ErrorIs(t, err, kernel.ErrInvalidTier)
	})

	t.Run("should fail with invalid sub-slot", func(t *testing.T) {
		_, err := kernel.NewCoordinate(kernel.ZoneA, 1, 1, 1, "C")
		require.ErrorIs(t, err, kernel.ErrInvalidSubSlot)
	})

	t.Run("should aggregate multiple part errors", func(t *testing.T) {
		_, err := kernel.NewCoordinate("Z", 0, 99, 9, "X")

		require.ErrorIs(t, err, kernel.ErrInvalidZone)
		require.ErrorIs(t, err, kernel.ErrInvalidRow)
		require.ErrorIs(t, err, kernel.ErrInvalidBay)
		require.ErrorIs(t, err, kernel.ErrInvalidTier)
		require.ErrorIs(t, err, kernel.ErrInvalidSubSlot)
	})
}

func TestCoordinate_String(t *testing.T) {
	t.Run("should render canonical form with zero-padded row and bay", func(t *testing.T) {
		coord, _ := kernel.NewCoordinate(kernel.ZoneA, 3, 12, 2, kernel.SubSlotB)

		assert.Equal(t, "A-03-12-2-B", coord.String())
	})

	t.Run("should round-trip through ParseCoordinate", func(t *testing.T) {
		coord, _ := kernel.NewCoordinate(kernel.ZoneA, 20, 40, 4, kernel.SubSlotA)

		parsed, err := kernel.ParseCoordinate(coord.String())

		require.NoError(t, err)
		equal, err := parsed.IsEqual(coord)
		require.NoError(t, err)
		assert.True(t, equal)
	})
}

func TestParseCoordinate(t *testing.T) {
	t.Run("should parse without leading zeros", func(t *testing.T) {
		coord, err := kernel.ParseCoordinate("A-3-12-2-B")

		require.NoError(t, err)
		assert.Equal(t, "A-03-12-2-B", coord.String())
	})

	t.Run("should fail with wrong part count", func(t *testing.T) {
		_, err := kernel.ParseCoordinate("A-3-12-2")
		require.Error(t, err)
	})

	t.Run("should fail with non-numeric row", func(t *testing.T) {
		_, err := kernel.ParseCoordinate("A-x-12-2-B")
		require.ErrorIs(t, err, kernel.ErrInvalidRow)
	})

	t.Run("should fail with out-of-range parts", func(t *testing.T) {
		_, err := kernel.ParseCoordinate("A-99-12-2-B")
		require.ErrorIs(t, err, kernel.ErrInvalidRow)
	})

	t.Run("should fail with parts beyond the int8 range", func(t *testing.T) {
		// 259, 296 and 257 would land back in range if narrowed modulo 256.
		_, err := kernel.ParseCoordinate("A-259-12-2-B")
		require.ErrorIs(t, err, kernel.ErrInvalidRow)

		_, err = kernel.ParseCoordinate("A-03-296-2-B")
		require.ErrorIs(t, err, kernel.ErrInvalidBay)

		_, err = kernel.ParseCoordinate("A-03-12-257-B")
		require.ErrorIs(t, err, kernel.ErrInvalidTier)
	})
}

func TestRowBayTierFromInt(t *testing.T) {
	t.Run("should convert in-range values", func(t *testing.T) {
		row, err := kernel.RowFromInt(3)
		require.NoError(t, err)
		assert.Equal(t, kernel.Row(3), row)

		bay, err := kernel.BayFromInt(40)
		require.NoError(t, err)
		assert.Equal(t, kernel.BayMax, bay)

		tier, err := kernel.TierFromInt(1)
		require.NoError(t, err)
		assert.Equal(t, kernel.TierMin, tier)
	})

	t.Run("should reject out-of-range values", func(t *testing.T) {
		_, err := kernel.RowFromInt(0)
		require.ErrorIs(t, err, kernel.ErrInvalidRow)

		_, err = kernel.BayFromInt(41)
		require.ErrorIs(t, err, kernel.ErrInvalidBay)

		_, err = kernel.TierFromInt(257)
		require.ErrorIs(t, err, kernel.ErrInvalidTier)
	})
}

func TestCoordinate_BelowAbove(t *testing.T) {
	t.Run("Below returns the supporting slot", func(t *testing.T) {
		coord, _ := kernel.NewCoordinate(kernel.ZoneA, 1, 1, 3, kernel.SubSlotA)

		below, ok := coord.Below()

		require.True(t, ok)
		assert.Equal(t, kernel.Tier(2), below.Tier())
		assert.Equal(t, coord.Row(), below.Row())
		assert.Equal(t, coord.Bay(), below.Bay())
		assert.Equal(t, coord.SubSlot(), below.SubSlot())
	})

	t.Run("Below has no result at ground level", func(t *testing.T) {
		coord, _ := kernel.NewCoordinate(kernel.ZoneA, 1, 1, kernel.TierMin, kernel.SubSlotA)

		_, ok := coord.Below()

		assert.False(t, ok)
	})

	t.Run("Above has no result at maximum tier", func(t *testing.T) {
		coord, _ := kernel.NewCoordinate(kernel.ZoneA, 1, 1, kernel.TierMax, kernel.SubSlotA)

		_, ok := coord.Above()

		assert.False(t, ok)
	})

	t.Run("Above returns the next tier", func(t *testing.T) {
		coord, _ := kernel.NewCoordinate(kernel.ZoneA, 1, 1, 1, kernel.SubSlotA)

		above, ok := coord.Above()

		require.True(t, ok)
		assert.Equal(t, kernel.Tier(2), above.Tier())
	})
}

func TestCoordinate_Compare(t *testing.T) {
	mustCoordinate := func(row kernel.Row, bay kernel.Bay, tier kernel.Tier, subSlot kernel.SubSlot) kernel.Coordinate {
		coord, err := kernel.NewCoordinate(kernel.ZoneA, row, bay, tier, subSlot)
		require.NoError(t, err)
		return coord
	}

	t.Run("orders by row then bay then tier then subSlot", func(t *testing.T) {
		assert.Negative(t, mustCoordinate(1, 1, 1, kernel.SubSlotA).Compare(mustCoordinate(2, 1, 1, kernel.SubSlotA)))
		assert.Negative(t, mustCoordinate(1, 1, 1, kernel.SubSlotA).Compare(mustCoordinate(1, 2, 1, kernel.SubSlotA)))
		assert.Negative(t, mustCoordinate(1, 1, 1, kernel.SubSlotA).Compare(mustCoordinate(1, 1, 2, kernel.SubSlotA)))
		assert.Negative(t, mustCoordinate(1, 1, 1, kernel.SubSlotA).Compare(mustCoordinate(1, 1, 1, kernel.SubSlotB)))
		assert.Zero(t, mustCoordinate(1, 1, 1, kernel.SubSlotA).Compare(mustCoordinate(1, 1, 1, kernel.SubSlotA)))
		assert.Positive(t, mustCoordinate(2, 1, 1, kernel.SubSlotA).Compare(mustCoordinate(1, 40, 4, kernel.SubSlotB)))
	})
}

func TestCoordinate_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var coord kernel.Coordinate

		err := coord.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "coordinate must be created")
	})

	t.Run("IsEqual fails for unconstructed coordinate", func(t *testing.T) {
		valid, _ := kernel.NewCoordinate(kernel.ZoneA, 1, 1, 1, kernel.SubSlotA)
		var invalid kernel.Coordinate

		_, err := valid.IsEqual(invalid)

		require.Error(t, err)
	})
}

func TestSubSlot_Opposite(t *testing.T) {
	assert.Equal(t, kernel.SubSlotB, kernel.SubSlotA.Opposite())
	assert.Equal(t, kernel.SubSlotA, kernel.SubSlotB.Opposite())
}
