package workorder_test

import (
	"testing"

	"yard/internal/core/domain/model/workorder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		for _, status := range []workorder.Status{
			workorder.Pending, workorder.Assigned, workorder.Completed, workorder.Cancelled,
		} {
			require.NoError(t, status.Validate(), status.String())
		}
	})

	t.Run("unknown and out-of-range fail", func(t *testing.T) {
		require.Error(t, workorder.StatusUnknown.Validate())
		require.Error(t, workorder.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", workorder.Pending.String())
	assert.Equal(t, "Assigned", workorder.Assigned.String())
	assert.Equal(t, "Completed", workorder.Completed.String())
	assert.Equal(t, "Cancelled", workorder.Cancelled.String())
	assert.Equal(t, "Unknown", workorder.StatusUnknown.String())
	assert.Equal(t, "Unknown", workorder.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round-trips valid names", func(t *testing.T) {
		status, err := workorder.StatusFromString("Assigned")

		require.NoError(t, err)
		assert.Equal(t, workorder.Assigned, status)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := workorder.StatusFromString("InFlight")
		require.Error(t, err)

		_, err = workorder.StatusFromString("Unknown")
		require.Error(t, err)
	})
}

func TestStatus_Assign(t *testing.T) {
	t.Run("Pending can be assigned", func(t *testing.T) {
		status, err := workorder.Pending.Assign()

		require.NoError(t, err)
		assert.Equal(t, workorder.Assigned, status)
	})

	t.Run("Assigned can be reassigned", func(t *testing.T) {
		status, err := workorder.Assigned.Assign()

		require.NoError(t, err)
		assert.Equal(t, workorder.Assigned, status)
	})

	t.Run("terminal statuses cannot be assigned", func(t *testing.T) {
		_, err := workorder.Completed.Assign()
		require.Error(t, err)

		_, err = workorder.Cancelled.Assign()
		require.Error(t, err)
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("Assigned can complete", func(t *testing.T) {
		status, err := workorder.Assigned.Complete()

		require.NoError(t, err)
		assert.Equal(t, workorder.Completed, status)
	})

	t.Run("Pending cannot complete without assignment", func(t *testing.T) {
		_, err := workorder.Pending.Complete()
		require.Error(t, err)
	})

	t.Run("Completed is terminal", func(t *testing.T) {
		_, err := workorder.Completed.Complete()
		require.Error(t, err)

		_, err = workorder.Completed.Assign()
		require.Error(t, err)

		_, err = workorder.Completed.Cancel()
		require.Error(t, err)
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("Pending and Assigned can cancel", func(t *testing.T) {
		status, err := workorder.Pending.Cancel()
		require.NoError(t, err)
		assert.Equal(t, workorder.Cancelled, status)

		status, err = workorder.Assigned.Cancel()
		require.NoError(t, err)
		assert.Equal(t, workorder.Cancelled, status)
	})

	t.Run("Cancelled is terminal", func(t *testing.T) {
		_, err := workorder.Cancelled.Cancel()
		require.Error(t, err)

		_, err = workorder.Cancelled.Assign()
		require.Error(t, err)
	})

	t.Run("Unknown cannot cancel", func(t *testing.T) {
		_, err := workorder.StatusUnknown.Cancel()
		require.Error(t, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, workorder.Completed.IsTerminal())
	assert.True(t, workorder.Cancelled.IsTerminal())
	assert.False(t, workorder.Pending.IsTerminal())
	assert.False(t, workorder.Assigned.IsTerminal())
}

func TestPriority(t *testing.T) {
	t.Run("ordering", func(t *testing.T) {
		assert.Less(t, workorder.Low, workorder.Medium)
		assert.Less(t, workorder.Medium, workorder.High)
		assert.Less(t, workorder.High, workorder.Urgent)
	})

	t.Run("Validate", func(t *testing.T) {
		require.NoError(t, workorder.Urgent.Validate())
		require.Error(t, workorder.PriorityUnknown.Validate())
		require.Error(t, workorder.Priority(42).Validate())
	})

	t.Run("PriorityFromString round-trips", func(t *testing.T) {
		priority, err := workorder.PriorityFromString("Urgent")

		require.NoError(t, err)
		assert.Equal(t, workorder.Urgent, priority)

		_, err = workorder.PriorityFromString("Critical")
		require.Error(t, err)
	})
}
