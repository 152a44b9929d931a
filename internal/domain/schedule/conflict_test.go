//go:build unit

package schedule_test

import (
	"testing"

	"roomboard/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindConflict(t *testing.T) {
	t.Run("no existing bookings", func(t *testing.T) {
		_, found := schedule.FindConflict(iv(t, "2025-11-13 14:00:00", "2025-11-13 15:00:00"), nil)
		assert.False(t, found)
	})

	t.Run("proposed strictly inside a gap", func(t *testing.T) {
		existing := []schedule.Interval{
			iv(t, "2025-11-13 09:00:00", "2025-11-13 10:00:00"),
			iv(t, "2025-11-13 13:00:00", "2025-11-13 14:00:00"),
		}
		_, found := schedule.FindConflict(iv(t, "2025-11-13 10:30:00", "2025-11-13 11:30:00"), existing)
		assert.False(t, found)
	})

	t.Run("touching boundary is not a conflict", func(t *testing.T) {
		existing := []schedule.Interval{iv(t, "2025-11-13 13:30:00", "2025-11-13 14:00:00")}
		_, found := schedule.FindConflict(iv(t, "2025-11-13 14:00:00", "2025-11-13 15:00:00"), existing)
		assert.False(t, found)
	})

	t.Run("overlap returns the overlapping interval", func(t *testing.T) {
		overlapper := iv(t, "2025-11-13 14:30:00", "2025-11-13 15:30:00")
		conflict, found := schedule.FindConflict(iv(t, "2025-11-13 14:00:00", "2025-11-13 15:00:00"), []schedule.Interval{overlapper})
		require.True(t, found)
		assert.Equal(t, overlapper, conflict)
	})

	t.Run("multiple overlappers resolve to the earliest start", func(t *testing.T) {
		earliest := iv(t, "2025-11-13 13:30:00", "2025-11-13 14:30:00")
		existing := []schedule.Interval{
			iv(t, "2025-11-13 14:45:00", "2025-11-13 15:30:00"),
			earliest,
			iv(t, "2025-11-13 14:15:00", "2025-11-13 14:45:00"),
		}
		conflict, found := schedule.FindConflict(iv(t, "2025-11-13 14:00:00", "2025-11-13 15:00:00"), existing)
		require.True(t, found)
		assert.Equal(t, earliest, conflict)
	})
}
