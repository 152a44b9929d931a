//go:build unit

package schedule_test

import (
	"testing"

	"roomboard/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stdWindow(t *testing.T) schedule.BusinessWindow {
	t.Helper()
	window, err := schedule.NewBusinessWindow("08:00", "20:00", 15, 30)
	require.NoError(t, err)
	return window
}

func TestFindNextSlots(t *testing.T) {
	window := stdWindow(t)

	t.Run("before opening on an empty day the first slot starts at open", func(t *testing.T) {
		now := tp(t, "2025-11-13 07:00:00")
		slots, err := schedule.FindNextSlots(now, now, window, 30, 3, nil)
		require.NoError(t, err)
		require.Len(t, slots, 3)
		assert.Equal(t, tp(t, "2025-11-13 08:00:00"), slots[0].Start())
		assert.Equal(t, tp(t, "2025-11-13 08:30:00"), slots[0].End())
	})

	t.Run("now is rounded up to the next granularity multiple", func(t *testing.T) {
		now := tp(t, "2025-11-13 09:05:00")
		slots, err := schedule.FindNextSlots(now, now, window, 30, 1, nil)
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, tp(t, "2025-11-13 09:15:00"), slots[0].Start())
	})

	t.Run("trailing seconds carry into the next step", func(t *testing.T) {
		now := tp(t, "2025-11-13 09:15:01")
		slots, err := schedule.FindNextSlots(now, now, window, 30, 1, nil)
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, tp(t, "2025-11-13 09:30:00"), slots[0].Start())
	})

	t.Run("now exactly on a grid point is its own search start", func(t *testing.T) {
		now := tp(t, "2025-11-13 09:15:00")
		slots, err := schedule.FindNextSlots(now, now, window, 30, 1, nil)
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, now, slots[0].Start())
	})

	t.Run("other days start at the window open", func(t *testing.T) {
		now := tp(t, "2025-11-13 19:55:00")
		tomorrow := tp(t, "2025-11-14 00:00:00")
		slots, err := schedule.FindNextSlots(now, tomorrow, window, 30, 1, nil)
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, tp(t, "2025-11-14 08:00:00"), slots[0].Start())
	})

	t.Run("consecutive free slots overlap at granularity steps", func(t *testing.T) {
		now := tp(t, "2025-11-13 09:00:00")
		slots, err := schedule.FindNextSlots(now, now, window, 30, 2, nil)
		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, tp(t, "2025-11-13 09:00:00"), slots[0].Start())
		assert.Equal(t, tp(t, "2025-11-13 09:15:00"), slots[1].Start())
		assert.True(t, slots[0].Overlaps(slots[1]))
	})

	t.Run("results are conflict-free and inside the window", func(t *testing.T) {
		existing := []schedule.Interval{
			iv(t, "2025-11-13 09:00:00", "2025-11-13 10:00:00"),
			iv(t, "2025-11-13 11:00:00", "2025-11-13 12:30:00"),
		}
		now := tp(t, "2025-11-13 08:40:00")
		slots, err := schedule.FindNextSlots(now, now, window, 45, 10, existing)
		require.NoError(t, err)
		require.NotEmpty(t, slots)
		open := window.OpenOn(now)
		close := window.CloseOn(now)
		for _, slot := range slots {
			_, conflict := schedule.FindConflict(slot, existing)
			assert.False(t, conflict, "slot %s-%s", slot.Start(), slot.End())
			assert.False(t, slot.Start().Before(open))
			assert.False(t, slot.End().After(close))
		}
		// 08:45 would run into the 09:00 booking; 10:00 is the first fit.
		assert.Equal(t, tp(t, "2025-11-13 10:00:00"), slots[0].Start())
	})

	t.Run("a slot may touch an existing booking", func(t *testing.T) {
		existing := []schedule.Interval{iv(t, "2025-11-13 10:00:00", "2025-11-13 11:00:00")}
		now := tp(t, "2025-11-13 09:30:00")
		slots, err := schedule.FindNextSlots(now, now, window, 30, 1, existing)
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, tp(t, "2025-11-13 09:30:00"), slots[0].Start())
		assert.Equal(t, tp(t, "2025-11-13 10:00:00"), slots[0].End())
	})

	t.Run("no slot may end past closing", func(t *testing.T) {
		now := tp(t, "2025-11-13 19:25:00")
		slots, err := schedule.FindNextSlots(now, now, window, 30, 5, nil)
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, tp(t, "2025-11-13 19:30:00"), slots[0].Start())
		assert.Equal(t, tp(t, "2025-11-13 20:00:00"), slots[0].End())
	})

	t.Run("too late in the day yields nothing", func(t *testing.T) {
		now := tp(t, "2025-11-13 19:40:00")
		slots, err := schedule.FindNextSlots(now, now, window, 30, 5, nil)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("fully booked day yields an empty list, not an error", func(t *testing.T) {
		existing := []schedule.Interval{iv(t, "2025-11-13 08:00:00", "2025-11-13 20:00:00")}
		now := tp(t, "2025-11-13 08:00:00")
		slots, err := schedule.FindNextSlots(now, now, window, 30, 5, existing)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("round-the-clock window searches the whole day", func(t *testing.T) {
		allHours, err := schedule.NewBusinessWindow("00:00", "24:00", 15, 30)
		require.NoError(t, err)
		now := tp(t, "2025-11-13 23:00:00")
		slots, err := schedule.FindNextSlots(now, now, allHours, 60, 1, nil)
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, tp(t, "2025-11-13 23:00:00"), slots[0].Start())
		assert.Equal(t, tp(t, "2025-11-14 00:00:00"), slots[0].End())
	})

	t.Run("invalid search configuration fails fast", func(t *testing.T) {
		now := tp(t, "2025-11-13 09:00:00")
		cases := []struct {
			name               string
			duration, maxCount int
		}{
			{"zero duration", 0, 3},
			{"negative duration", -30, 3},
			{"zero max results", 30, 0},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := schedule.FindNextSlots(now, now, window, c.duration, c.maxCount, nil)
				require.ErrorIs(t, err, schedule.ErrInvalidWindow)
			})
		}
	})

	t.Run("zero-value window fails fast instead of looping", func(t *testing.T) {
		now := tp(t, "2025-11-13 09:00:00")
		_, err := schedule.FindNextSlots(now, now, schedule.BusinessWindow{}, 30, 3, nil)
		require.ErrorIs(t, err, schedule.ErrInvalidWindow)
	})
}
