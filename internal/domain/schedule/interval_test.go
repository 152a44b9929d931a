//go:build unit

package schedule_test

import (
	"testing"

	"roomboard/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInterval(t *testing.T) {
	t.Run("start before end", func(t *testing.T) {
		_, err := schedule.NewInterval(tp(t, "2025-11-13 09:00:00"), tp(t, "2025-11-13 10:00:00"))
		require.NoError(t, err)
	})

	t.Run("start equal to end rejected", func(t *testing.T) {
		point := tp(t, "2025-11-13 09:00:00")
		_, err := schedule.NewInterval(point, point)
		require.ErrorIs(t, err, schedule.ErrInvalidInterval)
	})

	t.Run("start after end rejected", func(t *testing.T) {
		_, err := schedule.NewInterval(tp(t, "2025-11-13 10:00:00"), tp(t, "2025-11-13 09:00:00"))
		require.ErrorIs(t, err, schedule.ErrInvalidInterval)
	})
}

func TestIntervalContains(t *testing.T) {
	interval := iv(t, "2025-11-13 09:00:00", "2025-11-13 10:00:00")

	assert.True(t, interval.Contains(tp(t, "2025-11-13 09:00:00")), "start is inclusive")
	assert.True(t, interval.Contains(tp(t, "2025-11-13 09:59:59")))
	assert.False(t, interval.Contains(tp(t, "2025-11-13 10:00:00")), "end is exclusive")
	assert.False(t, interval.Contains(tp(t, "2025-11-13 08:59:59")))
}

func TestIntervalOverlaps(t *testing.T) {
	base := iv(t, "2025-11-13 14:00:00", "2025-11-13 15:00:00")

	cases := []struct {
		name     string
		other    schedule.Interval
		overlaps bool
	}{
		{"touching before is not overlap", iv(t, "2025-11-13 13:30:00", "2025-11-13 14:00:00"), false},
		{"touching after is not overlap", iv(t, "2025-11-13 15:00:00", "2025-11-13 15:30:00"), false},
		{"partial overlap", iv(t, "2025-11-13 14:30:00", "2025-11-13 15:30:00"), true},
		{"contained", iv(t, "2025-11-13 14:15:00", "2025-11-13 14:45:00"), true},
		{"containing", iv(t, "2025-11-13 13:00:00", "2025-11-13 16:00:00"), true},
		{"disjoint", iv(t, "2025-11-13 16:00:00", "2025-11-13 17:00:00"), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.overlaps, base.Overlaps(c.other))
			assert.Equal(t, c.overlaps, c.other.Overlaps(base))
		})
	}
}

func TestMergeBlocks(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, schedule.MergeBlocks(nil))
	})

	t.Run("touching bookings share a block ending at the later end", func(t *testing.T) {
		blocks := schedule.MergeBlocks([]schedule.Interval{
			iv(t, "2025-11-13 09:00:00", "2025-11-13 10:00:00"),
			iv(t, "2025-11-13 10:00:00", "2025-11-13 11:30:00"),
		})
		require.Len(t, blocks, 1)
		assert.Equal(t, tp(t, "2025-11-13 09:00:00"), blocks[0].Start)
		assert.Equal(t, tp(t, "2025-11-13 11:30:00"), blocks[0].End)
	})

	t.Run("chain of three folds into one block", func(t *testing.T) {
		blocks := schedule.MergeBlocks([]schedule.Interval{
			iv(t, "2025-11-13 09:00:00", "2025-11-13 09:30:00"),
			iv(t, "2025-11-13 09:30:00", "2025-11-13 10:00:00"),
			iv(t, "2025-11-13 10:00:00", "2025-11-13 12:00:00"),
		})
		require.Len(t, blocks, 1)
		assert.Equal(t, tp(t, "2025-11-13 12:00:00"), blocks[0].End)
	})

	t.Run("gap starts a new block", func(t *testing.T) {
		blocks := schedule.MergeBlocks([]schedule.Interval{
			iv(t, "2025-11-13 09:00:00", "2025-11-13 10:00:00"),
			iv(t, "2025-11-13 10:15:00", "2025-11-13 11:00:00"),
		})
		require.Len(t, blocks, 2)
		assert.Equal(t, tp(t, "2025-11-13 10:00:00"), blocks[0].End)
		assert.Equal(t, tp(t, "2025-11-13 10:15:00"), blocks[1].Start)
	})

	t.Run("unsorted input is sorted before merging", func(t *testing.T) {
		blocks := schedule.MergeBlocks([]schedule.Interval{
			iv(t, "2025-11-13 10:00:00", "2025-11-13 11:30:00"),
			iv(t, "2025-11-13 09:00:00", "2025-11-13 10:00:00"),
		})
		require.Len(t, blocks, 1)
		assert.Equal(t, tp(t, "2025-11-13 09:00:00"), blocks[0].Start)
		assert.Equal(t, tp(t, "2025-11-13 11:30:00"), blocks[0].End)
	})

	t.Run("output is sorted and non-overlapping", func(t *testing.T) {
		blocks := schedule.MergeBlocks([]schedule.Interval{
			iv(t, "2025-11-13 15:00:00", "2025-11-13 16:00:00"),
			iv(t, "2025-11-13 09:00:00", "2025-11-13 09:30:00"),
			iv(t, "2025-11-13 11:00:00", "2025-11-13 12:00:00"),
			iv(t, "2025-11-13 12:00:00", "2025-11-13 13:00:00"),
		})
		require.Len(t, blocks, 3)
		for i := 1; i < len(blocks); i++ {
			assert.True(t, blocks[i-1].End.Before(blocks[i].Start) || blocks[i-1].End.Equal(blocks[i].Start))
			assert.True(t, blocks[i-1].Start.Before(blocks[i].Start))
		}
	})
}
