package schedule

import (
	"errors"
	"sort"
)

var ErrInvalidInterval = errors.New("interval start must be before end")

// Interval is a half-open booking span [start, end). Construction
// requires start < end.
type Interval struct {
	start TimePoint
	end   TimePoint
}

func NewInterval(start, end TimePoint) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{start: start, end: end}, nil
}

func (i Interval) Start() TimePoint { return i.start }
func (i Interval) End() TimePoint   { return i.end }

func (i Interval) IsZero() bool {
	return i.start.Equal(TimePoint{}) && i.end.Equal(TimePoint{})
}

// Contains reports whether t falls inside the interval. The start is
// inclusive: a booking that starts exactly at t occupies it.
func (i Interval) Contains(t TimePoint) bool {
	return !t.Before(i.start) && t.Before(i.end)
}

// Overlaps uses half-open semantics: intervals that merely touch at a
// boundary do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.start.Before(other.end) && other.start.Before(i.end)
}

func (i Interval) DurationSeconds() int64 {
	return DiffSeconds(i.start, i.end)
}

func (i Interval) DurationMinutes() int {
	return int(i.DurationSeconds() / 60)
}

// Block is a maximal run of exact-touch bookings treated as one continuous
// busy span. Blocks are computed transiently per call and never persisted.
type Block struct {
	Start TimePoint
	End   TimePoint
}

func (b Block) Contains(t TimePoint) bool {
	return !t.Before(b.Start) && t.Before(b.End)
}

// MergeBlocks folds intervals whose end exactly equals the next interval's
// start into contiguous blocks. Any gap starts a new block. Overlapping
// input is assumed impossible upstream; it would simply start a new block
// rather than extend the chain, so the fold always terminates in one pass
// over the sorted input. The result is sorted by start.
func MergeBlocks(intervals []Interval) []Block {
	if len(intervals) == 0 {
		return nil
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].start.Before(sorted[j].start)
	})

	blocks := []Block{{Start: sorted[0].start, End: sorted[0].end}}
	for _, iv := range sorted[1:] {
		last := &blocks[len(blocks)-1]
		if iv.start.Equal(last.End) {
			last.End = iv.end
			continue
		}
		blocks = append(blocks, Block{Start: iv.start, End: iv.end})
	}
	return blocks
}
