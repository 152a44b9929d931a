package schedule

import "fmt"

// FindNextSlots searches forward on the window's granularity grid for up to
// maxResults conflict-free intervals of durationMinutes on the given day.
// When day is the same calendar day as now, the search starts at now
// rounded up to the next granularity multiple (never before the window
// opens); on other days it starts at the window's open time.
//
// The cursor advances by the granularity even after an accepted candidate,
// so consecutive results may overlap: the finder offers the soonest
// alternatives rather than partitioning the day. The first result, if any,
// is the caller-facing default suggestion. An empty result is not an error.
func FindNextSlots(now, day TimePoint, window BusinessWindow, durationMinutes, maxResults int, existing []Interval) ([]Interval, error) {
	if window.granularityMinutes <= 0 {
		return nil, fmt.Errorf("%w: granularity must be positive", ErrInvalidWindow)
	}
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: slot duration must be positive, got %d", ErrInvalidWindow, durationMinutes)
	}
	if maxResults <= 0 {
		return nil, fmt.Errorf("%w: max results must be positive, got %d", ErrInvalidWindow, maxResults)
	}

	open := window.OpenOn(day)
	close := window.CloseOn(day)

	cursor := open
	if now.SameDay(day) {
		if rounded := ceilToGranularity(now, window.granularityMinutes); rounded.After(cursor) {
			cursor = rounded
		}
	}

	var slots []Interval
	for ; ; cursor = cursor.AddMinutes(window.granularityMinutes) {
		end := cursor.AddMinutes(durationMinutes)
		if end.After(close) {
			break
		}
		candidate := Interval{start: cursor, end: end}
		if _, conflict := FindConflict(candidate, existing); conflict {
			continue
		}
		slots = append(slots, candidate)
		if len(slots) >= maxResults {
			break
		}
	}
	return slots, nil
}

// ceilToGranularity rounds t up to the next multiple of gran minutes since
// midnight; trailing seconds carry into the next step.
func ceilToGranularity(t TimePoint, gran int) TimePoint {
	granSec := int64(gran) * 60
	sec := t.secondsIntoDay()
	rounded := (sec + granSec - 1) / granSec * granSec
	return t.StartOfDay().AddSeconds(rounded)
}
