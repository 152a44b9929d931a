package schedule

// FindConflict returns the earliest-starting existing interval that
// overlaps the proposed one. Half-open semantics: an exact touch at a
// boundary is not a conflict. Runs in O(n) over the day's bookings; the
// caller pre-filters scope to a single room-day.
func FindConflict(proposed Interval, existing []Interval) (Interval, bool) {
	var conflict Interval
	found := false
	for _, iv := range existing {
		if !proposed.Overlaps(iv) {
			continue
		}
		if !found || iv.start.Before(conflict.start) {
			conflict = iv
			found = true
		}
	}
	return conflict, found
}
