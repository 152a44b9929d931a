package schedule

// SpecialState is a room-level override supplied by configuration,
// independent of the day's bookings.
type SpecialState string

const (
	SpecialNone        SpecialState = ""
	SpecialMaintenance SpecialState = "maintenance"
	SpecialInactive    SpecialState = "inactive"
	SpecialNightRest   SpecialState = "night_rest"
)

func (s SpecialState) IsValid() bool {
	switch s {
	case SpecialNone, SpecialMaintenance, SpecialInactive, SpecialNightRest:
		return true
	}
	return false
}

type StatusKind string

const (
	StatusUnavailable    StatusKind = "unavailable"
	StatusFullyBooked    StatusKind = "fully_booked"
	StatusOccupied       StatusKind = "occupied"
	StatusAvailableUntil StatusKind = "available_until"
	StatusAvailable      StatusKind = "available"
)

// StatusResult is the display status of a room at a single instant.
// ProgressFraction and RemainingSeconds are meaningful only for
// StatusOccupied, MinutesUntilNext only for StatusAvailableUntil.
// Until carries the block end (occupied) or the next booking's start
// (available-until).
type StatusResult struct {
	Kind             StatusKind
	Label            string
	ProgressFraction float64
	RemainingSeconds int64
	MinutesUntilNext int64
	Until            *TimePoint
}

// ComputeStatus derives a room's display status from an explicit now and
// the day's bookings. Precedence is a hard contract, first match wins:
//
//  1. special state (terminal, no countdown)
//  2. occupied now: fully booked when the daily load is heavy, otherwise
//     occupied until the end of the containing block
//  3. free now with a later booking today
//  4. free for the rest of the day
//
// Bookings whose end has already passed are ignored rather than surfaced
// as negative durations, so stale caller data self-heals.
func ComputeStatus(now TimePoint, special SpecialState, bookings []Interval, window BusinessWindow, thresholds LoadThresholds) StatusResult {
	if special != SpecialNone {
		return StatusResult{Kind: StatusUnavailable, Label: specialLabel(special)}
	}

	if current, ok := currentBooking(now, bookings); ok {
		if heavilyBooked(bookings, window, thresholds) {
			// Deliberate UX simplification: a heavily loaded room reads as
			// fully booked regardless of the remaining time on this block.
			return StatusResult{Kind: StatusFullyBooked, Label: "fully booked"}
		}

		block := containingBlock(now, bookings)
		progress := clamp01(float64(DiffSeconds(current.start, now)) / float64(DiffSeconds(current.start, block.End)))
		remaining := DiffSeconds(now, block.End)
		if remaining < 0 {
			remaining = 0
		}
		until := block.End
		return StatusResult{
			Kind:             StatusOccupied,
			Label:            "occupied until " + until.ClockString(),
			ProgressFraction: progress,
			RemainingSeconds: remaining,
			Until:            &until,
		}
	}

	if next, ok := nextBooking(now, bookings); ok {
		start := next.start
		return StatusResult{
			Kind:             StatusAvailableUntil,
			Label:            "available until " + start.ClockString(),
			MinutesUntilNext: DiffSeconds(now, start) / 60,
			Until:            &start,
		}
	}

	return StatusResult{Kind: StatusAvailable, Label: "available"}
}

func specialLabel(s SpecialState) string {
	switch s {
	case SpecialMaintenance:
		return "under maintenance"
	case SpecialInactive:
		return "inactive"
	case SpecialNightRest:
		return "night rest"
	default:
		return "unavailable"
	}
}

// currentBooking finds a booking occupying now, closed-open with inclusive
// start. Bookings already over do not qualify, which is what heals stale
// "current booking" caller state.
func currentBooking(now TimePoint, bookings []Interval) (Interval, bool) {
	for _, iv := range bookings {
		if iv.Contains(now) {
			return iv, true
		}
	}
	return Interval{}, false
}

func nextBooking(now TimePoint, bookings []Interval) (Interval, bool) {
	var next Interval
	found := false
	for _, iv := range bookings {
		if !iv.start.After(now) {
			continue
		}
		if !found || iv.start.Before(next.start) {
			next = iv
			found = true
		}
	}
	return next, found
}

func containingBlock(now TimePoint, bookings []Interval) Block {
	for _, b := range MergeBlocks(bookings) {
		if b.Contains(now) {
			return b
		}
	}
	// Unreachable when a current booking exists; keep the caller total.
	return Block{Start: now, End: now}
}

func heavilyBooked(bookings []Interval, window BusinessWindow, thresholds LoadThresholds) bool {
	if thresholds.HeavyBookingCount > 0 && len(bookings) >= thresholds.HeavyBookingCount {
		return true
	}
	if thresholds.HeavyLoadFraction > 0 && window.TotalMinutes() > 0 {
		booked := 0
		for _, iv := range bookings {
			booked += iv.DurationMinutes()
		}
		if float64(booked) >= thresholds.HeavyLoadFraction*float64(window.TotalMinutes()) {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
