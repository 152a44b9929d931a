package schedule

import (
	"errors"
	"fmt"
)

var ErrInvalidWindow = errors.New("invalid business window")

const minutesPerDay = 24 * 60

// BusinessWindow bounds a day's bookable hours and the slot grid inside
// them. Immutable once constructed. The source system's developer-mode
// bypass is modelled as an ordinary 00:00-24:00 window passed explicitly,
// not as hidden global state.
type BusinessWindow struct {
	openMinutes            int
	closeMinutes           int
	granularityMinutes     int
	defaultDurationMinutes int
}

// NewBusinessWindow parses "HH:MM" bounds ("24:00" is a valid close for a
// round-the-clock window) and fails fast on any configuration that would
// produce a silently wrong schedule.
func NewBusinessWindow(open, close string, granularityMinutes, defaultDurationMinutes int) (BusinessWindow, error) {
	openM, err := parseClockMinutes(open)
	if err != nil {
		return BusinessWindow{}, fmt.Errorf("%w: open time %q", ErrInvalidWindow, open)
	}
	closeM, err := parseClockMinutes(close)
	if err != nil {
		return BusinessWindow{}, fmt.Errorf("%w: close time %q", ErrInvalidWindow, close)
	}
	if openM >= closeM {
		return BusinessWindow{}, fmt.Errorf("%w: open %s is not before close %s", ErrInvalidWindow, open, close)
	}
	if granularityMinutes <= 0 {
		return BusinessWindow{}, fmt.Errorf("%w: granularity must be positive, got %d", ErrInvalidWindow, granularityMinutes)
	}
	if defaultDurationMinutes <= 0 {
		return BusinessWindow{}, fmt.Errorf("%w: default duration must be positive, got %d", ErrInvalidWindow, defaultDurationMinutes)
	}

	return BusinessWindow{
		openMinutes:            openM,
		closeMinutes:           closeM,
		granularityMinutes:     granularityMinutes,
		defaultDurationMinutes: defaultDurationMinutes,
	}, nil
}

func (w BusinessWindow) OpenMinutes() int            { return w.openMinutes }
func (w BusinessWindow) CloseMinutes() int           { return w.closeMinutes }
func (w BusinessWindow) GranularityMinutes() int     { return w.granularityMinutes }
func (w BusinessWindow) DefaultDurationMinutes() int { return w.defaultDurationMinutes }

// TotalMinutes is the bookable span of the window.
func (w BusinessWindow) TotalMinutes() int {
	return w.closeMinutes - w.openMinutes
}

// OpenOn anchors the window's open time on the calendar day of t.
func (w BusinessWindow) OpenOn(t TimePoint) TimePoint {
	return t.StartOfDay().AddMinutes(w.openMinutes)
}

// CloseOn anchors the window's close time on the calendar day of t.
func (w BusinessWindow) CloseOn(t TimePoint) TimePoint {
	return t.StartOfDay().AddMinutes(w.closeMinutes)
}

func (w BusinessWindow) OpenString() string {
	return fmt.Sprintf("%02d:%02d", w.openMinutes/60, w.openMinutes%60)
}

func (w BusinessWindow) CloseString() string {
	return fmt.Sprintf("%02d:%02d", w.closeMinutes/60, w.closeMinutes%60)
}

// LoadThresholds decide when an occupied room is reported as fully booked
// for the rest of the day. The exact values are a product heuristic with no
// stated rationale beyond "looks full", so they stay configurable.
type LoadThresholds struct {
	HeavyBookingCount int
	HeavyLoadFraction float64
}

func parseClockMinutes(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%2d:%2d", &h, &m); err != nil {
		return 0, err
	}
	if len(s) != 5 || s[2] != ':' {
		return 0, errors.New("clock time must be HH:MM")
	}
	if m < 0 || m > 59 {
		return 0, errors.New("minute out of range")
	}
	total := h*60 + m
	if total < 0 || total > minutesPerDay {
		return 0, errors.New("clock time out of range")
	}
	return total, nil
}
