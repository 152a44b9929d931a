package schedule

import (
	"errors"
	"fmt"
	"time"
)

// TimeLayout is the canonical textual form of a TimePoint.
const TimeLayout = "2006-01-02 15:04:05"

var ErrInvalidTimePoint = errors.New("invalid time point")

const secondsPerDay = 86400

// TimePoint is a timezone-naive instant. It carries no offset and no
// location; arithmetic and comparison operate on an absolute second count
// derived from the calendar components alone, so two TimePoints from the
// same logical calendar are always comparable by simple ordering. The
// model has no universal-time semantics: what you see is what is stored.
type TimePoint struct {
	secs int64
}

func NewTimePoint(year int, month time.Month, day, hour, minute, second int) (TimePoint, error) {
	if year < 1 {
		return TimePoint{}, fmt.Errorf("%w: year %d", ErrInvalidTimePoint, year)
	}
	if month < time.January || month > time.December {
		return TimePoint{}, fmt.Errorf("%w: month %d", ErrInvalidTimePoint, month)
	}
	if day < 1 || day > daysInMonth(year, month) {
		return TimePoint{}, fmt.Errorf("%w: day %d", ErrInvalidTimePoint, day)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return TimePoint{}, fmt.Errorf("%w: time %02d:%02d:%02d", ErrInvalidTimePoint, hour, minute, second)
	}

	days := daysFromCivil(year, int(month), day)
	return TimePoint{secs: days*secondsPerDay + int64(hour*3600+minute*60+second)}, nil
}

// ParseTimePoint parses "2006-01-02 15:04:05" into its component fields and
// uses them as-is; no timezone or daylight-saving adjustment is ever applied.
func ParseTimePoint(s string) (TimePoint, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return TimePoint{}, fmt.Errorf("%w: %q", ErrInvalidTimePoint, s)
	}
	return FromWallClock(t), nil
}

// FromWallClock copies the wall-clock components of t and discards its
// location. The same civil time in two locations maps to the same TimePoint.
func FromWallClock(t time.Time) TimePoint {
	days := daysFromCivil(t.Year(), int(t.Month()), t.Day())
	return TimePoint{secs: days*secondsPerDay + int64(t.Hour()*3600+t.Minute()*60+t.Second())}
}

// ToWallClock renders the components as a UTC time.Time. Used only at
// persistence boundaries (timestamp-without-time-zone columns); the UTC tag
// is a carrier, not a conversion.
func (t TimePoint) ToWallClock() time.Time {
	y, m, d := civilFromDays(floorDiv(t.secs, secondsPerDay))
	rem := floorMod(t.secs, secondsPerDay)
	return time.Date(y, m, d, int(rem/3600), int(rem%3600/60), int(rem%60), 0, time.UTC)
}

func (t TimePoint) Year() int {
	y, _, _ := civilFromDays(floorDiv(t.secs, secondsPerDay))
	return y
}

func (t TimePoint) Month() time.Month {
	_, m, _ := civilFromDays(floorDiv(t.secs, secondsPerDay))
	return m
}

func (t TimePoint) Day() int {
	_, _, d := civilFromDays(floorDiv(t.secs, secondsPerDay))
	return d
}

func (t TimePoint) Hour() int   { return int(floorMod(t.secs, secondsPerDay) / 3600) }
func (t TimePoint) Minute() int { return int(floorMod(t.secs, secondsPerDay) % 3600 / 60) }
func (t TimePoint) Second() int { return int(floorMod(t.secs, secondsPerDay) % 60) }

func (t TimePoint) Before(other TimePoint) bool { return t.secs < other.secs }
func (t TimePoint) After(other TimePoint) bool  { return t.secs > other.secs }
func (t TimePoint) Equal(other TimePoint) bool  { return t.secs == other.secs }

// Compare returns -1, 0 or 1 as t is before, equal to or after other.
func (t TimePoint) Compare(other TimePoint) int {
	switch {
	case t.secs < other.secs:
		return -1
	case t.secs > other.secs:
		return 1
	default:
		return 0
	}
}

func (t TimePoint) AddMinutes(n int) TimePoint {
	return TimePoint{secs: t.secs + int64(n)*60}
}

func (t TimePoint) AddSeconds(n int64) TimePoint {
	return TimePoint{secs: t.secs + n}
}

// DiffSeconds returns b - a in seconds, positive when b is after a.
func DiffSeconds(a, b TimePoint) int64 {
	return b.secs - a.secs
}

func (t TimePoint) StartOfDay() TimePoint {
	return TimePoint{secs: t.secs - floorMod(t.secs, secondsPerDay)}
}

func (t TimePoint) SameDay(other TimePoint) bool {
	return floorDiv(t.secs, secondsPerDay) == floorDiv(other.secs, secondsPerDay)
}

func (t TimePoint) secondsIntoDay() int64 {
	return floorMod(t.secs, secondsPerDay)
}

func (t TimePoint) String() string {
	y, m, d := civilFromDays(floorDiv(t.secs, secondsPerDay))
	rem := floorMod(t.secs, secondsPerDay)
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", y, int(m), d, rem/3600, rem%3600/60, rem%60)
}

// ClockString renders the time-of-day as "HH:MM" for display labels.
func (t TimePoint) ClockString() string {
	rem := floorMod(t.secs, secondsPerDay)
	return fmt.Sprintf("%02d:%02d", rem/3600, rem%3600/60)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if isLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// daysFromCivil converts a civil date to days since 1970-01-01 using pure
// integer calendar arithmetic (Howard Hinnant's algorithm). Valid for all
// year >= 1, which keeps every intermediate value non-negative enough for
// Go's truncating division.
func daysFromCivil(y, m, d int) int64 {
	if m <= 2 {
		y--
	}
	era := y / 400
	yoe := int64(y - era*400)
	mp := (m + 9) % 12
	doy := int64((153*mp+2)/5 + d - 1)
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return int64(era)*146097 + doe - 719468
}

func civilFromDays(z int64) (int, time.Month, int) {
	z += 719468
	era := z / 146097
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := int(doy - (153*mp+2)/5 + 1)
	m := int(mp + 3)
	if mp >= 10 {
		m = int(mp - 9)
	}
	if m <= 2 {
		y++
	}
	return int(y), time.Month(m), d
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
