// Package timeday composes "HH:MM" time-of-day strings with calendar days.
// Lateness and earliness are always computed by projecting a schedule's
// time-of-day onto the day the event happened, then comparing timestamps.
package timeday

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time without a date, e.g. a scheduled work start.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Parse parses a "HH:MM" (24-hour) string.
func Parse(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// String formats the time of day back to "HH:MM".
func (td TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", td.Hour, td.Minute)
}

// On projects the time of day onto the calendar day containing t, in t's
// location.
func (td TimeOfDay) On(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), td.Hour, td.Minute, 0, 0, t.Location())
}

// DayStart returns 00:00 of the calendar day containing t in loc. This is
// the value attendance records key their uniqueness on.
func DayStart(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// WholeMinutesBetween returns the elapsed whole minutes from earlier to
// later, truncated, never negative.
func WholeMinutesBetween(earlier, later time.Time) int {
	if later.Before(earlier) {
		return 0
	}
	return int(later.Sub(earlier) / time.Minute)
}

// MonthRange returns the first day of the month and the first day of the
// following month in loc, forming a [start, end) window.
func MonthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}
