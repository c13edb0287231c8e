package timeutil

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	HMLayout   = "15:04"
)

// ParseDate parses a YYYY-MM-DD string into a date at midnight local time.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// ParseHM parses an HH:MM string into minutes from midnight.
func ParseHM(s string) (int, error) {
	t, err := time.Parse(HMLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatHM renders minutes from midnight as HH:MM. Values past 24:00 wrap
// into the next day for display purposes only.
func FormatHM(minutes int) string {
	minutes %= 24 * 60
	if minutes < 0 {
		minutes += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatRange renders a [start,end) pair of day-minutes as "HH:MM-HH:MM".
func FormatRange(start, end int) string {
	return FormatHM(start) + "-" + FormatHM(end)
}

// Combine merges a date with an HH:MM time-of-day into one instant.
func Combine(date time.Time, hm string) (time.Time, error) {
	mins, err := ParseHM(hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		mins/60, mins%60, 0, 0,
		date.Location(),
	), nil
}

// Weekday maps a date onto the scheduling convention Monday=0 .. Sunday=6.
func Weekday(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

var dayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// DayName returns the English name for a Monday=0 weekday index.
func DayName(weekday int) string {
	if weekday < 0 || weekday > 6 {
		return "unknown"
	}
	return dayNames[weekday]
}

// DateOnly truncates an instant to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
