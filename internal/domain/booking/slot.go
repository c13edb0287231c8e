package booking

import (
	"time"

	"github.com/quikka/quikka-api/internal/timeutil"
)

// Interval is a [Start,End) span in minutes from midnight on one date.
type Interval struct {
	Start int
	End   int
}

// Overlaps is the strict half-open intersection test: adjacent intervals
// (a.End == b.Start) do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && i.End > o.Start
}

func (i Interval) Format() string {
	return timeutil.FormatRange(i.Start, i.End)
}

// NewInterval builds the interval of an appointment starting at HH:MM with a
// whole-minute duration.
func NewInterval(startHM string, durationMinutes int) (Interval, error) {
	start, err := timeutil.ParseHM(startHM)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: start + durationMinutes}, nil
}

// SlotQuery is a candidate appointment to test against availability.
type SlotQuery struct {
	StylistID       uint
	Date            time.Time
	StartTime       string // HH:MM
	DurationMinutes int

	// ExcludeBookingID skips one booking during the conflict scan, so a
	// reschedule does not collide with itself. Zero means no exclusion.
	ExcludeBookingID uint
}

// SlotResult reports the conflict resolver's verdict.
type SlotResult struct {
	Available bool     `json:"available"`
	Reason    string   `json:"reason,omitempty"`
	Conflicts []string `json:"conflicts,omitempty"`
}

// TimeSlot is one free slot offered to clients.
type TimeSlot struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationMinutes int    `json:"duration_minutes"`
}
