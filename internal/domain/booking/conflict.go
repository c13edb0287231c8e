package booking

import (
	"context"
	"strings"

	"github.com/quikka/quikka-api/internal/httperr"
	"github.com/quikka/quikka-api/internal/timeutil"
)

// CheckSlot is the conflict resolver: it decides whether the proposed slot
// fits the stylist's working hours and does not overlap any occupying
// booking on that date. Callers that are about to write (create, update,
// reschedule) must run it inside a transaction holding the stylist lock.
func CheckSlot(
	ctx context.Context,
	repo Repository,
	q SlotQuery,
) (SlotResult, error) {

	if _, err := repo.GetStylistByID(ctx, q.StylistID); err != nil {
		return SlotResult{}, err
	}

	weekday := timeutil.Weekday(q.Date)

	w, err := repo.GetWindow(ctx, q.StylistID, weekday)
	if err != nil {
		return SlotResult{}, err
	}
	if w == nil || !w.Active {
		return SlotResult{
			Reason: "not available on " + timeutil.DayName(weekday),
		}, nil
	}

	proposed, err := NewInterval(q.StartTime, q.DurationMinutes)
	if err != nil {
		return SlotResult{}, httperr.Validation("invalid_time", err.Error())
	}

	winStart, err := timeutil.ParseHM(w.StartTime)
	if err != nil {
		return SlotResult{}, err
	}
	winEnd, err := timeutil.ParseHM(w.EndTime)
	if err != nil {
		return SlotResult{}, err
	}

	if proposed.Start < winStart {
		return SlotResult{
			Reason: "outside working hours: starts before " + w.StartTime,
		}, nil
	}
	if proposed.End > winEnd {
		return SlotResult{
			Reason: "outside working hours: ends after " + w.EndTime,
		}, nil
	}

	others, err := repo.ListBookingsForDay(ctx, q.StylistID, q.Date, OccupyingStatuses())
	if err != nil {
		return SlotResult{}, err
	}

	var conflicts []string
	for _, b := range others {
		if q.ExcludeBookingID != 0 && b.ID == q.ExcludeBookingID {
			continue
		}
		iv, err := NewInterval(b.AppointmentTime, b.DurationMinutes)
		if err != nil {
			continue
		}
		if proposed.Overlaps(iv) {
			conflicts = append(conflicts, iv.Format())
		}
	}

	if len(conflicts) > 0 {
		return SlotResult{
			Reason:    "conflicts with existing bookings: " + strings.Join(conflicts, ", "),
			Conflicts: conflicts,
		}, nil
	}

	return SlotResult{Available: true}, nil
}
