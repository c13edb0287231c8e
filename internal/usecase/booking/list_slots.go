package booking

import (
	"context"
	"time"

	"github.com/quikka/quikka-api/internal/config"
	domain "github.com/quikka/quikka-api/internal/domain/booking"
	"github.com/quikka/quikka-api/internal/httperr"
	"github.com/quikka/quikka-api/internal/timeutil"
)

// ListSlots enumerates the free slots of one stylist on one date. The
// sequence is recomputed fresh on every call; nothing is cached.
type ListSlots struct {
	repo   domain.Repository
	policy config.BookingPolicy
}

func NewListSlots(repo domain.Repository, policy config.BookingPolicy) *ListSlots {
	return &ListSlots{repo: repo, policy: policy}
}

func (uc *ListSlots) Execute(
	ctx context.Context,
	stylistID uint,
	date time.Time,
	durationMinutes int,
	intervalMinutes int,
) ([]domain.TimeSlot, error) {

	if durationMinutes < uc.policy.MinDurationMinutes || durationMinutes > uc.policy.MaxDurationMinutes {
		return nil, httperr.Validation("invalid_duration", "duration out of range")
	}
	if intervalMinutes <= 0 {
		intervalMinutes = uc.policy.SlotIntervalMinutes
	}

	if _, err := uc.repo.GetStylistByID(ctx, stylistID); err != nil {
		return nil, err
	}

	w, err := uc.repo.GetWindow(ctx, stylistID, timeutil.Weekday(date))
	if err != nil {
		return nil, err
	}
	if w == nil || !w.Active {
		return []domain.TimeSlot{}, nil
	}

	winStart, err := timeutil.ParseHM(w.StartTime)
	if err != nil {
		return nil, err
	}
	winEnd, err := timeutil.ParseHM(w.EndTime)
	if err != nil {
		return nil, err
	}

	// Bookings load once; each candidate runs the same half-open overlap
	// test the conflict resolver uses.
	occupied, err := uc.repo.ListBookingsForDay(ctx, stylistID, date, domain.OccupyingStatuses())
	if err != nil {
		return nil, err
	}

	intervals := make([]domain.Interval, 0, len(occupied))
	for _, b := range occupied {
		iv, err := domain.NewInterval(b.AppointmentTime, b.DurationMinutes)
		if err != nil {
			continue
		}
		intervals = append(intervals, iv)
	}

	slots := []domain.TimeSlot{}
	for cur := winStart; cur+durationMinutes <= winEnd; cur += intervalMinutes {
		candidate := domain.Interval{Start: cur, End: cur + durationMinutes}

		conflict := false
		for _, iv := range intervals {
			if candidate.Overlaps(iv) {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, domain.TimeSlot{
				Start:           timeutil.FormatHM(candidate.Start),
				End:             timeutil.FormatHM(candidate.End),
				DurationMinutes: durationMinutes,
			})
		}
	}

	return slots, nil
}
