package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/quikka/quikka-api/internal/config"
	domain "github.com/quikka/quikka-api/internal/domain/booking"
	"github.com/quikka/quikka-api/internal/httperr"
	"github.com/quikka/quikka-api/internal/models"
	"github.com/quikka/quikka-api/internal/notify"
)

type RescheduleInput struct {
	BookingID uint
	StylistID uint
	ActorID   uint

	NewDate string // YYYY-MM-DD
	NewTime string // HH:MM
	Reason  string
}

type RescheduleBooking struct {
	repo     domain.Repository
	settings domain.SettingsRepository
	policy   config.BookingPolicy
	notify   *notify.Dispatcher
}

func NewRescheduleBooking(
	repo domain.Repository,
	settings domain.SettingsRepository,
	policy config.BookingPolicy,
	notifier *notify.Dispatcher,
) *RescheduleBooking {
	return &RescheduleBooking{
		repo:     repo,
		settings: settings,
		policy:   policy,
		notify:   notifier,
	}
}

func (uc *RescheduleBooking) Execute(
	ctx context.Context,
	in RescheduleInput,
) (*models.Booking, error) {

	var updated *models.Booking

	err := uc.repo.Transact(ctx, func(tx domain.Repository) error {
		b, err := tx.GetBooking(ctx, in.BookingID, in.StylistID)
		if err != nil {
			return err
		}

		settings, err := uc.settings.GetOrDefault(ctx, b.StylistID)
		if err != nil {
			return err
		}

		// The limit is checked before the slot: a booking out of
		// reschedules is rejected even when the target is free.
		if b.RescheduleCount >= settings.MaxReschedulesAllowed {
			return httperr.LimitExceeded(
				"reschedule_limit_reached",
				fmt.Sprintf("reschedule limit of %d reached", settings.MaxReschedulesAllowed),
			)
		}

		// A reschedule always lands on confirmed; the transition table
		// rejects bookings in terminal states.
		if b.Status != string(domain.StatusConfirmed) {
			if err := domain.ValidateTransition(domain.Status(b.Status), domain.StatusConfirmed); err != nil {
				return err
			}
		}

		date, start, err := validateSchedule(uc.policy, in.NewDate, in.NewTime, b.DurationMinutes)
		if err != nil {
			return err
		}
		if start.Before(time.Now()) {
			return httperr.Validation("date_in_past", "appointment date is in the past")
		}

		if err := tx.LockStylist(ctx, b.StylistID); err != nil {
			return err
		}

		res, err := domain.CheckSlot(ctx, tx, domain.SlotQuery{
			StylistID:        b.StylistID,
			Date:             date,
			StartTime:        in.NewTime,
			DurationMinutes:  b.DurationMinutes,
			ExcludeBookingID: b.ID,
		})
		if err != nil {
			return err
		}
		if !res.Available {
			return httperr.Conflict("slot_unavailable", res.Reason)
		}

		if b.RescheduleCount == 0 {
			origDate := b.AppointmentDate
			origTime := b.AppointmentTime
			b.OriginalAppointmentDate = &origDate
			b.OriginalAppointmentTime = &origTime
		}

		old := b.Status
		b.AppointmentDate = date
		b.AppointmentTime = in.NewTime
		b.RescheduleCount++
		b.RescheduleReason = in.Reason
		b.Status = string(domain.StatusConfirmed)

		if err := tx.SaveBooking(ctx, b); err != nil {
			return err
		}

		if old != b.Status {
			if err := tx.AppendHistory(ctx, &models.BookingStatusHistory{
				BookingID: b.ID,
				OldStatus: &old,
				NewStatus: b.Status,
				ChangedBy: in.ActorID,
				Reason:    in.Reason,
			}); err != nil {
				return err
			}
		}

		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		Type:    notify.EventBookingRescheduled,
		Booking: *updated,
	})

	return updated, nil
}
