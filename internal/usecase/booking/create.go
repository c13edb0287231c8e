package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/quikka/quikka-api/internal/config"
	domain "github.com/quikka/quikka-api/internal/domain/booking"
	"github.com/quikka/quikka-api/internal/httperr"
	"github.com/quikka/quikka-api/internal/models"
	"github.com/quikka/quikka-api/internal/notify"
	"github.com/quikka/quikka-api/internal/timeutil"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	StylistID uint
	ActorID   uint

	ClientName  string
	ClientEmail string
	ClientPhone string

	ServiceName        string
	ServiceDescription string

	Date            string // YYYY-MM-DD
	Time            string // HH:MM
	DurationMinutes int

	Price    float64
	Currency string
	Notes    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	settings domain.SettingsRepository
	policy   config.BookingPolicy
	notify   *notify.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	settings domain.SettingsRepository,
	policy config.BookingPolicy,
	notifier *notify.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		settings: settings,
		policy:   policy,
		notify:   notifier,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	date, start, err := validateSchedule(uc.policy, in.Date, in.Time, in.DurationMinutes)
	if err != nil {
		return nil, err
	}
	if start.Before(time.Now()) {
		return nil, httperr.Validation("date_in_past", "appointment date is in the past")
	}

	settings, err := uc.settings.GetOrDefault(ctx, in.StylistID)
	if err != nil {
		return nil, err
	}

	status := domain.StatusPending
	if settings.AutoConfirmBookings {
		status = domain.StatusConfirmed
	}

	currency := in.Currency
	if currency == "" {
		currency = "KES"
	}

	b := &models.Booking{
		Reference: uuid.NewString(),
		StylistID: in.StylistID,

		ClientName:  in.ClientName,
		ClientEmail: in.ClientEmail,
		ClientPhone: in.ClientPhone,

		ServiceName:        in.ServiceName,
		ServiceDescription: in.ServiceDescription,

		AppointmentDate: date,
		AppointmentTime: in.Time,
		DurationMinutes: in.DurationMinutes,

		Price:    in.Price,
		Currency: currency,
		Status:   string(status),
		Notes:    in.Notes,

		CancellationDeadlineHours: settings.CancellationDeadlineHours,
	}

	// Conflict check and insert run in one transaction under the stylist
	// lock, so two concurrent creates for overlapping slots cannot both
	// pass the check.
	err = uc.repo.Transact(ctx, func(tx domain.Repository) error {
		if err := tx.LockStylist(ctx, in.StylistID); err != nil {
			return err
		}

		res, err := domain.CheckSlot(ctx, tx, domain.SlotQuery{
			StylistID:       in.StylistID,
			Date:            date,
			StartTime:       in.Time,
			DurationMinutes: in.DurationMinutes,
		})
		if err != nil {
			return err
		}
		if !res.Available {
			return httperr.Conflict("slot_unavailable", res.Reason)
		}

		if err := tx.CreateBooking(ctx, b); err != nil {
			return err
		}

		return tx.AppendHistory(ctx, &models.BookingStatusHistory{
			BookingID: b.ID,
			OldStatus: nil,
			NewStatus: b.Status,
			ChangedBy: in.ActorID,
		})
	})
	if err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		Type:    notify.EventBookingCreated,
		Booking: *b,
	})

	return b, nil
}

// validateSchedule checks date format, HH:MM format and the duration bounds,
// returning the parsed date and the combined start instant.
func validateSchedule(
	policy config.BookingPolicy,
	dateStr string,
	timeStr string,
	durationMinutes int,
) (time.Time, time.Time, error) {

	date, err := timeutil.ParseDate(dateStr)
	if err != nil {
		return time.Time{}, time.Time{}, httperr.Validation("invalid_date", "date must be YYYY-MM-DD")
	}

	if durationMinutes < policy.MinDurationMinutes || durationMinutes > policy.MaxDurationMinutes {
		return time.Time{}, time.Time{}, httperr.Validation(
			"invalid_duration",
			fmt.Sprintf("duration must be between %d and %d minutes",
				policy.MinDurationMinutes, policy.MaxDurationMinutes),
		)
	}

	start, err := timeutil.Combine(date, timeStr)
	if err != nil {
		return time.Time{}, time.Time{}, httperr.Validation("invalid_time", "time must be HH:MM")
	}

	return date, start, nil
}
