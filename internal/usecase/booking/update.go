package booking

import (
	"context"
	"time"

	"github.com/quikka/quikka-api/internal/config"
	domain "github.com/quikka/quikka-api/internal/domain/booking"
	"github.com/quikka/quikka-api/internal/httperr"
	"github.com/quikka/quikka-api/internal/models"
	"github.com/quikka/quikka-api/internal/notify"
)

// UpdateBookingInput applies sparse updates: only non-nil fields change.
type UpdateBookingInput struct {
	ClientName  *string `json:"client_name"`
	ClientEmail *string `json:"client_email"`
	ClientPhone *string `json:"client_phone"`

	ServiceName        *string `json:"service_name"`
	ServiceDescription *string `json:"service_description"`

	Date            *string `json:"appointment_date"`
	Time            *string `json:"appointment_time"`
	DurationMinutes *int    `json:"duration_minutes"`

	Price    *float64 `json:"price"`
	Currency *string  `json:"currency"`
	Notes    *string  `json:"notes"`
}

func (in *UpdateBookingInput) movesSlot() bool {
	return in.Date != nil || in.Time != nil || in.DurationMinutes != nil
}

type UpdateBooking struct {
	repo   domain.Repository
	policy config.BookingPolicy
	notify *notify.Dispatcher
}

func NewUpdateBooking(
	repo domain.Repository,
	policy config.BookingPolicy,
	notifier *notify.Dispatcher,
) *UpdateBooking {
	return &UpdateBooking{repo: repo, policy: policy, notify: notifier}
}

func (uc *UpdateBooking) Execute(
	ctx context.Context,
	bookingID uint,
	stylistID uint,
	in UpdateBookingInput,
) (*models.Booking, error) {

	var updated *models.Booking

	err := uc.repo.Transact(ctx, func(tx domain.Repository) error {
		b, err := tx.GetBooking(ctx, bookingID, stylistID)
		if err != nil {
			return err
		}

		if in.movesSlot() {
			dateStr := b.AppointmentDate.Format("2006-01-02")
			if in.Date != nil {
				dateStr = *in.Date
			}
			timeStr := b.AppointmentTime
			if in.Time != nil {
				timeStr = *in.Time
			}
			duration := b.DurationMinutes
			if in.DurationMinutes != nil {
				duration = *in.DurationMinutes
			}

			date, start, err := validateSchedule(uc.policy, dateStr, timeStr, duration)
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
				StartTime:        timeStr,
				DurationMinutes:  duration,
				ExcludeBookingID: b.ID,
			})
			if err != nil {
				return err
			}
			if !res.Available {
				return httperr.Conflict("slot_unavailable", res.Reason)
			}

			b.AppointmentDate = date
			b.AppointmentTime = timeStr
			b.DurationMinutes = duration
		}

		if in.ClientName != nil {
			b.ClientName = *in.ClientName
		}
		if in.ClientEmail != nil {
			b.ClientEmail = *in.ClientEmail
		}
		if in.ClientPhone != nil {
			b.ClientPhone = *in.ClientPhone
		}
		if in.ServiceName != nil {
			b.ServiceName = *in.ServiceName
		}
		if in.ServiceDescription != nil {
			b.ServiceDescription = *in.ServiceDescription
		}
		if in.Price != nil {
			b.Price = *in.Price
		}
		if in.Currency != nil {
			b.Currency = *in.Currency
		}
		if in.Notes != nil {
			b.Notes = *in.Notes
		}

		if err := tx.SaveBooking(ctx, b); err != nil {
			return err
		}

		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		Type:    notify.EventBookingUpdated,
		Booking: *updated,
	})

	return updated, nil
}
