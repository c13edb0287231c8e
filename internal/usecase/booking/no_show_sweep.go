package booking

import (
	"context"
	"time"

	"github.com/jinzhu/now"
	"github.com/rs/zerolog"

	domain "github.com/quikka/quikka-api/internal/domain/booking"
	"github.com/quikka/quikka-api/internal/models"
	"github.com/quikka/quikka-api/internal/notify"
	"github.com/quikka/quikka-api/internal/timeutil"
)

// NoShowSweep flags confirmed bookings whose start time plus the stylist's
// grace period has passed. It is driven by an external schedule and never
// schedules itself.
type NoShowSweep struct {
	repo     domain.Repository
	settings domain.SettingsRepository
	notify   *notify.Dispatcher
	log      zerolog.Logger
}

func NewNoShowSweep(
	repo domain.Repository,
	settings domain.SettingsRepository,
	notifier *notify.Dispatcher,
	log zerolog.Logger,
) *NoShowSweep {
	return &NoShowSweep{
		repo:     repo,
		settings: settings,
		notify:   notifier,
		log:      log,
	}
}

func (uc *NoShowSweep) Execute(
	ctx context.Context,
	at time.Time,
) ([]models.Booking, error) {

	today := now.New(at).BeginningOfDay()

	due, err := uc.repo.ListConfirmedDue(ctx, today)
	if err != nil {
		return nil, err
	}

	var flagged []models.Booking

	for i := range due {
		b := due[i]

		settings, err := uc.settings.GetOrDefault(ctx, b.StylistID)
		if err != nil {
			uc.log.Error().Err(err).
				Uint("stylist_id", b.StylistID).
				Msg("no-show sweep: failed to load settings, skipping")
			continue
		}

		start, err := timeutil.Combine(b.AppointmentDate, b.AppointmentTime)
		if err != nil {
			uc.log.Error().Err(err).
				Uint("booking_id", b.ID).
				Msg("no-show sweep: unparseable appointment time, skipping")
			continue
		}

		deadline := start.Add(time.Duration(settings.NoShowGraceMinutes) * time.Minute)
		if !at.After(deadline) {
			continue
		}

		err = uc.repo.Transact(ctx, func(tx domain.Repository) error {
			old := b.Status
			b.Status = string(domain.StatusNoShow)
			if err := tx.SaveBooking(ctx, &b); err != nil {
				return err
			}
			return tx.AppendHistory(ctx, &models.BookingStatusHistory{
				BookingID: b.ID,
				OldStatus: &old,
				NewStatus: b.Status,
				ChangedBy: domain.SystemActorID,
				Reason:    "missed appointment grace period",
			})
		})
		if err != nil {
			uc.log.Error().Err(err).
				Uint("booking_id", b.ID).
				Msg("no-show sweep: failed to flag booking")
			continue
		}

		flagged = append(flagged, b)

		uc.notify.Dispatch(notify.Event{
			Type:    notify.EventBookingNoShow,
			Booking: b,
		})
	}

	if len(flagged) > 0 {
		uc.log.Info().
			Int("count", len(flagged)).
			Msg("no-show sweep flagged bookings")
	}

	return flagged, nil
}
