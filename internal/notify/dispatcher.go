package notify

import (
	"github.com/rs/zerolog"

	"github.com/quikka/quikka-api/internal/models"
)

type EventType string

const (
	EventBookingCreated     EventType = "booking_created"
	EventBookingUpdated     EventType = "booking_updated"
	EventBookingCancelled   EventType = "booking_cancelled"
	EventBookingConfirmed   EventType = "booking_confirmed"
	EventBookingCompleted   EventType = "booking_completed"
	EventBookingRescheduled EventType = "booking_rescheduled"
	EventBookingNoShow      EventType = "booking_no_show"
)

type Event struct {
	Type    EventType
	Booking models.Booking
}

// Dispatcher fans booking events out to the mailer on a background worker.
// Delivery is best-effort: a full queue drops the event and a mailer error
// is logged, never returned to the booking mutation that produced it.
type Dispatcher struct {
	mailer Mailer
	log    zerolog.Logger
	queue  chan Event
}

func NewDispatcher(mailer Mailer, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		mailer: mailer,
		log:    log,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.mailer.Send(ev); err != nil {
			d.log.Warn().
				Err(err).
				Str("event", string(ev.Type)).
				Uint("booking_id", ev.Booking.ID).
				Msg("notification delivery failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// full queue: drop rather than block a booking mutation
		d.log.Warn().
			Str("event", string(ev.Type)).
			Msg("notification queue full, dropping event")
	}
}
