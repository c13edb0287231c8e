package notify

import "github.com/rs/zerolog"

// Mailer delivers a booking notification to the client and the stylist.
type Mailer interface {
	Send(ev Event) error
}

// LogMailer is the placeholder delivery backend: it writes the would-be
// email to the log. Swapping in SES/SendGrid later only touches this type.
type LogMailer struct {
	log zerolog.Logger
}

func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(ev Event) error {
	m.log.Info().
		Str("event", string(ev.Type)).
		Uint("booking_id", ev.Booking.ID).
		Str("client_email", ev.Booking.ClientEmail).
		Str("service", ev.Booking.ServiceName).
		Str("date", ev.Booking.AppointmentDate.Format("2006-01-02")).
		Str("time", ev.Booking.AppointmentTime).
		Msg("booking notification")
	return nil
}
