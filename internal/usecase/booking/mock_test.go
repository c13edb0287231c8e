package booking

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/quikka/quikka-api/internal/config"
	domain "github.com/quikka/quikka-api/internal/domain/booking"
	"github.com/quikka/quikka-api/internal/httperr"
	"github.com/quikka/quikka-api/internal/models"
	"github.com/quikka/quikka-api/internal/notify"
	"github.com/quikka/quikka-api/internal/timeutil"
)

var (
	notFoundStylist = httperr.NotFoundErr("stylist_not_found", "stylist not found")
	notFoundBooking = httperr.NotFoundErr("booking_not_found", "booking not found")
	errHistoryWrite = errors.New("history write failed")
)

// In-memory repository for usecase tests. Transact snapshots state and
// restores it on error, mimicking a rolled-back transaction.
type memRepo struct {
	stylists map[uint]*models.Stylist
	windows  map[uint]map[int]*models.AvailabilityWindow
	bookings map[uint]*models.Booking
	history  []models.BookingStatusHistory
	nextID   uint

	lockCalls   int
	failHistory bool
}

func newMemRepo() *memRepo {
	return &memRepo{
		stylists: map[uint]*models.Stylist{},
		windows:  map[uint]map[int]*models.AvailabilityWindow{},
		bookings: map[uint]*models.Booking{},
	}
}

func (m *memRepo) addStylist(id uint) {
	m.stylists[id] = &models.Stylist{ID: id, BusinessName: "Test Studio"}
}

func (m *memRepo) addWindow(stylistID uint, weekday int, start, end string, active bool) {
	if m.windows[stylistID] == nil {
		m.windows[stylistID] = map[int]*models.AvailabilityWindow{}
	}
	m.windows[stylistID][weekday] = &models.AvailabilityWindow{
		StylistID: stylistID,
		Weekday:   weekday,
		StartTime: start,
		EndTime:   end,
		Active:    active,
	}
}

func (m *memRepo) addBooking(b models.Booking) *models.Booking {
	m.nextID++
	b.ID = m.nextID
	m.bookings[b.ID] = &b
	return m.bookings[b.ID]
}

func (m *memRepo) GetStylistByID(_ context.Context, id uint) (*models.Stylist, error) {
	if s, ok := m.stylists[id]; ok {
		return s, nil
	}
	return nil, notFoundStylist
}

func (m *memRepo) GetWindow(_ context.Context, stylistID uint, weekday int) (*models.AvailabilityWindow, error) {
	if w, ok := m.windows[stylistID][weekday]; ok {
		return w, nil
	}
	return nil, nil
}

func (m *memRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	m.nextID++
	b.ID = m.nextID
	clone := *b
	m.bookings[b.ID] = &clone
	return nil
}

func (m *memRepo) SaveBooking(_ context.Context, b *models.Booking) error {
	clone := *b
	m.bookings[b.ID] = &clone
	return nil
}

func (m *memRepo) GetBooking(_ context.Context, id uint, stylistID uint) (*models.Booking, error) {
	b, ok := m.bookings[id]
	if !ok || (stylistID != 0 && b.StylistID != stylistID) {
		return nil, notFoundBooking
	}
	clone := *b
	return &clone, nil
}

func (m *memRepo) DeleteBooking(_ context.Context, id uint, stylistID uint) (bool, error) {
	b, ok := m.bookings[id]
	if !ok || (stylistID != 0 && b.StylistID != stylistID) {
		return false, nil
	}
	delete(m.bookings, id)
	return true, nil
}

func (m *memRepo) ListBookingsForDay(_ context.Context, stylistID uint, date time.Time, statuses []string) ([]models.Booking, error) {
	var out []models.Booking
	day := date.Format(timeutil.DateLayout)
	for _, b := range m.bookings {
		if b.StylistID != stylistID || b.AppointmentDate.Format(timeutil.DateLayout) != day {
			continue
		}
		for _, s := range statuses {
			if b.Status == s {
				out = append(out, *b)
				break
			}
		}
	}
	return out, nil
}

func (m *memRepo) ListConfirmedDue(_ context.Context, cutoff time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.Status == string(domain.StatusConfirmed) && !b.AppointmentDate.After(cutoff) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *memRepo) AppendHistory(_ context.Context, h *models.BookingStatusHistory) error {
	if m.failHistory {
		return errHistoryWrite
	}
	h.ID = uint(len(m.history) + 1)
	h.CreatedAt = time.Now()
	m.history = append(m.history, *h)
	return nil
}

func (m *memRepo) ListHistory(_ context.Context, bookingID uint) ([]models.BookingStatusHistory, error) {
	var out []models.BookingStatusHistory
	for _, h := range m.history {
		if h.BookingID == bookingID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (m *memRepo) Transact(_ context.Context, fn func(tx domain.Repository) error) error {
	snapBookings := make(map[uint]*models.Booking, len(m.bookings))
	for id, b := range m.bookings {
		clone := *b
		snapBookings[id] = &clone
	}
	snapHistory := make([]models.BookingStatusHistory, len(m.history))
	copy(snapHistory, m.history)
	snapNext := m.nextID

	if err := fn(m); err != nil {
		m.bookings = snapBookings
		m.history = snapHistory
		m.nextID = snapNext
		return err
	}
	return nil
}

func (m *memRepo) LockStylist(_ context.Context, _ uint) error {
	m.lockCalls++
	return nil
}

var _ domain.Repository = (*memRepo)(nil)

// Settings stub: per-stylist overrides on top of fixed defaults.
type memSettings struct {
	byStylist map[uint]*models.StylistSettings
}

func newMemSettings() *memSettings {
	return &memSettings{byStylist: map[uint]*models.StylistSettings{}}
}

func (m *memSettings) GetOrDefault(_ context.Context, stylistID uint) (*models.StylistSettings, error) {
	if s, ok := m.byStylist[stylistID]; ok {
		return s, nil
	}
	return &models.StylistSettings{
		StylistID:                 stylistID,
		CancellationDeadlineHours: 24,
		MaxReschedulesAllowed:     2,
		NoShowGraceMinutes:        60,
	}, nil
}

func (m *memSettings) Update(_ context.Context, stylistID uint, upd *models.SettingsUpdate) (*models.StylistSettings, error) {
	s, _ := m.GetOrDefault(context.Background(), stylistID)
	if upd.MaxReschedulesAllowed != nil {
		s.MaxReschedulesAllowed = *upd.MaxReschedulesAllowed
	}
	if upd.NoShowGraceMinutes != nil {
		s.NoShowGraceMinutes = *upd.NoShowGraceMinutes
	}
	if upd.AutoConfirmBookings != nil {
		s.AutoConfirmBookings = *upd.AutoConfirmBookings
	}
	m.byStylist[stylistID] = s
	return s, nil
}

var _ domain.SettingsRepository = (*memSettings)(nil)

// ---- shared fixtures ----

var testPolicy = config.BookingPolicy{
	CancellationDeadlineHours: 24,
	MaxReschedulesAllowed:     2,
	NoShowGraceMinutes:        60,
	SlotIntervalMinutes:       30,
	MinDurationMinutes:        15,
	MaxDurationMinutes:        480,
}

func testNotifier() *notify.Dispatcher {
	log := zerolog.Nop()
	return notify.NewDispatcher(notify.NewLogMailer(log), log)
}

// futureDate returns a date at least a week out that falls on the given
// Monday=0 weekday, so past-date validation never interferes.
func futureDate(weekday int) time.Time {
	d := timeutil.DateOnly(time.Now()).AddDate(0, 0, 7)
	for timeutil.Weekday(d) != weekday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}
