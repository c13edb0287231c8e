package booking

import (
	"context"
	"time"

	"github.com/quikka/quikka-api/internal/models"
)

type Repository interface {
	// -------- Stylist --------
	GetStylistByID(
		ctx context.Context,
		id uint,
	) (*models.Stylist, error)

	// -------- Availability --------
	GetWindow(
		ctx context.Context,
		stylistID uint,
		weekday int,
	) (*models.AvailabilityWindow, error)

	// -------- Booking --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	SaveBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBooking(
		ctx context.Context,
		id uint,
		stylistID uint,
	) (*models.Booking, error)

	DeleteBooking(
		ctx context.Context,
		id uint,
		stylistID uint,
	) (bool, error)

	// ListBookingsForDay returns bookings for one stylist on one date whose
	// status is in the given set, ordered by appointment time.
	ListBookingsForDay(
		ctx context.Context,
		stylistID uint,
		date time.Time,
		statuses []string,
	) ([]models.Booking, error)

	// ListConfirmedDue returns confirmed bookings dated on or before the
	// cutoff date, for the no-show sweep.
	ListConfirmedDue(
		ctx context.Context,
		cutoff time.Time,
	) ([]models.Booking, error)

	// -------- History --------
	AppendHistory(
		ctx context.Context,
		h *models.BookingStatusHistory,
	) error

	ListHistory(
		ctx context.Context,
		bookingID uint,
	) ([]models.BookingStatusHistory, error)

	// -------- Transactions --------

	// Transact runs fn against a transactional view of the repository. All
	// writes inside fn commit or roll back together.
	Transact(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// LockStylist serializes concurrent slot checks for one stylist. Only
	// meaningful inside Transact; the lock is released on commit/rollback.
	LockStylist(
		ctx context.Context,
		stylistID uint,
	) error
}

// SettingsRepository exposes the per-stylist booking policy.
type SettingsRepository interface {
	GetOrDefault(
		ctx context.Context,
		stylistID uint,
	) (*models.StylistSettings, error)

	Update(
		ctx context.Context,
		stylistID uint,
		upd *models.SettingsUpdate,
	) (*models.StylistSettings, error)
}

// AvailabilityRepository is the availability store contract.
type AvailabilityRepository interface {
	Upsert(
		ctx context.Context,
		w *models.AvailabilityWindow,
	) error

	Disable(
		ctx context.Context,
		stylistID uint,
		weekday int,
	) (bool, error)

	ListActive(
		ctx context.Context,
		stylistID uint,
	) ([]models.AvailabilityWindow, error)
}
