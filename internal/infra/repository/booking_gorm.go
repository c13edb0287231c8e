package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/quikka/quikka-api/internal/domain/booking"
	"github.com/quikka/quikka-api/internal/httperr"
	"github.com/quikka/quikka-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Stylist
// --------------------------------------------------

func (r *BookingGormRepository) GetStylistByID(
	ctx context.Context,
	id uint,
) (*models.Stylist, error) {

	var stylist models.Stylist
	if err := r.db.WithContext(ctx).First(&stylist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFoundErr("stylist_not_found", "stylist not found")
		}
		return nil, err
	}
	return &stylist, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) GetWindow(
	ctx context.Context,
	stylistID uint,
	weekday int,
) (*models.AvailabilityWindow, error) {

	var w models.AvailabilityWindow
	if err := r.db.WithContext(ctx).
		Where("stylist_id = ? AND weekday = ?", stylistID, weekday).
		First(&w).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &w, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) SaveBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
	stylistID uint,
) (*models.Booking, error) {

	q := r.db.WithContext(ctx)
	if stylistID != 0 {
		q = q.Where("stylist_id = ?", stylistID)
	}

	var b models.Booking
	if err := q.First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFoundErr("booking_not_found", "booking not found")
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id uint,
	stylistID uint,
) (bool, error) {

	q := r.db.WithContext(ctx)
	if stylistID != 0 {
		q = q.Where("stylist_id = ?", stylistID)
	}

	res := q.Delete(&models.Booking{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *BookingGormRepository) ListBookingsForDay(
	ctx context.Context,
	stylistID uint,
	date time.Time,
	statuses []string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"stylist_id = ? AND appointment_date = ? AND status IN ?",
			stylistID,
			date.Format("2006-01-02"),
			statuses,
		).
		Order("appointment_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListConfirmedDue(
	ctx context.Context,
	cutoff time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"status = ? AND appointment_date <= ?",
			string(domain.StatusConfirmed),
			cutoff.Format("2006-01-02"),
		).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// History
// --------------------------------------------------

func (r *BookingGormRepository) AppendHistory(
	ctx context.Context,
	h *models.BookingStatusHistory,
) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *BookingGormRepository) ListHistory(
	ctx context.Context,
	bookingID uint,
) ([]models.BookingStatusHistory, error) {

	var entries []models.BookingStatusHistory
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

func (r *BookingGormRepository) Transact(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

// LockStylist takes a Postgres advisory transaction lock keyed by stylist id.
// Two concurrent slot checks for the same stylist serialize here, closing
// the check-then-act window between conflict check and insert.
func (r *BookingGormRepository) LockStylist(
	ctx context.Context,
	stylistID uint,
) error {
	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(?)", int64(stylistID)).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
