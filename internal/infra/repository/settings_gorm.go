package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/quikka/quikka-api/internal/config"
	domain "github.com/quikka/quikka-api/internal/domain/booking"
	"github.com/quikka/quikka-api/internal/models"
)

type SettingsGormRepository struct {
	db     *gorm.DB
	policy config.BookingPolicy
}

func NewSettingsGormRepository(db *gorm.DB, policy config.BookingPolicy) *SettingsGormRepository {
	return &SettingsGormRepository{db: db, policy: policy}
}

// GetOrDefault returns the stylist's settings, lazily creating a row with
// the configured policy defaults on first access.
func (r *SettingsGormRepository) GetOrDefault(
	ctx context.Context,
	stylistID uint,
) (*models.StylistSettings, error) {

	var s models.StylistSettings
	err := r.db.WithContext(ctx).
		Where("stylist_id = ?", stylistID).
		First(&s).Error

	if err == nil {
		return &s, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	s = models.StylistSettings{
		StylistID:                 stylistID,
		CancellationDeadlineHours: r.policy.CancellationDeadlineHours,
		MaxReschedulesAllowed:     r.policy.MaxReschedulesAllowed,
		NoShowGraceMinutes:        r.policy.NoShowGraceMinutes,
	}

	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		// A concurrent first access may have inserted the row already.
		if IsUniqueViolation(err) {
			if e := r.db.WithContext(ctx).
				Where("stylist_id = ?", stylistID).
				First(&s).Error; e == nil {
				return &s, nil
			}
		}
		return nil, err
	}
	return &s, nil
}

func (r *SettingsGormRepository) Update(
	ctx context.Context,
	stylistID uint,
	upd *models.SettingsUpdate,
) (*models.StylistSettings, error) {

	s, err := r.GetOrDefault(ctx, stylistID)
	if err != nil {
		return nil, err
	}

	if upd.CancellationDeadlineHours != nil {
		s.CancellationDeadlineHours = *upd.CancellationDeadlineHours
	}
	if upd.MaxReschedulesAllowed != nil {
		s.MaxReschedulesAllowed = *upd.MaxReschedulesAllowed
	}
	if upd.NoShowGraceMinutes != nil {
		s.NoShowGraceMinutes = *upd.NoShowGraceMinutes
	}
	if upd.AutoConfirmBookings != nil {
		s.AutoConfirmBookings = *upd.AutoConfirmBookings
	}
	if upd.RequirePrepayment != nil {
		s.RequirePrepayment = *upd.RequirePrepayment
	}

	if err := r.db.WithContext(ctx).Save(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// Compile-time check
var _ domain.SettingsRepository = (*SettingsGormRepository)(nil)
