package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/quikka/quikka-api/internal/domain/booking"
	"github.com/quikka/quikka-api/internal/models"
)

type AvailabilityGormRepository struct {
	db *gorm.DB
}

func NewAvailabilityGormRepository(db *gorm.DB) *AvailabilityGormRepository {
	return &AvailabilityGormRepository{db: db}
}

// Upsert writes the window keyed by (stylist_id, weekday). The unique index
// backs the ON CONFLICT clause, so a second write for the same pair updates
// in place instead of appending a duplicate.
func (r *AvailabilityGormRepository) Upsert(
	ctx context.Context,
	w *models.AvailabilityWindow,
) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "stylist_id"}, {Name: "weekday"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"start_time", "end_time", "active", "updated_at",
			}),
		}).
		Create(w).Error
}

func (r *AvailabilityGormRepository) Disable(
	ctx context.Context,
	stylistID uint,
	weekday int,
) (bool, error) {

	// Filtering on active makes a repeat disable a no-op that reports
	// false, same as a missing window.
	res := r.db.WithContext(ctx).
		Model(&models.AvailabilityWindow{}).
		Where("stylist_id = ? AND weekday = ? AND active = ?", stylistID, weekday, true).
		Update("active", false)

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *AvailabilityGormRepository) ListActive(
	ctx context.Context,
	stylistID uint,
) ([]models.AvailabilityWindow, error) {

	var windows []models.AvailabilityWindow
	if err := r.db.WithContext(ctx).
		Where("stylist_id = ? AND active = ?", stylistID, true).
		Order("weekday ASC").
		Find(&windows).Error; err != nil {
		return nil, err
	}
	return windows, nil
}

// Compile-time check
var _ domain.AvailabilityRepository = (*AvailabilityGormRepository)(nil)
