package availability

import (
	"context"

	domain "github.com/quikka/quikka-api/internal/domain/booking"
	"github.com/quikka/quikka-api/internal/httperr"
	"github.com/quikka/quikka-api/internal/models"
	"github.com/quikka/quikka-api/internal/timeutil"
)

// Default working hours seeded at signup: Monday..Saturday, Sunday closed.
const (
	defaultStart = "08:00"
	defaultEnd   = "17:00"
)

type Service struct {
	repo domain.AvailabilityRepository
}

func NewService(repo domain.AvailabilityRepository) *Service {
	return &Service{repo: repo}
}

// Upsert replaces the stylist's window for one weekday and marks it active.
func (s *Service) Upsert(
	ctx context.Context,
	stylistID uint,
	weekday int,
	startTime string,
	endTime string,
) (*models.AvailabilityWindow, error) {

	if weekday < 0 || weekday > 6 {
		return nil, httperr.Validation("invalid_weekday", "weekday must be 0 (Monday) to 6 (Sunday)")
	}

	start, err := timeutil.ParseHM(startTime)
	if err != nil {
		return nil, httperr.Validation("invalid_time", "start_time must be HH:MM")
	}
	end, err := timeutil.ParseHM(endTime)
	if err != nil {
		return nil, httperr.Validation("invalid_time", "end_time must be HH:MM")
	}
	if start >= end {
		return nil, httperr.Validation("invalid_time_range", "start_time must be before end_time")
	}

	w := &models.AvailabilityWindow{
		StylistID: stylistID,
		Weekday:   weekday,
		StartTime: startTime,
		EndTime:   endTime,
		Active:    true,
	}

	if err := s.repo.Upsert(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// Disable marks the window inactive; the row stays for auditability.
// Returns false when the stylist has no window on that weekday.
func (s *Service) Disable(
	ctx context.Context,
	stylistID uint,
	weekday int,
) (bool, error) {

	if weekday < 0 || weekday > 6 {
		return false, httperr.Validation("invalid_weekday", "weekday must be 0 (Monday) to 6 (Sunday)")
	}
	return s.repo.Disable(ctx, stylistID, weekday)
}

func (s *Service) ListActive(
	ctx context.Context,
	stylistID uint,
) ([]models.AvailabilityWindow, error) {
	return s.repo.ListActive(ctx, stylistID)
}

// SeedDefaults creates the signup-time schedule. Writes go through the
// keyed upsert, so an accidental second call cannot duplicate windows.
func (s *Service) SeedDefaults(
	ctx context.Context,
	stylistID uint,
) error {

	for weekday := 0; weekday <= 5; weekday++ {
		w := &models.AvailabilityWindow{
			StylistID: stylistID,
			Weekday:   weekday,
			StartTime: defaultStart,
			EndTime:   defaultEnd,
			Active:    true,
		}
		if err := s.repo.Upsert(ctx, w); err != nil {
			return err
		}
	}
	return nil
}
