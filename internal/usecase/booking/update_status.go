package booking

import (
	"context"
	"time"

	domain "github.com/quikka/quikka-api/internal/domain/booking"
	"github.com/quikka/quikka-api/internal/models"
	"github.com/quikka/quikka-api/internal/notify"
)

type UpdateStatus struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	notifier *notify.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{repo: repo, notify: notifier}
}

// Execute moves the booking through the transition table and appends exactly
// one history row. Both writes commit together or not at all.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	bookingID uint,
	stylistID uint,
	newStatus domain.Status,
	actorID uint,
	reason string,
) (*models.Booking, error) {

	var updated *models.Booking

	err := uc.repo.Transact(ctx, func(tx domain.Repository) error {
		b, err := tx.GetBooking(ctx, bookingID, stylistID)
		if err != nil {
			return err
		}

		if err := domain.ValidateTransition(domain.Status(b.Status), newStatus); err != nil {
			return err
		}

		old := b.Status
		b.Status = string(newStatus)
		if newStatus == domain.StatusRescheduleRequested {
			now := time.Now()
			b.RescheduleRequestedAt = &now
		}

		if err := tx.SaveBooking(ctx, b); err != nil {
			return err
		}

		if err := tx.AppendHistory(ctx, &models.BookingStatusHistory{
			BookingID: b.ID,
			OldStatus: &old,
			NewStatus: b.Status,
			ChangedBy: actorID,
			Reason:    reason,
		}); err != nil {
			return err
		}

		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		Type:    eventForStatus(newStatus),
		Booking: *updated,
	})

	return updated, nil
}

func eventForStatus(s domain.Status) notify.EventType {
	switch s {
	case domain.StatusConfirmed:
		return notify.EventBookingConfirmed
	case domain.StatusCancelled:
		return notify.EventBookingCancelled
	case domain.StatusCompleted:
		return notify.EventBookingCompleted
	case domain.StatusNoShow:
		return notify.EventBookingNoShow
	}
	return notify.EventBookingUpdated
}
