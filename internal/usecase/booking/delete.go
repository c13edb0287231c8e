package booking

import (
	"context"

	domain "github.com/quikka/quikka-api/internal/domain/booking"
	"github.com/quikka/quikka-api/internal/httperr"
)

// DeleteBooking hard-removes a booking for administrative cleanup. Unlike
// status changes it leaves no history row.
type DeleteBooking struct {
	repo domain.Repository
}

func NewDeleteBooking(repo domain.Repository) *DeleteBooking {
	return &DeleteBooking{repo: repo}
}

func (uc *DeleteBooking) Execute(
	ctx context.Context,
	bookingID uint,
	stylistID uint,
) error {

	ok, err := uc.repo.DeleteBooking(ctx, bookingID, stylistID)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.NotFoundErr("booking_not_found", "booking not found")
	}
	return nil
}
