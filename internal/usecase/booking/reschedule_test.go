package booking

import (
	"context"
	"testing"

	domain "github.com/quikka/quikka-api/internal/domain/booking"
	"github.com/quikka/quikka-api/internal/httperr"
	"github.com/quikka/quikka-api/internal/models"
	"github.com/quikka/quikka-api/internal/timeutil"
)

func rescheduleFixture(t *testing.T, status domain.Status, count int) (*memRepo, *models.Booking) {
	t.Helper()

	repo := newMemRepo()
	repo.addStylist(1)
	for wd := 0; wd < 6; wd++ {
		repo.addWindow(1, wd, "08:00", "17:00", true)
	}

	b := repo.addBooking(models.Booking{
		StylistID:       1,
		AppointmentDate: futureDate(0),
		AppointmentTime: "09:00",
		DurationMinutes: 60,
		Status:          string(status),
		RescheduleCount: count,
	})
	return repo, b
}

func TestReschedule_MovesBookingAndSnapshotsOriginal(t *testing.T) {
	repo, b := rescheduleFixture(t, domain.StatusConfirmed, 0)
	origDate := b.AppointmentDate

	uc := NewRescheduleBooking(repo, newMemSettings(), testPolicy, testNotifier())

	tuesday := futureDate(1)
	out, err := uc.Execute(context.Background(), RescheduleInput{
		BookingID: b.ID,
		StylistID: 1,
		ActorID:   1,
		NewDate:   tuesday.Format(timeutil.DateLayout),
		NewTime:   "11:00",
		Reason:    "client request",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.AppointmentDate.Equal(tuesday) || out.AppointmentTime != "11:00" {
		t.Fatalf("booking did not move: %s %s", out.AppointmentDate, out.AppointmentTime)
	}
	if out.RescheduleCount != 1 {
		t.Fatalf("reschedule count = %d, want 1", out.RescheduleCount)
	}
	if out.Status != string(domain.StatusConfirmed) {
		t.Fatalf("status = %q, want confirmed", out.Status)
	}
	if out.OriginalAppointmentDate == nil || !out.OriginalAppointmentDate.Equal(origDate) {
		t.Fatal("first reschedule must snapshot the original date")
	}
	if out.OriginalAppointmentTime == nil || *out.OriginalAppointmentTime != "09:00" {
		t.Fatal("first reschedule must snapshot the original time")
	}
}

func TestReschedule_SecondMoveKeepsOriginalSnapshot(t *testing.T) {
	repo, b := rescheduleFixture(t, domain.StatusConfirmed, 0)

	uc := NewRescheduleBooking(repo, newMemSettings(), testPolicy, testNotifier())
	ctx := context.Background()

	tuesday := futureDate(1).Format(timeutil.DateLayout)
	if _, err := uc.Execute(ctx, RescheduleInput{BookingID: b.ID, StylistID: 1, NewDate: tuesday, NewTime: "11:00"}); err != nil {
		t.Fatalf("first reschedule failed: %v", err)
	}

	wednesday := futureDate(2).Format(timeutil.DateLayout)
	out, err := uc.Execute(ctx, RescheduleInput{BookingID: b.ID, StylistID: 1, NewDate: wednesday, NewTime: "14:00"})
	if err != nil {
		t.Fatalf("second reschedule failed: %v", err)
	}

	if out.RescheduleCount != 2 {
		t.Fatalf("reschedule count = %d, want 2", out.RescheduleCount)
	}
	if out.OriginalAppointmentTime == nil || *out.OriginalAppointmentTime != "09:00" {
		t.Fatal("original snapshot must survive later reschedules")
	}
}

func TestReschedule_LimitCheckedBeforeSlot(t *testing.T) {
	repo, b := rescheduleFixture(t, domain.StatusConfirmed, 2)

	uc := NewRescheduleBooking(repo, newMemSettings(), testPolicy, testNotifier())

	// The target slot is wide open; the limit alone rejects the move.
	_, err := uc.Execute(context.Background(), RescheduleInput{
		BookingID: b.ID,
		StylistID: 1,
		NewDate:   futureDate(1).Format(timeutil.DateLayout),
		NewTime:   "11:00",
	})
	if !httperr.IsKind(err, httperr.KindLimitExceeded) {
		t.Fatalf("expected limit-exceeded, got %v", err)
	}
	if !httperr.IsBusiness(err, "reschedule_limit_reached") {
		t.Fatalf("unexpected code: %v", err)
	}

	got, _ := repo.GetBooking(context.Background(), b.ID, 0)
	if got.AppointmentTime != "09:00" || got.RescheduleCount != 2 {
		t.Fatal("booking must not change when the limit is hit")
	}
}

func TestReschedule_PendingBookingConfirms(t *testing.T) {
	repo, b := rescheduleFixture(t, domain.StatusPending, 0)

	uc := NewRescheduleBooking(repo, newMemSettings(), testPolicy, testNotifier())

	out, err := uc.Execute(context.Background(), RescheduleInput{
		BookingID: b.ID,
		StylistID: 1,
		NewDate:   futureDate(1).Format(timeutil.DateLayout),
		NewTime:   "11:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != string(domain.StatusConfirmed) {
		t.Fatalf("status = %q, want confirmed", out.Status)
	}

	hist, _ := repo.ListHistory(context.Background(), b.ID)
	if len(hist) != 1 || hist[0].NewStatus != string(domain.StatusConfirmed) {
		t.Fatalf("expected one pending->confirmed history row, got %v", hist)
	}
}

func TestReschedule_TerminalStatesRejected(t *testing.T) {
	for _, status := range []domain.Status{domain.StatusCancelled, domain.StatusCompleted, domain.StatusNoShow} {
		t.Run(string(status), func(t *testing.T) {
			repo, b := rescheduleFixture(t, status, 0)

			uc := NewRescheduleBooking(repo, newMemSettings(), testPolicy, testNotifier())

			_, err := uc.Execute(context.Background(), RescheduleInput{
				BookingID: b.ID,
				StylistID: 1,
				NewDate:   futureDate(1).Format(timeutil.DateLayout),
				NewTime:   "11:00",
			})
			if !httperr.IsBusiness(err, "invalid_transition") {
				t.Fatalf("expected invalid_transition, got %v", err)
			}
		})
	}
}

func TestReschedule_TargetSlotTaken(t *testing.T) {
	repo, b := rescheduleFixture(t, domain.StatusConfirmed, 0)

	tuesday := futureDate(1)
	repo.addBooking(models.Booking{
		StylistID:       1,
		AppointmentDate: tuesday,
		AppointmentTime: "11:00",
		DurationMinutes: 60,
		Status:          string(domain.StatusConfirmed),
	})

	uc := NewRescheduleBooking(repo, newMemSettings(), testPolicy, testNotifier())

	_, err := uc.Execute(context.Background(), RescheduleInput{
		BookingID: b.ID,
		StylistID: 1,
		NewDate:   tuesday.Format(timeutil.DateLayout),
		NewTime:   "11:30",
	})
	if !httperr.IsKind(err, httperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	got, _ := repo.GetBooking(context.Background(), b.ID, 0)
	if got.AppointmentTime != "09:00" || got.RescheduleCount != 0 {
		t.Fatal("failed reschedule must leave the booking untouched")
	}
}

func TestReschedule_SelfOverlapAllowed(t *testing.T) {
	repo, b := rescheduleFixture(t, domain.StatusConfirmed, 0)

	// Shift by 30 minutes on the same day; the new slot overlaps only the
	// booking's own current interval.
	uc := NewRescheduleBooking(repo, newMemSettings(), testPolicy, testNotifier())

	out, err := uc.Execute(context.Background(), RescheduleInput{
		BookingID: b.ID,
		StylistID: 1,
		NewDate:   b.AppointmentDate.Format(timeutil.DateLayout),
		NewTime:   "09:30",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.AppointmentTime != "09:30" {
		t.Fatalf("time = %q, want 09:30", out.AppointmentTime)
	}
}
