package booking

import (
	"context"
	"strings"
	"testing"

	domain "github.com/quikka/quikka-api/internal/domain/booking"
	"github.com/quikka/quikka-api/internal/httperr"
	"github.com/quikka/quikka-api/internal/models"
	"github.com/quikka/quikka-api/internal/timeutil"
)

func createInput(stylistID uint, date, start string, duration int) CreateBookingInput {
	return CreateBookingInput{
		StylistID:       stylistID,
		ActorID:         stylistID,
		ClientName:      "Amina W",
		ClientEmail:     "amina@example.com",
		ClientPhone:     "+254700000001",
		ServiceName:     "Box braids",
		Date:            date,
		Time:            start,
		DurationMinutes: duration,
		Price:           2500,
	}
}

func TestCreateBooking_Succeeds(t *testing.T) {
	repo := newMemRepo()
	repo.addStylist(1)
	repo.addWindow(1, 0, "08:00", "17:00", true)
	monday := futureDate(0).Format(timeutil.DateLayout)

	uc := NewCreateBooking(repo, newMemSettings(), testPolicy, testNotifier())

	b, err := uc.Execute(context.Background(), createInput(1, monday, "09:00", 60))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.ID == 0 {
		t.Fatal("booking was not persisted")
	}
	if b.Status != string(domain.StatusPending) {
		t.Fatalf("status = %q, want pending", b.Status)
	}
	if b.Reference == "" {
		t.Fatal("expected a generated reference")
	}
	if b.Currency != "KES" {
		t.Fatalf("currency = %q, want default KES", b.Currency)
	}
	if repo.lockCalls == 0 {
		t.Fatal("create must take the stylist lock")
	}

	hist, _ := repo.ListHistory(context.Background(), b.ID)
	if len(hist) != 1 {
		t.Fatalf("expected 1 history row, got %d", len(hist))
	}
	if hist[0].OldStatus != nil {
		t.Fatal("creation history row must have nil old status")
	}
	if hist[0].NewStatus != string(domain.StatusPending) {
		t.Fatalf("history new status = %q", hist[0].NewStatus)
	}
}

func TestCreateBooking_OverlapRejectedAdjacentAccepted(t *testing.T) {
	repo := newMemRepo()
	repo.addStylist(1)
	repo.addWindow(1, 0, "08:00", "17:00", true)
	monday := futureDate(0).Format(timeutil.DateLayout)

	uc := NewCreateBooking(repo, newMemSettings(), testPolicy, testNotifier())
	ctx := context.Background()

	if _, err := uc.Execute(ctx, createInput(1, monday, "09:00", 60)); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	_, err := uc.Execute(ctx, createInput(1, monday, "09:30", 60))
	if !httperr.IsKind(err, httperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if !strings.Contains(err.Error(), "09:00-10:00") {
		t.Fatalf("conflict must name the occupied range, got %v", err)
	}

	// Half-open intervals: 10:00 starts exactly when 09:00-10:00 ends.
	if _, err := uc.Execute(ctx, createInput(1, monday, "10:00", 60)); err != nil {
		t.Fatalf("adjacent booking should succeed: %v", err)
	}

	if len(repo.bookings) != 2 {
		t.Fatalf("expected 2 persisted bookings, got %d", len(repo.bookings))
	}
}

func TestCreateBooking_RejectedOutsideWindow(t *testing.T) {
	repo := newMemRepo()
	repo.addStylist(1)
	repo.addWindow(1, 0, "08:00", "17:00", true)
	monday := futureDate(0).Format(timeutil.DateLayout)

	uc := NewCreateBooking(repo, newMemSettings(), testPolicy, testNotifier())

	_, err := uc.Execute(context.Background(), createInput(1, monday, "16:45", 30))
	if !httperr.IsKind(err, httperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if !strings.Contains(err.Error(), "ends after 17:00") {
		t.Fatalf("unexpected message: %v", err)
	}
	if len(repo.bookings) != 0 {
		t.Fatal("rejected booking must not persist")
	}
}

func TestCreateBooking_ValidationErrors(t *testing.T) {
	repo := newMemRepo()
	repo.addStylist(1)
	repo.addWindow(1, 0, "08:00", "17:00", true)
	monday := futureDate(0).Format(timeutil.DateLayout)

	uc := NewCreateBooking(repo, newMemSettings(), testPolicy, testNotifier())
	ctx := context.Background()

	tests := []struct {
		name string
		in   CreateBookingInput
		code string
	}{
		{"malformed date", createInput(1, "31-08-2026", "09:00", 60), "invalid_date"},
		{"malformed time", createInput(1, monday, "9am", 60), "invalid_time"},
		{"duration too short", createInput(1, monday, "09:00", 10), "invalid_duration"},
		{"duration too long", createInput(1, monday, "09:00", 500), "invalid_duration"},
		{"past date", createInput(1, "2020-01-06", "09:00", 60), "date_in_past"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tc.in)
			if !httperr.IsKind(err, httperr.KindValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !httperr.IsBusiness(err, tc.code) {
				t.Fatalf("got %v, want code %s", err, tc.code)
			}
		})
	}

	if len(repo.bookings) != 0 {
		t.Fatal("no booking should persist on validation failure")
	}
}

func TestCreateBooking_AutoConfirm(t *testing.T) {
	repo := newMemRepo()
	repo.addStylist(1)
	repo.addWindow(1, 0, "08:00", "17:00", true)
	monday := futureDate(0).Format(timeutil.DateLayout)

	settings := newMemSettings()
	on := true
	if _, err := settings.Update(context.Background(), 1, &models.SettingsUpdate{AutoConfirmBookings: &on}); err != nil {
		t.Fatalf("settings update failed: %v", err)
	}

	uc := NewCreateBooking(repo, settings, testPolicy, testNotifier())

	b, err := uc.Execute(context.Background(), createInput(1, monday, "09:00", 60))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != string(domain.StatusConfirmed) {
		t.Fatalf("status = %q, want confirmed when auto-confirm is on", b.Status)
	}
}

func TestCreateBooking_CancelledBookingDoesNotBlock(t *testing.T) {
	repo := newMemRepo()
	repo.addStylist(1)
	repo.addWindow(1, 0, "08:00", "17:00", true)
	monday := futureDate(0)

	repo.addBooking(models.Booking{
		StylistID:       1,
		AppointmentDate: monday,
		AppointmentTime: "09:00",
		DurationMinutes: 60,
		Status:          string(domain.StatusCancelled),
	})

	uc := NewCreateBooking(repo, newMemSettings(), testPolicy, testNotifier())

	_, err := uc.Execute(context.Background(), createInput(1, monday.Format(timeutil.DateLayout), "09:00", 60))
	if err != nil {
		t.Fatalf("cancelled booking must not block the slot: %v", err)
	}
}

func TestCreateBooking_HistoryFailureRollsBack(t *testing.T) {
	repo := newMemRepo()
	repo.addStylist(1)
	repo.addWindow(1, 0, "08:00", "17:00", true)
	repo.failHistory = true
	monday := futureDate(0).Format(timeutil.DateLayout)

	uc := NewCreateBooking(repo, newMemSettings(), testPolicy, testNotifier())

	_, err := uc.Execute(context.Background(), createInput(1, monday, "09:00", 60))
	if err == nil {
		t.Fatal("expected error when history write fails")
	}
	if len(repo.bookings) != 0 {
		t.Fatal("booking must roll back with its history row")
	}
}
