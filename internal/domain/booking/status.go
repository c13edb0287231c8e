package booking

import "github.com/quikka/quikka-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending             Status = "pending"
	StatusConfirmed           Status = "confirmed"
	StatusCompleted           Status = "completed"
	StatusCancelled           Status = "cancelled"
	StatusRescheduleRequested Status = "reschedule_requested"
	StatusNoShow              Status = "no_show"
)

// SystemActorID attributes automated transitions (the no-show sweep) in the
// status history.
const SystemActorID uint = 0

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted,
		StatusCancelled, StatusRescheduleRequested, StatusNoShow:
		return true
	}
	return false
}

// Occupies reports whether a booking in this status reserves its slot.
// Cancelled and no-show bookings free the slot.
func (s Status) Occupies() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRescheduleRequested, StatusCompleted:
		return true
	}
	return false
}

// OccupyingStatuses lists every status that blocks a time slot.
func OccupyingStatuses() []string {
	return []string{
		string(StatusPending),
		string(StatusConfirmed),
		string(StatusRescheduleRequested),
		string(StatusCompleted),
	}
}

// ===============================
// Transition table
// ===============================

var transitions = map[Status][]Status{
	StatusPending:             {StatusConfirmed, StatusCancelled},
	StatusConfirmed:           {StatusCompleted, StatusCancelled, StatusRescheduleRequested, StatusNoShow},
	StatusRescheduleRequested: {StatusConfirmed},
	// completed, cancelled and no_show are terminal
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateTransition rejects illegal status changes. Every status mutation
// goes through this check before it is written.
func ValidateTransition(from, to Status) error {
	if !to.Valid() {
		return httperr.Validation("invalid_status", "unknown status: "+string(to))
	}
	if !CanTransition(from, to) {
		return httperr.Validation(
			"invalid_transition",
			"cannot change status from "+string(from)+" to "+string(to),
		)
	}
	return nil
}
