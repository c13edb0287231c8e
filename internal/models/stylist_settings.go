package models

import "time"

// StylistSettings carries per-stylist booking policy. Rows are created
// lazily with defaults from config.BookingPolicy.
type StylistSettings struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	StylistID uint `gorm:"uniqueIndex;not null" json:"stylist_id"`

	CancellationDeadlineHours int  `json:"cancellation_deadline_hours"`
	MaxReschedulesAllowed     int  `json:"max_reschedules_allowed"`
	NoShowGraceMinutes        int  `json:"no_show_grace_period_minutes"`
	AutoConfirmBookings       bool `json:"auto_confirm_bookings"`
	RequirePrepayment         bool `json:"require_prepayment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SettingsUpdate applies sparse updates: only non-nil fields are written.
type SettingsUpdate struct {
	CancellationDeadlineHours *int  `json:"cancellation_deadline_hours"`
	MaxReschedulesAllowed     *int  `json:"max_reschedules_allowed"`
	NoShowGraceMinutes        *int  `json:"no_show_grace_period_minutes"`
	AutoConfirmBookings       *bool `json:"auto_confirm_bookings"`
	RequirePrepayment         *bool `json:"require_prepayment"`
}
