package models

import "time"

type Booking struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	StylistID uint    `gorm:"not null;index" json:"stylist_id"`
	Stylist   Stylist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Client contact is denormalized on purpose: walk-in clients have no
	// account of their own.
	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientEmail string `gorm:"size:100" json:"client_email"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`

	ServiceName        string `gorm:"size:100;not null" json:"service_name"`
	ServiceDescription string `gorm:"size:255" json:"service_description"`

	AppointmentDate time.Time `gorm:"type:date;index:idx_booking_stylist_date" json:"appointment_date"`
	AppointmentTime string    `gorm:"size:5" json:"appointment_time"`
	DurationMinutes int       `json:"duration_minutes"`

	Price    float64 `json:"price"`
	Currency string  `gorm:"size:3;default:'KES'" json:"currency"`

	Status string `gorm:"size:25;default:'pending';index" json:"status"`
	Notes  string `gorm:"size:500" json:"notes"`

	// Reschedule bookkeeping. Original date/time are written once, on the
	// first reschedule, and never touched again.
	OriginalAppointmentDate *time.Time `gorm:"type:date" json:"original_appointment_date"`
	OriginalAppointmentTime *string    `gorm:"size:5" json:"original_appointment_time"`
	RescheduleCount         int        `gorm:"default:0" json:"reschedule_count"`
	RescheduleReason        string     `gorm:"size:255" json:"reschedule_reason"`
	RescheduleRequestedAt   *time.Time `json:"reschedule_requested_at"`

	// Snapshot of the stylist's policy at creation time, not live-linked.
	CancellationDeadlineHours int `json:"cancellation_deadline_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
