package models

import "time"

// BookingStatusHistory is the append-only audit trail of status transitions.
// Rows are never updated or deleted.
type BookingStatusHistory struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	BookingID uint `gorm:"not null;index" json:"booking_id"`

	OldStatus *string `gorm:"size:25" json:"old_status"`
	NewStatus string  `gorm:"size:25;not null" json:"new_status"`

	// ChangedBy is the acting user id; 0 marks system-driven transitions
	// such as the no-show sweep.
	ChangedBy uint   `json:"changed_by"`
	Reason    string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}

func (BookingStatusHistory) TableName() string {
	return "booking_status_history"
}
