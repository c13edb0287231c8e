package models

import "time"

// AvailabilityWindow holds the open-for-business hours of one stylist on one
// weekday (Monday=0 .. Sunday=6). The unique index makes writes an upsert by
// (stylist, weekday): there is never more than one row per pair.
type AvailabilityWindow struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	StylistID uint `gorm:"not null;uniqueIndex:idx_stylist_weekday" json:"stylist_id"`

	Weekday int `gorm:"not null;uniqueIndex:idx_stylist_weekday" json:"weekday"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Active    bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
