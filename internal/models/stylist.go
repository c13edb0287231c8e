package models

import "time"

// Stylist is the professional profile, one-to-one with its User account.
type Stylist struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	BusinessName    string `gorm:"size:100;not null" json:"business_name"`
	Bio             string `gorm:"size:500" json:"bio"`
	ProfileImageURL string `gorm:"size:255" json:"profile_image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
