package models

import "time"

type Address struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Address string `gorm:"size:255;not null" json:"address"`
	City    string `gorm:"size:100;not null" json:"city"`
	State   string `gorm:"size:100;not null" json:"state"`
	Pincode string `gorm:"size:10;not null" json:"pincode"`

	// Nil for clinic-owned addresses attached to doctor records.
	UserID *uint `gorm:"index" json:"user_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
