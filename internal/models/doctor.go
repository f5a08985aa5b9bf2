package models

import "time"

type Doctor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name           string `gorm:"size:100;not null" json:"name"`
	Specialization string `gorm:"size:100;not null" json:"specialization"`
	Experience     int    `gorm:"default:0" json:"experience"`

	DOB    *time.Time `json:"dob,omitempty"`
	Email  string     `gorm:"size:100;not null" json:"email"`
	Mobile string     `gorm:"size:20;not null" json:"mobile"`

	Availability bool `gorm:"default:true" json:"availability"`

	// Derived mean of all ratings for this doctor, rounded to one decimal.
	// Written only by the rating aggregator.
	Rating float64 `gorm:"default:0" json:"rating"`

	AddressID *uint    `json:"address_id,omitempty"`
	Address   *Address `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"address,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const DefaultSpecialization = "GENERAL_PHYSICIAN"
