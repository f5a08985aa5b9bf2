package models

import "time"

type Rating struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// One rating per appointment, enforced both here and in the use case.
	AppointmentID uint        `gorm:"uniqueIndex;not null" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	DoctorID uint `gorm:"index;not null" json:"doctor_id"`
	UserID   uint `gorm:"index;not null" json:"user_id"`

	// Integer in [1, 5].
	Rating int `gorm:"not null" json:"rating"`

	Comments string `gorm:"size:500" json:"comments"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
