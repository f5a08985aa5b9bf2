package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	DoctorID uint   `gorm:"index;not null" json:"doctor_id"`
	Doctor   Doctor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// Slot start. The slot occupies [AppointmentDate, AppointmentDate+slotDuration).
	AppointmentDate time.Time `gorm:"index;not null" json:"appointment_date"`

	Status string `gorm:"size:20;default:'booked'" json:"status"`

	Notes string `gorm:"size:255" json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
