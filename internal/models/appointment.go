package models

import (
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// Appointment represents a patient's reservation against a specific slot.
// The unique index on SlotID is what makes double booking impossible even
// when two reservations race: the second insert fails at the database.
type Appointment struct {
	BaseModel
	SlotID      string            `gorm:"size:36;uniqueIndex;not null" json:"slotId"`
	PatientName string            `gorm:"size:255;not null" json:"patientName"`
	Phone       string            `gorm:"size:30;not null" json:"phone"`
	ChildAge    string            `gorm:"size:20" json:"childAge"`
	Notes       string            `gorm:"type:text" json:"notes"`
	Status      AppointmentStatus `gorm:"size:20;default:'confirmed'" json:"status"`
	BookedAt    time.Time         `json:"bookedAt"`

	// Relations
	Slot Slot `gorm:"foreignKey:SlotID" json:"slot"`
}
