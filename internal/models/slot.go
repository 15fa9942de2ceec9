package models

// SlotStatus represents the status of a bookable slot
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
)

// Slot represents a date/time unit the clinic offers for booking.
// Date and Time are kept as the "YYYY-MM-DD" / "HH:MM" strings the admin
// enters; zero-padded values sort correctly with a plain ORDER BY.
// A slot goes available -> booked exactly once; there is no release path,
// cancelling an appointment keeps the slot booked.
type Slot struct {
	BaseModel
	Date   string     `gorm:"size:10;not null;uniqueIndex:idx_slot_date_time" json:"date"`
	Time   string     `gorm:"size:5;not null;uniqueIndex:idx_slot_date_time" json:"time"`
	Status SlotStatus `gorm:"size:20;default:'available'" json:"status"`
}

// TableName keeps the table the public site historically used.
func (Slot) TableName() string {
	return "available_slots"
}
