package utils

import (
	"strings"
	"testing"

	"clinic-booking-server/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("+20 123-456-7890", "New booking")
	assert.Equal(t, "https://wa.me/201234567890?text=New+booking", link)
}

func TestWhatsAppLinkNoDigits(t *testing.T) {
	assert.Equal(t, "", WhatsAppLink("n/a", "hello"))
	assert.Equal(t, "", WhatsAppLink("", "hello"))
}

func TestBookingMessage(t *testing.T) {
	appt := &models.Appointment{
		PatientName: "Ali",
		Phone:       "0100000000",
		ChildAge:    "3",
		Notes:       "first visit",
	}
	slot := &models.Slot{Date: "2025-06-01", Time: "10:00"}

	msg := BookingMessage(appt, slot, "12 Clinic St.")

	assert.Contains(t, msg, "Name: Ali")
	assert.Contains(t, msg, "Phone: 0100000000")
	assert.Contains(t, msg, "Child age: 3")
	assert.Contains(t, msg, "Date: 2025-06-01")
	assert.Contains(t, msg, "Time: 10:00")
	assert.Contains(t, msg, "Address: 12 Clinic St.")
	assert.Contains(t, msg, "Notes: first visit")
}

func TestBookingMessageOmitsEmptyOptionalLines(t *testing.T) {
	appt := &models.Appointment{PatientName: "Ali", Phone: "0100000000", ChildAge: "3"}
	slot := &models.Slot{Date: "2025-06-01", Time: "10:00"}

	msg := BookingMessage(appt, slot, "")

	assert.False(t, strings.Contains(msg, "Address:"))
	assert.False(t, strings.Contains(msg, "Notes:"))
}

func TestReminderMessage(t *testing.T) {
	appt := &models.Appointment{PatientName: "Ali"}
	slot := &models.Slot{Date: "2025-06-01", Time: "10:00"}

	msg := ReminderMessage(appt, slot, "12 Clinic St.")

	assert.Contains(t, msg, "Appointment reminder")
	assert.Contains(t, msg, "Date: 2025-06-01")
	assert.Contains(t, msg, "Address: 12 Clinic St.")
}
