package utils

import (
	"fmt"
	"net/url"
	"strings"

	"clinic-booking-server/internal/models"
)

// WhatsAppLink builds a wa.me deep link for the given phone number with a
// pre-filled message. The number is reduced to digits only; wa.me rejects
// anything else. Returns "" when no usable number remains.
func WhatsAppLink(phone, text string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return ""
	}
	return "https://wa.me/" + digits.String() + "?text=" + url.QueryEscape(text)
}

// BookingMessage composes the confirmation text a visitor forwards to the
// clinic's WhatsApp after booking.
func BookingMessage(appt *models.Appointment, slot *models.Slot, address string) string {
	var b strings.Builder
	b.WriteString("New booking from the website\n")
	fmt.Fprintf(&b, "Name: %s\n", appt.PatientName)
	fmt.Fprintf(&b, "Phone: %s\n", appt.Phone)
	fmt.Fprintf(&b, "Child age: %s\n", appt.ChildAge)
	fmt.Fprintf(&b, "Date: %s\n", slot.Date)
	fmt.Fprintf(&b, "Time: %s", slot.Time)
	if address != "" {
		fmt.Fprintf(&b, "\nAddress: %s", address)
	}
	if appt.Notes != "" {
		fmt.Fprintf(&b, "\nNotes: %s", appt.Notes)
	}
	return b.String()
}

// ReminderMessage composes the reminder text the admin sends to a patient.
func ReminderMessage(appt *models.Appointment, slot *models.Slot, address string) string {
	var b strings.Builder
	b.WriteString("Appointment reminder\n")
	fmt.Fprintf(&b, "Name: %s\n", appt.PatientName)
	fmt.Fprintf(&b, "Date: %s\n", slot.Date)
	fmt.Fprintf(&b, "Time: %s", slot.Time)
	if address != "" {
		fmt.Fprintf(&b, "\nAddress: %s", address)
	}
	return b.String()
}
