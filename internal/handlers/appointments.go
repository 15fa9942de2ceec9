package handlers

import (
	"errors"
	"time"

	"clinic-booking-server/internal/config"
	"clinic-booking-server/internal/models"
	"clinic-booking-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// errSlotTaken marks a reservation conflict inside the booking transaction.
var errSlotTaken = errors.New("slot already booked")

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(db *gorm.DB, cfg *config.Config) *AppointmentHandler {
	return &AppointmentHandler{DB: db, Cfg: cfg}
}

// ReserveRequest represents the request body for booking a slot.
type ReserveRequest struct {
	SlotID      string `json:"slotId" binding:"required,uuid"`
	PatientName string `json:"patientName" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	ChildAge    string `json:"childAge" binding:"required"`
	Notes       string `json:"notes"`
}

// ReserveResponse carries the created appointment and the WhatsApp link the
// client opens so the visitor can confirm the booking with the clinic.
type ReserveResponse struct {
	Appointment models.Appointment `json:"appointment"`
	WhatsAppURL string             `json:"whatsappUrl"`
}

// Reserve converts a visitor's slot selection into a confirmed appointment.
// The whole sequence runs in one transaction with the slot row locked, so
// two visitors racing for the same slot cannot both succeed: the loser sees
// the slot as booked (or trips the unique index on slot_id) and gets a 409.
// Either everything is persisted or nothing is.
func (h *AppointmentHandler) Reserve(c *gin.Context) {
	var req ReserveRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var appointment models.Appointment
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var slot models.Slot
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&slot, "id = ?", req.SlotID).Error; err != nil {
			return err
		}
		if slot.Status != models.SlotAvailable {
			return errSlotTaken
		}

		var existing int64
		if err := tx.Model(&models.Appointment{}).
			Where("slot_id = ? AND status <> ?", slot.ID, models.StatusCancelled).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return errSlotTaken
		}

		appointment = models.Appointment{
			SlotID:      slot.ID,
			PatientName: req.PatientName,
			Phone:       req.Phone,
			ChildAge:    req.ChildAge,
			Notes:       req.Notes,
			Status:      models.StatusConfirmed,
			BookedAt:    time.Now(),
		}
		if err := tx.Create(&appointment).Error; err != nil {
			return err
		}

		if err := tx.Model(&slot).Update("status", models.SlotBooked).Error; err != nil {
			return err
		}

		slot.Status = models.SlotBooked
		appointment.Slot = slot
		return nil
	})

	switch {
	case err == nil:
		// Booked.
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.NotFound(c, "Slot not found")
		return
	case errors.Is(err, errSlotTaken), errors.Is(err, gorm.ErrDuplicatedKey):
		utils.Conflict(c, "Sorry, this slot has already been booked. Please pick another one.")
		return
	default:
		utils.InternalServerError(c, "Failed to book the appointment: "+err.Error())
		return
	}

	contact := h.clinicContact()
	message := utils.BookingMessage(&appointment, &appointment.Slot, contact.Address)

	utils.Created(c, "Appointment booked successfully", ReserveResponse{
		Appointment: appointment,
		WhatsAppURL: utils.WhatsAppLink(contact.WhatsApp, message),
	})
}

// List handles fetching appointments for the admin console, newest first,
// optionally filtered by a name/phone search term.
func (h *AppointmentHandler) List(c *gin.Context) {
	query := h.DB.Preload("Slot").Order("created_at desc")

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("patient_name LIKE ? OR phone LIKE ?", like, like)
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}

	utils.Success(c, "Appointments fetched successfully", appointments)
}

// UpdateStatusRequest represents the request body for updating an
// appointment's status.
type UpdateStatusRequest struct {
	Status models.AppointmentStatus `json:"status" binding:"required,oneof=confirmed cancelled completed"`
}

// UpdateStatus handles marking an appointment cancelled or completed (admin).
// The slot is not released either way; cancellations are handled over the
// phone and the admin re-creates the slot if it should open up again.
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var appointment models.Appointment
	if err := h.DB.Preload("Slot").First(&appointment, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	appointment.Status = req.Status
	if err := h.DB.Save(&appointment).Error; err != nil {
		utils.InternalServerError(c, "Failed to update appointment status: "+err.Error())
		return
	}

	utils.Success(c, "Appointment status updated successfully", appointment)
}

// ReminderResponse carries the WhatsApp link for a patient reminder.
type ReminderResponse struct {
	WhatsAppURL string `json:"whatsappUrl"`
}

// Reminder composes a WhatsApp reminder link addressed to the patient's own
// number (admin).
func (h *AppointmentHandler) Reminder(c *gin.Context) {
	var appointment models.Appointment
	if err := h.DB.Preload("Slot").First(&appointment, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Appointment not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	contact := h.clinicContact()
	message := utils.ReminderMessage(&appointment, &appointment.Slot, contact.Address)
	link := utils.WhatsAppLink(appointment.Phone, message)
	if link == "" {
		utils.BadRequest(c, "Appointment has no usable phone number")
		return
	}

	utils.Success(c, "Reminder link composed successfully", ReminderResponse{WhatsAppURL: link})
}

// clinicContact reads the clinic contact settings, falling back to the
// configured defaults when rows are missing or unreadable. A booking must
// not fail just because the settings table is empty.
func (h *AppointmentHandler) clinicContact() models.ContactInfo {
	fallback := models.ContactInfo{
		WhatsApp: h.Cfg.Clinic.WhatsApp,
		Address:  h.Cfg.Clinic.Address,
	}

	var rows []models.ClinicSetting
	if err := h.DB.Find(&rows).Error; err != nil {
		return fallback
	}
	settings, err := models.SettingsFromRows(rows)
	if err != nil {
		return fallback
	}

	contact := settings.ContactInfo
	if contact.WhatsApp == "" {
		contact.WhatsApp = fallback.WhatsApp
	}
	if contact.Address == "" {
		contact.Address = fallback.Address
	}
	return contact
}
