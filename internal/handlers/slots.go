package handlers

import (
	"errors"
	"time"

	"clinic-booking-server/internal/models"
	"clinic-booking-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SlotHandler handles slot related requests.
type SlotHandler struct {
	DB *gorm.DB
}

// NewSlotHandler creates a new SlotHandler.
func NewSlotHandler(db *gorm.DB) *SlotHandler {
	return &SlotHandler{DB: db}
}

// ListAvailable handles the public slot listing that drives the booking
// calendar: available slots from the given date on (today by default),
// ordered by date then time.
func (h *SlotHandler) ListAvailable(c *gin.Context) {
	from := c.Query("from")
	if from == "" {
		from = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", from); err != nil {
		utils.BadRequest(c, "Invalid 'from' date, expected YYYY-MM-DD")
		return
	}

	var slots []models.Slot
	err := h.DB.
		Where("status = ? AND date >= ?", models.SlotAvailable, from).
		Order("date asc, time asc").
		Find(&slots).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch slots: "+err.Error())
		return
	}

	utils.Success(c, "Slots fetched successfully", slots)
}

// List handles fetching all slots for the admin console, booked ones included.
func (h *SlotHandler) List(c *gin.Context) {
	var slots []models.Slot
	if err := h.DB.Order("date asc, time asc").Find(&slots).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch slots: "+err.Error())
		return
	}

	utils.Success(c, "Slots fetched successfully", slots)
}

// CreateSlotRequest represents the request body for creating a slot.
type CreateSlotRequest struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
	Time string `json:"time" binding:"required,datetime=15:04"`
}

// Create handles adding a new bookable slot (admin).
func (h *SlotHandler) Create(c *gin.Context) {
	var req CreateSlotRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	slot := models.Slot{
		Date:   req.Date,
		Time:   req.Time,
		Status: models.SlotAvailable,
	}

	if err := h.DB.Create(&slot).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.Conflict(c, "A slot for this date and time already exists")
			return
		}
		utils.InternalServerError(c, "Failed to create slot: "+err.Error())
		return
	}

	utils.Created(c, "Slot created successfully", slot)
}

// Delete handles removing a slot (admin). Appointments referencing the slot
// are left untouched; the admin list still shows them with their details.
func (h *SlotHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	result := h.DB.Delete(&models.Slot{}, "id = ?", id)
	if result.Error != nil {
		utils.InternalServerError(c, "Failed to delete slot: "+result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Slot not found")
		return
	}

	utils.Success(c, "Slot deleted successfully", nil)
}
