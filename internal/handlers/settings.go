package handlers

import (
	"clinic-booking-server/internal/models"
	"clinic-booking-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsHandler handles the clinic settings.
type SettingsHandler struct {
	DB *gorm.DB
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{DB: db}
}

// Get handles fetching the clinic settings as one typed document. The same
// handler serves the public contact page and the admin settings form.
func (h *SettingsHandler) Get(c *gin.Context) {
	var rows []models.ClinicSetting
	if err := h.DB.Find(&rows).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch settings: "+err.Error())
		return
	}

	settings, err := models.SettingsFromRows(rows)
	if err != nil {
		utils.InternalServerError(c, "Failed to decode settings: "+err.Error())
		return
	}

	utils.Success(c, "Settings fetched successfully", settings)
}

// Update handles saving the clinic settings (admin). Each section becomes
// one upsert keyed on the section name, all inside a single transaction so
// a failing section leaves the stored settings untouched.
func (h *SettingsHandler) Update(c *gin.Context) {
	var settings models.ClinicSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	rows, err := settings.Rows()
	if err != nil {
		utils.BadRequest(c, "Failed to encode settings: "+err.Error())
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&rows[i]).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.InternalServerError(c, "Failed to save settings: "+err.Error())
		return
	}

	utils.Success(c, "Settings saved successfully", settings)
}
