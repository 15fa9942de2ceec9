package handlers

import (
	"clinic-booking-server/internal/models"
	"clinic-booking-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DashboardHandler serves the admin dashboard.
type DashboardHandler struct {
	DB *gorm.DB
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{DB: db}
}

// DashboardStats holds the counters shown on the admin dashboard.
type DashboardStats struct {
	TotalSlots        int64 `json:"totalSlots"`
	AvailableSlots    int64 `json:"availableSlots"`
	TotalAppointments int64 `json:"totalAppointments"`
	TotalArticles     int64 `json:"totalArticles"`
}

// DashboardResponse is the stats plus the most recent bookings.
type DashboardResponse struct {
	Stats              DashboardStats       `json:"stats"`
	RecentAppointments []models.Appointment `json:"recentAppointments"`
}

// Get handles fetching the dashboard counters and the five most recent
// appointments with their slot date/time.
func (h *DashboardHandler) Get(c *gin.Context) {
	var stats DashboardStats

	counts := []struct {
		query *gorm.DB
		dest  *int64
	}{
		{h.DB.Model(&models.Slot{}), &stats.TotalSlots},
		{h.DB.Model(&models.Slot{}).Where("status = ?", models.SlotAvailable), &stats.AvailableSlots},
		{h.DB.Model(&models.Appointment{}), &stats.TotalAppointments},
		{h.DB.Model(&models.Article{}), &stats.TotalArticles},
	}
	for _, count := range counts {
		if err := count.query.Count(count.dest).Error; err != nil {
			utils.InternalServerError(c, "Failed to fetch stats: "+err.Error())
			return
		}
	}

	var recent []models.Appointment
	err := h.DB.Preload("Slot").
		Order("created_at desc").
		Limit(5).
		Find(&recent).Error
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch recent appointments: "+err.Error())
		return
	}

	utils.Success(c, "Dashboard fetched successfully", DashboardResponse{
		Stats:              stats,
		RecentAppointments: recent,
	})
}
