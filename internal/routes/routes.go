package routes

import (
	"clinic-booking-server/internal/config"
	"clinic-booking-server/internal/handlers"
	"clinic-booking-server/internal/middleware"
	"clinic-booking-server/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	slotHandler := handlers.NewSlotHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(db, cfg)
	articleHandler := handlers.NewArticleHandler(db)
	settingsHandler := handlers.NewSettingsHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(db)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh-token", authHandler.RefreshToken)
		}

		// Booking flow
		public.GET("/slots", slotHandler.ListAvailable)
		public.POST("/appointments", appointmentHandler.Reserve)

		// Articles and the like toggle
		public.GET("/articles", articleHandler.ListPublished)
		public.GET("/articles/:slug", articleHandler.GetBySlug)
		public.POST("/article-likes/:id", articleHandler.ToggleLike)

		// Contact page reads the clinic settings
		public.GET("/settings", settingsHandler.Get)
	}

	// Admin console routes
	admin := router.Group("/api/v1/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		admin.POST("/auth/logout", authHandler.Logout)
		admin.GET("/auth/profile", authHandler.GetProfile)

		admin.GET("/dashboard", dashboardHandler.Get)

		admin.GET("/slots", slotHandler.List)
		admin.POST("/slots", slotHandler.Create)
		admin.DELETE("/slots/:id", slotHandler.Delete)

		admin.GET("/appointments", appointmentHandler.List)
		admin.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
		admin.GET("/appointments/:id/reminder", appointmentHandler.Reminder)

		admin.GET("/articles", articleHandler.List)
		admin.POST("/articles", articleHandler.Create)
		admin.PUT("/articles/:id", articleHandler.Update)
		admin.DELETE("/articles/:id", articleHandler.Delete)

		admin.GET("/settings", settingsHandler.Get)
		admin.PUT("/settings", settingsHandler.Update)
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
