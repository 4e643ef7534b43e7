package main

import (
	"log"
	"time"

	"clinica_app_go/config"
	"clinica_app_go/db"
	"clinica_app_go/handlers"
	"clinica_app_go/middleware"
	"clinica_app_go/models"
	"clinica_app_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(&models.Setting{}, &models.BlockedSlot{}, &models.Appointment{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// The partial unique index backing the booking transaction cannot be
	// expressed with GORM tags
	if err := services.EnsureAppointmentSlotIndex(db.DB); err != nil {
		log.Fatalf("Failed to create appointment slot index: %v", err)
	}

	// Seed the schedule configuration on first deployment
	if err := services.EnsureScheduleConfig(db.DB); err != nil {
		log.Fatalf("Failed to seed schedule configuration: %v", err)
	}

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Public calendar routes, rate limited per IP
	bookingLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Requests: cfg.BookingRateLimit,
		Window:   time.Minute,
	})
	calendario := e.Group("/api/calendario")
	calendario.Use(bookingLimiter.Middleware())
	{
		calendario.GET("/horarios", handlers.GetHorariosHandler)
		calendario.POST("/agendar", handlers.AgendarHandler)
		calendario.POST("/cancelar", handlers.CancelarHandler)
	}

	// Admin routes (bearer token)
	admin := e.Group("/api/admin")
	admin.Use(middleware.RequireAdminToken(cfg.AdminAPIToken))
	{
		admin.GET("/blocked-slots", handlers.GetBlockedSlotsHandler)
		admin.POST("/blocked-slots", handlers.CreateBlockedSlotHandler)
		admin.PATCH("/blocked-slots/:id", handlers.ToggleBlockedSlotHandler)
		admin.DELETE("/blocked-slots/:id", handlers.DeleteBlockedSlotHandler)

		admin.GET("/settings/schedule", handlers.GetScheduleSettingsHandler)
		admin.PUT("/settings/schedule", handlers.UpdateScheduleSettingsHandler)

		admin.GET("/agendamentos", handlers.GetAgendamentosHandler)
		admin.PATCH("/agendamentos/:id/status", handlers.UpdateAgendamentoStatusHandler)
		admin.GET("/agendamentos/export", handlers.ExportAgendamentosHandler)
	}

	// Start server
	log.Printf("Starting server on port %s (%s)", cfg.ServerPort, cfg.Environment)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
