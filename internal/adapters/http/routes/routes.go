package routes

import (
	"employee-tracker/internal/adapters/http/handlers"
	"employee-tracker/internal/adapters/http/middleware"
	"employee-tracker/internal/adapters/persistence/repositories"
	"employee-tracker/internal/config"
	"employee-tracker/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	employeeRepo := repositories.NewEmployeeRepository(db)
	recordRepo := repositories.NewTimeRecordRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)

	// Initialize services
	employeeService := services.NewEmployeeService(employeeRepo)
	timeclockService := services.NewTimeClockService(recordRepo, settingsRepo, cfg.Location)
	settingsService := services.NewSettingsService(settingsRepo)
	reportService := services.NewReportService(recordRepo, settingsRepo, cfg.Location)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(cfg)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	timeclockHandler := handlers.NewTimeClockHandler(timeclockService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	reportHandler := handlers.NewReportHandler(reportService)

	adminOnly := middleware.AdminAuth(cfg)

	// Frontend assets for the terminal and the admin panel, mounted first so
	// public/index.html wins at / when present. A miss falls through to the
	// API-info handler below.
	app.Static("/", "./public")

	// Health & root
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	api := app.Group("/api")

	// Admin session
	admin := api.Group("/admin")
	admin.Post("/login", middleware.LoginRateLimiter(), authHandler.Login)
	admin.Post("/logout", authHandler.Logout)
	admin.Get("/verify", authHandler.Verify)

	// Employees. The by-idcard route must be registered before /:id.
	employees := api.Group("/employees")
	employees.Get("/", employeeHandler.List)
	employees.Get("/by-idcard/:idCard", employeeHandler.GetByIDCard)
	employees.Get("/:id", employeeHandler.Get)
	employees.Get("/:id/status", timeclockHandler.Status)
	employees.Get("/:id/today", timeclockHandler.Today)
	employees.Post("/", adminOnly, employeeHandler.Create)
	employees.Delete("/:id", adminOnly, employeeHandler.Deactivate)

	// Clock terminal (unauthenticated: the shop-floor terminal identifies
	// employees by id card, not by session)
	api.Post("/clock-in", timeclockHandler.ClockIn)
	api.Post("/clock-out", timeclockHandler.ClockOut)
	api.Post("/lunch-start", timeclockHandler.LunchStart)
	api.Post("/lunch-end", timeclockHandler.LunchEnd)

	// Records (admin)
	records := api.Group("/records", adminOnly)
	records.Get("/export", reportHandler.Export)
	records.Get("/", timeclockHandler.List)
	records.Delete("/:id", timeclockHandler.Delete)

	// Reports & settings (admin)
	api.Get("/statistics", adminOnly, reportHandler.Statistics)
	api.Get("/reports/overtime", adminOnly, reportHandler.Overtime)
	api.Get("/settings", adminOnly, settingsHandler.Get)
	api.Put("/settings", adminOnly, settingsHandler.Update)

	// 404 fallback
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Ruta no encontrada",
		})
	})
}
