package routes

import "github.com/gofiber/fiber/v2"

// Setup mounts every route group.
func Setup(app *fiber.App, deps *Dependencies) {
	SetupAuthRoutes(app, deps)
	SetupKioskRoutes(app, deps)
	SetupMeRoutes(app, deps)
	SetupCompanyRoutes(app, deps)
	SetupEmployeeRoutes(app, deps)
	SetupAttendanceRoutes(app, deps)
	SetupDashboardRoutes(app, deps)
}
