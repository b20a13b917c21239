package routes

import (
	"checkrrhh-backend/internal/handler"
	"checkrrhh-backend/internal/middleware"
	"checkrrhh-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupKioskRoutes(app *fiber.App, deps *Dependencies) {
	uc := usecase.NewScanUsecase(deps.Users, deps.Companies, deps.Attendance, deps.Locker, deps.Publisher, deps.Policy)
	hdl := handler.NewKioskHandler(uc, deps.Config.Location)

	api := app.Group("/api/kiosk", middleware.KioskKey(deps.Config.Auth.KioskKey))
	api.Post("/scan", hdl.Scan)
}
