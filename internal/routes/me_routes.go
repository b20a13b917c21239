package routes

import (
	"checkrrhh-backend/internal/handler"
	"checkrrhh-backend/internal/middleware"
	"checkrrhh-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupMeRoutes(app *fiber.App, deps *Dependencies) {
	uc := usecase.NewUserUsecase(deps.Users, deps.Companies, deps.Attendance, deps.Attachments, deps.Publisher)
	hdl := handler.NewMeHandler(uc)

	// Any signed-in user
	api := app.Group("/api/me", middleware.Auth(deps.Config.Auth.JWTSecret))
	api.Get("/", hdl.Profile)
	api.Get("/events", hdl.Events)
	api.Get("/qr", hdl.QR)
}
