package routes

import (
	"checkrrhh-backend/internal/handler"
	"checkrrhh-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, deps *Dependencies) {
	uc := usecase.NewAuthUsecase(deps.Users, deps.Config.Auth.JWTSecret, deps.Config.Auth.TokenTTL)
	hdl := handler.NewAuthHandler(uc)

	app.Post("/api/login", hdl.Login)
}
