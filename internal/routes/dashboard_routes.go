package routes

import (
	"checkrrhh-backend/internal/handler"
	"checkrrhh-backend/internal/middleware"
	"checkrrhh-backend/internal/model"
	"checkrrhh-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App, deps *Dependencies) {
	uc := usecase.NewDashboardUsecase(deps.Users, deps.Attendance)
	hdl := handler.NewDashboardHandler(uc, deps.Config.Location)

	api := app.Group("/api/admin/dashboard",
		middleware.Auth(deps.Config.Auth.JWTSecret),
		middleware.Role(model.RoleCompanyAdmin, model.RoleSuperAdmin))
	api.Get("/", hdl.GetStats)
}
