package routes

import (
	"checkrrhh-backend/internal/handler"
	"checkrrhh-backend/internal/middleware"
	"checkrrhh-backend/internal/model"
	"checkrrhh-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupEmployeeRoutes(app *fiber.App, deps *Dependencies) {
	users := usecase.NewUserUsecase(deps.Users, deps.Companies, deps.Attendance, deps.Attachments, deps.Publisher)
	attendance := usecase.NewAttendanceUsecase(deps.Users, deps.Companies, deps.Attendance, deps.Attachments, deps.Publisher)
	hdl := handler.NewEmployeeHandler(users, attendance)

	api := app.Group("/api/admin/employees",
		middleware.Auth(deps.Config.Auth.JWTSecret),
		middleware.Role(model.RoleCompanyAdmin, model.RoleSuperAdmin))

	api.Get("/", hdl.List)
	api.Post("/", hdl.Create)
	api.Get("/:id", hdl.Get)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
	api.Post("/:id/qr", hdl.RegenerateQR)
	api.Get("/:id/qr.png", hdl.BadgePNG)
	api.Get("/:id/attachments", hdl.Attachments)
}
