package routes

import (
	"checkrrhh-backend/internal/handler"
	"checkrrhh-backend/internal/middleware"
	"checkrrhh-backend/internal/model"
	"checkrrhh-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupCompanyRoutes(app *fiber.App, deps *Dependencies) {
	uc := usecase.NewCompanyUsecase(deps.Companies, deps.Users, deps.Attendance, deps.Attachments, deps.Publisher)
	hdl := handler.NewCompanyHandler(uc)

	api := app.Group("/api/admin/companies",
		middleware.Auth(deps.Config.Auth.JWTSecret),
		middleware.Role(model.RoleCompanyAdmin, model.RoleSuperAdmin))

	// Company admins only see their own company
	api.Get("/", hdl.List)
	api.Get("/:id", hdl.Get)

	// Super Admin only
	superAdmin := middleware.Role(model.RoleSuperAdmin)
	api.Post("/", superAdmin, hdl.Create)
	api.Put("/:id", superAdmin, hdl.Update)
	api.Delete("/:id", superAdmin, hdl.Delete) // Cascades users, events and attachments
}
