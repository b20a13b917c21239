package routes

import (
	"checkrrhh-backend/internal/handler"
	"checkrrhh-backend/internal/middleware"
	"checkrrhh-backend/internal/model"
	"checkrrhh-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupAttendanceRoutes(app *fiber.App, deps *Dependencies) {
	uc := usecase.NewAttendanceUsecase(deps.Users, deps.Companies, deps.Attendance, deps.Attachments, deps.Publisher)
	hdl := handler.NewAttendanceHandler(uc)
	reports := handler.NewReportHandler(uc, deps.Config.Report.Delimiter)

	admin := app.Group("/api/admin",
		middleware.Auth(deps.Config.Auth.JWTSecret),
		middleware.Role(model.RoleCompanyAdmin, model.RoleSuperAdmin))

	admin.Get("/events", hdl.List)
	admin.Post("/events/absence", hdl.MarkAbsence)
	admin.Get("/events/:id/attachments", hdl.Attachments)
	admin.Post("/events/:id/attachments", hdl.Attach)

	admin.Get("/reports/events", reports.Events) // ?format=json|csv|xlsx
}
