package handler

import (
	"checkrrhh-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type EmployeeHandler struct {
	usecase    *usecase.UserUsecase
	attendance *usecase.AttendanceUsecase
}

func NewEmployeeHandler(u *usecase.UserUsecase, attendance *usecase.AttendanceUsecase) *EmployeeHandler {
	return &EmployeeHandler{usecase: u, attendance: attendance}
}

// List supports ?company_id= (super-admin) and ?search= on name or badge.
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	companyID, ok := queryCompany(c)
	if !ok {
		return badRequest(c, "invalid company_id")
	}
	users, err := h.usecase.ListEmployees(actorOf(c), companyID, c.Query("search"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"data": users})
}

func (h *EmployeeHandler) Get(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid employee id")
	}
	user, err := h.usecase.GetEmployee(actorOf(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"data": user})
}

func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var req usecase.EmployeeInput
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	user, err := h.usecase.CreateEmployee(actorOf(c), req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "employee created", "data": user})
}

func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid employee id")
	}
	var req usecase.EmployeeInput
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	user, err := h.usecase.UpdateEmployee(actorOf(c), id, req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "employee updated", "data": user})
}

func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid employee id")
	}
	if err := h.usecase.DeleteEmployee(c.UserContext(), actorOf(c), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "employee deleted"})
}

func (h *EmployeeHandler) RegenerateQR(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid employee id")
	}
	user, err := h.usecase.RegenerateQR(actorOf(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "badge regenerated", "data": user})
}

func (h *EmployeeHandler) BadgePNG(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid employee id")
	}
	png, err := h.usecase.BadgePNG(actorOf(c), id)
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

func (h *EmployeeHandler) Attachments(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid employee id")
	}
	list, err := h.attendance.ListAttachmentsByUser(actorOf(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"data": list})
}
