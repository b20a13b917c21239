package handler

import (
	"checkrrhh-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AttendanceHandler struct {
	usecase *usecase.AttendanceUsecase
}

func NewAttendanceHandler(u *usecase.AttendanceUsecase) *AttendanceHandler {
	return &AttendanceHandler{usecase: u}
}

// List returns up to ?limit= (max 100) recent events, newest first.
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	companyID, ok := queryCompany(c)
	if !ok {
		return badRequest(c, "invalid company_id")
	}
	events, err := h.usecase.ListEvents(actorOf(c), companyID, c.QueryInt("limit", usecase.DefaultEventLimit))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"data": events})
}

func (h *AttendanceHandler) MarkAbsence(c *fiber.Ctx) error {
	var req struct {
		UserID uint   `json:"user_id"`
		Date   string `json:"date"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.UserID == 0 {
		return badRequest(c, "user_id is required")
	}

	event, err := h.usecase.MarkAbsence(c.UserContext(), actorOf(c), req.UserID, req.Date)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "absence recorded", "data": event})
}

func (h *AttendanceHandler) Attach(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid event id")
	}
	var req usecase.AttachmentInput
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	attachment, event, err := h.usecase.Attach(c.UserContext(), actorOf(c), id, req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "attachment stored",
		"data":    attachment,
		"event":   event,
	})
}

func (h *AttendanceHandler) Attachments(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid event id")
	}
	list, err := h.usecase.ListAttachmentsByEvent(actorOf(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"data": list})
}
