package handler

import (
	"checkrrhh-backend/internal/report"
	"checkrrhh-backend/internal/usecase"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

type KioskHandler struct {
	usecase *usecase.ScanUsecase
	now     func() time.Time
}

// NewKioskHandler stamps scans with the current time in loc.
func NewKioskHandler(u *usecase.ScanUsecase, loc *time.Location) *KioskHandler {
	if loc == nil {
		loc = time.Local
	}
	return &KioskHandler{usecase: u, now: func() time.Time { return time.Now().In(loc) }}
}

func (h *KioskHandler) Scan(c *fiber.Ctx) error {
	var input struct {
		QRToken string `json:"qr_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid body")
	}

	event, err := h.usecase.RecordScan(c.UserContext(), input.QRToken, h.now())
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": strings.ToUpper(report.DisplayKind(event.Kind)) + " recorded: " + event.UserName,
		"data":    event,
	})
}
