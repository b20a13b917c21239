package handler

import (
	"checkrrhh-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

const myEventsLimit = 31 * 4

type MeHandler struct {
	usecase *usecase.UserUsecase
}

func NewMeHandler(u *usecase.UserUsecase) *MeHandler {
	return &MeHandler{usecase: u}
}

func (h *MeHandler) Profile(c *fiber.Ctx) error {
	user, err := h.usecase.Me(actorOf(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"data": user})
}

func (h *MeHandler) Events(c *fiber.Ctx) error {
	events, err := h.usecase.MyEvents(actorOf(c), c.QueryInt("limit", myEventsLimit))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"data": events})
}

func (h *MeHandler) QR(c *fiber.Ctx) error {
	png, err := h.usecase.MyQR(actorOf(c))
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
