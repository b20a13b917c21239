package handler

import (
	"checkrrhh-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type CompanyHandler struct {
	usecase *usecase.CompanyUsecase
}

func NewCompanyHandler(u *usecase.CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{usecase: u}
}

func (h *CompanyHandler) List(c *fiber.Ctx) error {
	companies, err := h.usecase.List(actorOf(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"data": companies})
}

func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid company id")
	}
	company, err := h.usecase.Get(actorOf(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"data": company})
}

func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var req usecase.CompanyInput
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	company, err := h.usecase.Create(actorOf(c), req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "company created", "data": company})
}

func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid company id")
	}
	var req usecase.CompanyInput
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	company, err := h.usecase.Update(actorOf(c), id, req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "company updated", "data": company})
}

// Delete expects {"confirmed": true, "company_name": "<exact name>"}.
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "invalid company id")
	}
	var confirm usecase.Confirmation
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&confirm); err != nil {
			return badRequest(c, "invalid body")
		}
	}

	result, err := h.usecase.DeleteCompany(c.UserContext(), actorOf(c), id, confirm)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "company deleted", "data": result})
}
