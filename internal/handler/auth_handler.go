package handler

import (
	"checkrrhh-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	usecase *usecase.AuthUsecase
}

func NewAuthHandler(u *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{usecase: u}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid body")
	}
	if input.Email == "" || input.Password == "" {
		return badRequest(c, "email and password are required")
	}

	token, user, err := h.usecase.Login(input.Email, input.Password)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "login successful",
		"token":   token,
		"user":    user,
	})
}
