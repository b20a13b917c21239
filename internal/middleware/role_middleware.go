package middleware

import (
	"checkrrhh-backend/internal/model"

	"github.com/gofiber/fiber/v2"
)

func Role(allowedRoles ...model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Set by Auth
		userRole, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "access denied: no role", "code": "forbidden"})
		}

		for _, role := range allowedRoles {
			if string(role) == userRole {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "access denied for role " + userRole, "code": "forbidden"})
	}
}
