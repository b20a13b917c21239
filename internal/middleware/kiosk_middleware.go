package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// KioskKey guards the scan endpoint with a shared X-Kiosk-Key header. An
// empty key leaves the endpoint open.
func KioskKey(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if key == "" {
			return c.Next()
		}
		if subtle.ConstantTimeCompare([]byte(c.Get("X-Kiosk-Key")), []byte(key)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid kiosk key", "code": "unauthorized"})
		}
		return c.Next()
	}
}
