package middleware

import (
	"checkrrhh-backend/internal/logger"
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Auth verifies the bearer token and stores its claims in Locals:
// "user_id" (uint), "role" (string) and "company_id" (*uint, nil for the
// super-admin).
func Auth(secret string) fiber.Handler {
	key := []byte(secret)
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing token", "code": "unauthorized"})
		}

		// Format: "Bearer <token>"
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.ErrUnauthorized
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token", "code": "unauthorized"})
		}

		claims := token.Claims.(jwt.MapClaims)
		userID, ok := claimID(claims["user_id"])
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token claims", "code": "unauthorized"})
		}
		role, _ := claims["role"].(string)

		var companyID *uint
		if id, ok := claimID(claims["company_id"]); ok {
			companyID = &id
		}

		c.Locals("user_id", userID)
		c.Locals("role", role)
		c.Locals("company_id", companyID)
		c.SetUserContext(context.WithValue(c.UserContext(), logger.UserIDKey, userID))

		return c.Next()
	}
}

// JSON numbers decode as float64.
func claimID(v interface{}) (uint, bool) {
	f, ok := v.(float64)
	if !ok || f <= 0 {
		return 0, false
	}
	return uint(f), true
}
