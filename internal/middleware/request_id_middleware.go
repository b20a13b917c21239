package middleware

import (
	"checkrrhh-backend/internal/logger"
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestID adds a unique request ID to each request and to the logger
// context.
func RequestID(c *fiber.Ctx) error {
	requestID := c.Get("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
	}
	c.Set("X-Request-ID", requestID)
	c.SetUserContext(context.WithValue(c.UserContext(), logger.RequestIDKey, requestID))
	return c.Next()
}
