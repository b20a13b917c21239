package handler

import (
	"checkrrhh-backend/internal/logger"
	"checkrrhh-backend/internal/model"
	"checkrrhh-backend/internal/usecase"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Error codes returned next to the human readable "error" message.
const (
	CodeInvalidInput         = "invalid_input"
	CodeInvalidImage         = "invalid_image"
	CodeUnauthorized         = "unauthorized"
	CodeForbidden            = "forbidden"
	CodeNotFound             = "not_found"
	CodeUnknownQRToken       = "unknown_qr_token"
	CodeAlreadyClockedOut    = "already_clocked_out"
	CodeConcurrentScan       = "concurrent_scan"
	CodeConflict             = "conflict"
	CodeConfirmationRequired = "confirmation_required"
	CodePartialDeletion      = "deletion_partial_failure"
	CodeInternal             = "internal_error"
)

// fail renders err as {"error", "code"} with the matching status.
func fail(c *fiber.Ctx, err error) error {
	var partial *usecase.DeletionPartialFailure
	switch {
	case errors.As(err, &partial):
		logger.ErrorContext(c.UserContext(), "partial deletion", "company_id", partial.CompanyID, "step", partial.Step, "error", partial.Err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "deletion interrupted, run it again to finish",
			"code":  CodePartialDeletion,
			"step":  partial.Step,
		})
	case errors.Is(err, usecase.ErrUnknownQRToken):
		return errorJSON(c, fiber.StatusNotFound, CodeUnknownQRToken, "unknown badge")
	case errors.Is(err, usecase.ErrAlreadyClockedOut):
		return errorJSON(c, fiber.StatusConflict, CodeAlreadyClockedOut, "already clocked out today")
	case errors.Is(err, usecase.ErrConcurrentScan):
		return errorJSON(c, fiber.StatusConflict, CodeConcurrentScan, "another scan for this badge is in progress, try again")
	case errors.Is(err, usecase.ErrConfirmationRequired):
		return errorJSON(c, fiber.StatusPreconditionRequired, CodeConfirmationRequired, "confirm the deletion by repeating the company name")
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return errorJSON(c, fiber.StatusUnauthorized, CodeUnauthorized, err.Error())
	case errors.Is(err, usecase.ErrForbidden):
		return errorJSON(c, fiber.StatusForbidden, CodeForbidden, "access denied")
	case errors.Is(err, usecase.ErrNotFound):
		return errorJSON(c, fiber.StatusNotFound, CodeNotFound, "not found")
	case errors.Is(err, usecase.ErrInvalidImage):
		return errorJSON(c, fiber.StatusBadRequest, CodeInvalidImage, err.Error())
	case errors.Is(err, usecase.ErrInvalidInput):
		return errorJSON(c, fiber.StatusBadRequest, CodeInvalidInput, err.Error())
	case errors.Is(err, usecase.ErrEmailTaken), errors.Is(err, usecase.ErrDayHasEvents):
		return errorJSON(c, fiber.StatusConflict, CodeConflict, err.Error())
	}

	logger.ErrorContext(c.UserContext(), "request failed", "path", c.Path(), "error", err)
	return errorJSON(c, fiber.StatusInternalServerError, CodeInternal, "internal error")
}

func errorJSON(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg, "code": code})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return errorJSON(c, fiber.StatusBadRequest, CodeInvalidInput, msg)
}

// actorOf reads the claims stored by middleware.Auth.
func actorOf(c *fiber.Ctx) usecase.Actor {
	userID, _ := c.Locals("user_id").(uint)
	role, _ := c.Locals("role").(string)
	companyID, _ := c.Locals("company_id").(*uint)
	return usecase.Actor{UserID: userID, Role: model.Role(role), CompanyID: companyID}
}

func paramID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// queryCompany reads an optional ?company_id=.
func queryCompany(c *fiber.Ctx) (*uint, bool) {
	raw := c.Query("company_id")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return nil, false
	}
	v := uint(id)
	return &v, true
}
