package handler

import (
	"checkrrhh-backend/internal/usecase"
	"time"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	usecase *usecase.DashboardUsecase
	now     func() time.Time
}

func NewDashboardHandler(u *usecase.DashboardUsecase, loc *time.Location) *DashboardHandler {
	if loc == nil {
		loc = time.Local
	}
	return &DashboardHandler{usecase: u, now: func() time.Time { return time.Now().In(loc) }}
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	companyID, ok := queryCompany(c)
	if !ok {
		return badRequest(c, "invalid company_id")
	}

	stats, err := h.usecase.Today(c.UserContext(), actorOf(c), companyID, h.now())
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "dashboard loaded",
		"data":    stats,
	})
}
