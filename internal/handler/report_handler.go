package handler

import (
	"checkrrhh-backend/internal/report"
	"checkrrhh-backend/internal/usecase"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// Spreadsheet apps need it to read UTF-8 names correctly.
	utf8BOM = "\ufeff"
)

type ReportHandler struct {
	usecase   *usecase.AttendanceUsecase
	delimiter rune
	now       func() time.Time
}

func NewReportHandler(u *usecase.AttendanceUsecase, delimiter rune) *ReportHandler {
	return &ReportHandler{usecase: u, delimiter: delimiter, now: time.Now}
}

// Events serves the filtered event list as ?format=json (default), csv or
// xlsx. Filters: date, from, to, employee, kind, company_id.
func (h *ReportHandler) Events(c *fiber.Ctx) error {
	var filter report.Filter
	if err := c.QueryParser(&filter); err != nil {
		return badRequest(c, "invalid filter")
	}
	companyID, ok := queryCompany(c)
	if !ok {
		return badRequest(c, "invalid company_id")
	}

	events, err := h.usecase.Report(actorOf(c), companyID, filter)
	if err != nil {
		return fail(c, err)
	}

	stamp := h.now().Format("2006-01-02")
	switch c.Query("format", "json") {
	case "json":
		return c.JSON(fiber.Map{"data": events, "count": len(events)})
	case "csv":
		text, err := report.ToDelimitedText(events, h.delimiter)
		if err != nil {
			return fail(c, err)
		}
		c.Set(fiber.HeaderContentType, contentTypeCSV)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="events-%s.csv"`, stamp))
		return c.SendString(utf8BOM + text)
	case "xlsx":
		data, err := report.ToXLSX(events)
		if err != nil {
			return fail(c, err)
		}
		c.Set(fiber.HeaderContentType, contentTypeXLSX)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="events-%s.xlsx"`, stamp))
		return c.Send(data)
	}
	return badRequest(c, "format must be json, csv or xlsx")
}
