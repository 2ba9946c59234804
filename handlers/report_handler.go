package handlers

import (
	"fmt"
	"strings"

	"esuka/dto"
	"esuka/services"
	"esuka/utils"
	"esuka/utils/report"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// GetLaporan answers json by default; format=pdf or format=xlsx downloads
// the rendered file.
func (h *ReportHandler) GetLaporan(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return respondError(c, err, "")
	}

	var req dto.ReportRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.BadRequest(c, "invalid query", err.Error())
	}
	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	r, err := h.reports.Build(c.UserContext(), actor, req.ToQuery())
	if err != nil {
		return respondError(c, err, "Gagal membuat laporan")
	}

	if req.Format == report.FormatJSON {
		return utils.OK(c, r.Title, dto.NewReportResponse(r))
	}

	body, err := h.reports.Render(r, req.Format)
	if err != nil {
		return respondError(c, err, "Gagal membuat laporan")
	}

	contentType, ext := report.ContentType(req.Format)
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, reportFilename(r, ext)))
	return c.Status(fiber.StatusOK).Send(body)
}

// reportFilename gives e.g. laporan-surat-masuk-juni-2024.pdf.
func reportFilename(r *services.Report, ext string) string {
	name := strings.ToLower(r.Title + " " + r.Period)
	return strings.Join(strings.Fields(name), "-") + ext
}
