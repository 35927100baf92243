package handlers

import (
	"fmt"

	"employee-tracker/internal/core/services"
	"employee-tracker/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler handles the admin reporting endpoints
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Statistics returns aggregate attendance figures for a date range
func (h *ReportHandler) Statistics(c *fiber.Ctx) error {
	stats, err := h.reportService.Statistics(c.Context(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return response.InternalServerError(c, "Error al obtener estadísticas")
	}
	return c.JSON(stats)
}

// Overtime returns the per-record overtime report for a date range
func (h *ReportHandler) Overtime(c *fiber.Ctx) error {
	report, err := h.reportService.OvertimeReport(c.Context(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return response.InternalServerError(c, "Error al generar reporte de horas extras")
	}
	return c.JSON(report)
}

// Export streams the filtered records as a CSV download
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	data, filename, err := h.reportService.ExportCSV(c.Context(), recordFiltersFromQuery(c))
	if err != nil {
		return response.InternalServerError(c, "Error generando CSV")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}
