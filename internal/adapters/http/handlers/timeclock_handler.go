package handlers

import (
	"strconv"

	"employee-tracker/internal/adapters/persistence/repositories"
	"employee-tracker/internal/core/services"
	"employee-tracker/internal/pkg/response"
	"employee-tracker/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// TimeClockHandler handles the clock terminal endpoints and the admin record
// browser
type TimeClockHandler struct {
	timeclockService *services.TimeClockService
}

// NewTimeClockHandler creates a new time clock handler
func NewTimeClockHandler(timeclockService *services.TimeClockService) *TimeClockHandler {
	return &TimeClockHandler{timeclockService: timeclockService}
}

// ClockInRequest represents a clock-in body
type ClockInRequest struct {
	EmployeeID uint     `json:"employeeId" validate:"required"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}

// EmployeeRequest represents the bodies that only carry an employee id
type EmployeeRequest struct {
	EmployeeID uint `json:"employeeId" validate:"required"`
}

// ClockIn opens a shift for the employee
func (h *TimeClockHandler) ClockIn(c *fiber.Ctx) error {
	var req ClockInRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Cuerpo de la solicitud inválido")
	}
	if err := validation.Struct(&req); err != nil {
		return response.BadRequest(c, "ID de empleado requerido")
	}

	result, err := h.timeclockService.ClockIn(c.Context(), &services.ClockInInput{
		EmployeeID: req.EmployeeID,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	})
	if err != nil {
		return handleDomainError(c, err, "Error al registrar entrada")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":   true,
		"recordId":  result.RecordID,
		"message":   result.Message,
		"isLate":    result.IsLate,
		"timestamp": result.Timestamp,
	})
}

// ClockOut closes the employee's open shift
func (h *TimeClockHandler) ClockOut(c *fiber.Ctx) error {
	req, err := parseEmployeeRequest(c)
	if err != nil {
		return response.BadRequest(c, "ID de empleado requerido")
	}

	rec, err := h.timeclockService.ClockOut(c.Context(), req.EmployeeID)
	if err != nil {
		return handleDomainError(c, err, "Error al registrar salida")
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"recordId":  rec.ID,
		"message":   "Salida registrada exitosamente",
		"timestamp": rec.ClockOut,
	})
}

// LunchStart marks the start of the lunch break
func (h *TimeClockHandler) LunchStart(c *fiber.Ctx) error {
	req, err := parseEmployeeRequest(c)
	if err != nil {
		return response.BadRequest(c, "ID de empleado requerido")
	}

	recordID, err := h.timeclockService.StartLunch(c.Context(), req.EmployeeID)
	if err != nil {
		return handleDomainError(c, err, "Error al iniciar almuerzo")
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"recordId": recordID,
		"message":  "Almuerzo iniciado",
	})
}

// LunchEnd marks the end of the lunch break
func (h *TimeClockHandler) LunchEnd(c *fiber.Ctx) error {
	req, err := parseEmployeeRequest(c)
	if err != nil {
		return response.BadRequest(c, "ID de empleado requerido")
	}

	recordID, err := h.timeclockService.EndLunch(c.Context(), req.EmployeeID)
	if err != nil {
		return handleDomainError(c, err, "Error al terminar almuerzo")
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"recordId": recordID,
		"message":  "Almuerzo terminado",
	})
}

// Status returns the employee's current clock state, safe to poll
func (h *TimeClockHandler) Status(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "ID de empleado inválido")
	}

	status, err := h.timeclockService.Status(c.Context(), id)
	if err != nil {
		return response.InternalServerError(c, "Error al obtener estado")
	}
	return c.JSON(status)
}

// Today lists the employee's records for the current day
func (h *TimeClockHandler) Today(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "ID de empleado inválido")
	}

	records, err := h.timeclockService.TodayRecords(c.Context(), id)
	if err != nil {
		return response.InternalServerError(c, "Error al obtener registros")
	}
	return c.JSON(records)
}

// List returns filtered records joined with employee info (admin)
func (h *TimeClockHandler) List(c *fiber.Ctx) error {
	records, err := h.timeclockService.Records(c.Context(), recordFiltersFromQuery(c))
	if err != nil {
		return response.InternalServerError(c, "Error al obtener registros")
	}
	return c.JSON(records)
}

// Delete removes a single record (admin)
func (h *TimeClockHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "ID de registro requerido")
	}

	if err := h.timeclockService.DeleteRecord(c.Context(), id); err != nil {
		return handleDomainError(c, err, "Error al eliminar registro")
	}

	return response.Success(c, "Registro eliminado exitosamente", nil)
}

func parseEmployeeRequest(c *fiber.Ctx) (*EmployeeRequest, error) {
	var req EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, err
	}
	if err := validation.Struct(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// recordFiltersFromQuery reads the shared record filter query parameters
func recordFiltersFromQuery(c *fiber.Ctx) repositories.RecordFilters {
	f := repositories.RecordFilters{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}
	if raw := c.Query("employeeId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			f.EmployeeID = uint(id)
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			f.Limit = limit
		}
	}
	return f
}
