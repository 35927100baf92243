package handlers

import (
	"strconv"

	"employee-tracker/internal/core/services"
	"employee-tracker/internal/pkg/response"
	"employee-tracker/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// EmployeeHandler handles employee roster endpoints
type EmployeeHandler struct {
	employeeService *services.EmployeeService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// CreateEmployeeRequest represents an employee registration body
type CreateEmployeeRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	IDCard string `json:"idCard" validate:"required,max=20"`
}

// List returns all active employees ordered by name
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	employees, err := h.employeeService.ListActive(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Error al obtener empleados")
	}
	return c.JSON(employees)
}

// Get returns one employee by id, active or not
func (h *EmployeeHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "ID de empleado inválido")
	}

	employee, err := h.employeeService.GetByID(c.Context(), id)
	if err != nil {
		return handleDomainError(c, err, "Error al obtener empleado")
	}
	return c.JSON(employee)
}

// GetByIDCard resolves an active employee from an id card. This is the
// shop-floor terminal login, deliberately unauthenticated.
func (h *EmployeeHandler) GetByIDCard(c *fiber.Ctx) error {
	idCard := c.Params("idCard")

	employee, err := h.employeeService.GetByIDCard(c.Context(), idCard)
	if err != nil {
		return handleDomainError(c, err, "Error al obtener empleado")
	}
	return c.JSON(employee)
}

// Create registers a new employee or reactivates an inactive one
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var req CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Cuerpo de la solicitud inválido")
	}
	if err := validation.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	result, err := h.employeeService.Register(c.Context(), &services.RegisterInput{
		Name:   req.Name,
		IDCard: req.IDCard,
	})
	if err != nil {
		return handleDomainError(c, err, "Error al agregar empleado")
	}

	return response.Created(c, result.Message, fiber.Map{
		"employeeId":     result.EmployeeID,
		"wasReactivated": result.Reactivated,
	})
}

// Deactivate flags an employee inactive; time records stay intact
func (h *EmployeeHandler) Deactivate(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "ID de empleado inválido")
	}

	if err := h.employeeService.Deactivate(c.Context(), id); err != nil {
		return handleDomainError(c, err, "Error al desactivar empleado")
	}

	return response.Success(c, "Empleado desactivado exitosamente", nil)
}

// parseID parses a positive integer route parameter
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.ErrBadRequest
	}
	return uint(id), nil
}
