package handlers

import (
	"errors"

	"employee-tracker/internal/core/domain"
	"employee-tracker/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// handleDomainError translates domain errors to HTTP statuses: validation
// 400, state-machine conflicts 409, unknown ids 404, storage failures 500.
func handleDomainError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return response.NotFound(c, "Empleado no encontrado")
	case errors.Is(err, domain.ErrRecordNotFound):
		return response.NotFound(c, "Registro no encontrado")
	case errors.Is(err, domain.ErrDuplicateIDCard):
		return response.Conflict(c, "Ya existe un empleado activo con esa cédula")
	case errors.Is(err, domain.ErrAlreadyClockedIn):
		return response.Conflict(c, "Ya tienes un registro activo para hoy")
	case errors.Is(err, domain.ErrNoActiveShift):
		return response.Conflict(c, "No se puede iniciar almuerzo: No hay turno activo o ya se tomó el almuerzo")
	case errors.Is(err, domain.ErrNoLunchInProgress):
		return response.Conflict(c, "No se puede terminar almuerzo: No hay almuerzo en curso")
	case errors.Is(err, domain.ErrNoOpenShift):
		return response.Conflict(c, "No hay registro de entrada abierto para este empleado")
	case errors.Is(err, domain.ErrInvalidSetting), errors.Is(err, domain.ErrInvalidInput):
		return response.BadRequest(c, err.Error())
	default:
		return response.InternalServerError(c, fallback)
	}
}
