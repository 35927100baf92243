package handlers

import (
	"employee-tracker/internal/core/services"
	"employee-tracker/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SettingsHandler handles the work-hour policy configuration endpoints
type SettingsHandler struct {
	settingsService *services.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get returns all settings as a flat key-value object
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	settings, err := h.settingsService.Get(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Error al obtener configuración")
	}
	return c.JSON(settings)
}

// Update writes the supplied keys atomically
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var values map[string]string
	if err := c.BodyParser(&values); err != nil {
		return response.BadRequest(c, "Cuerpo de la solicitud inválido")
	}

	if err := h.settingsService.Update(c.Context(), values); err != nil {
		return handleDomainError(c, err, "Error al guardar configuración")
	}

	return response.Success(c, "Configuración guardada exitosamente", nil)
}
