package middleware

import (
	"employee-tracker/internal/config"
	"employee-tracker/internal/pkg/jwt"
	"employee-tracker/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// sessionCookieName matches handlers.SessionCookieName; a duplicate constant
// avoids an import cycle between middleware and handlers.
const sessionCookieName = "admin_session"

// AdminAuth gates the admin endpoints behind a valid session cookie. The
// clock terminal endpoints are deliberately left outside this middleware.
func AdminAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(sessionCookieName)
		if token == "" {
			return response.Unauthorized(c, "No autorizado")
		}

		claims, err := jwt.ValidateSessionToken(token, cfg.Session.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Sesión expirada")
			}
			return response.Unauthorized(c, "No autorizado")
		}
		if !claims.IsAdmin {
			return response.Unauthorized(c, "No autorizado")
		}

		c.Locals("adminUser", claims.Username)
		return c.Next()
	}
}
