package handlers

import (
	"log"
	"time"

	"employee-tracker/internal/config"
	"employee-tracker/internal/pkg/jwt"
	"employee-tracker/internal/pkg/password"
	"employee-tracker/internal/pkg/response"
	"employee-tracker/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// SessionCookieName is the admin session cookie
const SessionCookieName = "admin_session"

// AuthHandler handles admin session endpoints. There is a single fixed admin
// identity; the password from config is bcrypt-hashed once at startup and
// every login compares against the hash.
type AuthHandler struct {
	cfg          *config.Config
	passwordHash string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	hash, err := password.Hash(cfg.Admin.Password)
	if err != nil {
		log.Fatalf("❌ Failed to hash admin password: %v", err)
	}
	return &AuthHandler{
		cfg:          cfg,
		passwordHash: hash,
	}
}

// LoginRequest represents admin login request body
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login authenticates the admin and sets the session cookie
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Cuerpo de la solicitud inválido")
	}
	if err := validation.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	if req.Username != h.cfg.Admin.Username || !password.Verify(req.Password, h.passwordHash) {
		return response.Unauthorized(c, "Credenciales inválidas")
	}

	token, err := jwt.GenerateSessionToken(req.Username, h.cfg.Session.Secret, h.cfg.SessionTTL())
	if err != nil {
		return response.InternalServerError(c, "Error al iniciar sesión")
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(h.cfg.SessionTTL()),
		HTTPOnly: true,
		Secure:   h.cfg.Session.CookieSecure,
		SameSite: "Lax",
		Path:     "/",
	})

	return response.Success(c, "Login exitoso", fiber.Map{
		"username": req.Username,
	})
}

// Logout clears the session cookie
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.Session.CookieSecure,
		SameSite: "Lax",
		Path:     "/",
	})

	return response.Success(c, "Sesión cerrada", nil)
}

// Verify reports whether the request carries a valid admin session. Always
// 200 so the frontend can poll without error noise.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	token := c.Cookies(SessionCookieName)
	if token == "" {
		return c.JSON(fiber.Map{"authenticated": false})
	}

	claims, err := jwt.ValidateSessionToken(token, h.cfg.Session.Secret)
	if err != nil {
		return c.JSON(fiber.Map{"authenticated": false})
	}

	return c.JSON(fiber.Map{
		"authenticated": true,
		"username":      claims.Username,
	})
}
