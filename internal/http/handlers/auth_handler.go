package handlers

import (
	"errors"

	applog "shoppulse/internal/log"
	"shoppulse/internal/metrics"
	"shoppulse/internal/services"
	"shoppulse/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var body credentials
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON("Email and password are required")
	}
	email, ok := validate.Email(body.Email)
	if !ok || !validate.Password(body.Password) {
		applog.Security(c, "auth.register.invalid", map[string]any{"email": body.Email})
		return c.Status(fiber.StatusBadRequest).JSON("Invalid email or password format")
	}

	if err := h.Auth.Register(email, body.Password); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			applog.Security(c, "auth.register.duplicate", map[string]any{"email": email})
			return c.Status(fiber.StatusConflict).JSON("Admin user with this email already exists.")
		}
		applog.Error(c, "auth.register.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON("Internal Server Error")
	}

	applog.Audit(c, "auth.register.success", map[string]any{"email": email})
	return c.Status(fiber.StatusCreated).JSON("Admin user registered successfully")
}

// POST /api/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body credentials
	if err := c.BodyParser(&body); err != nil || body.Email == "" || body.Password == "" {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return c.Status(fiber.StatusBadRequest).JSON("Invalid email or password")
	}

	token, err := h.Auth.Login(body.Email, body.Password)
	if err != nil {
		if errors.Is(err, services.ErrBadCreds) {
			metrics.LoginsTotal.WithLabelValues("denied").Inc()
			applog.Security(c, "auth.login.fail", map[string]any{"email": body.Email})
			return c.Status(fiber.StatusBadRequest).JSON("Invalid email or password")
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		applog.Error(c, "auth.login.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON("Internal Server Error")
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	applog.Audit(c, "auth.login.success", map[string]any{"email": body.Email})
	return c.JSON(fiber.Map{"message": "Login successful", "token": token})
}
