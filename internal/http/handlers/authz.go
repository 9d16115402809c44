package handlers

import (
	"strings"

	"shoppulse/internal/auth"
	applog "shoppulse/internal/log"

	"github.com/gofiber/fiber/v2"
)

// Context keys set by RequireAuth.
const (
	LocalClaims    = "claims"
	LocalUserID    = "user_id"
	LocalUserEmail = "user_email"
)

// RequireAuth verifies the Authorization bearer token and attaches the
// decoded claims to the request. Missing credentials are 401, bad or expired
// ones 403; either way no handler logic runs.
func RequireAuth(tokens *auth.Tokens) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if header == "" || len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			applog.Security(c, "access.denied.missing_token", nil)
			return c.Status(fiber.StatusUnauthorized).SendString("Authentication required")
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			applog.Security(c, "access.denied.bad_token", map[string]any{"reason": err.Error()})
			return c.Status(fiber.StatusForbidden).SendString("Invalid token")
		}

		c.Locals(LocalClaims, claims)
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUserEmail, claims.Email)
		return c.Next()
	}
}
