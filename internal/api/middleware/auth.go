package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthConfig holds configuration for the auth middleware
type AuthConfig struct {
	// Secret is the shared API secret. Empty disables authentication.
	Secret string
}

// AuthMiddleware returns a Fiber middleware requiring a matching bearer
// token on every request when a secret is configured.
func AuthMiddleware(config AuthConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if config.Secret == "" {
			return c.Next()
		}

		authHeader := c.Get("Authorization")
		var token string
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(config.Secret)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		return c.Next()
	}
}
