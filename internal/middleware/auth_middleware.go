package middleware

import (
	"strings"

	"go-outlet-ops/internal/model"
	"go-outlet-ops/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// ClaimsKey is where RequireAuth stores the decoded credential in c.Locals.
const ClaimsKey = "claims"

// RequireAuth validates the bearer token and stores the decoded claims in
// the request context. The token is the sole session artifact; no server-side
// session state is consulted.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Authentication required"})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Authentication required"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid or expired token"})
		}

		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}

// RequireRoles checks the decoded role against the endpoint's allow-list.
// Runs after RequireAuth.
func RequireRoles(allowed ...model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals(ClaimsKey).(*jwt.Claims)
		if !ok {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Authentication required"})
		}

		for _, role := range allowed {
			if claims.Role == role {
				return c.Next()
			}
		}
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Insufficient permissions"})
	}
}
