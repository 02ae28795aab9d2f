package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"go-outlet-ops/internal/middleware"
	"go-outlet-ops/internal/service"
	"go-outlet-ops/pkg/imagestore"
	"go-outlet-ops/pkg/jwt"
)

// Every response uses the same envelope: {success, data?, error?}.

func respondOK(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func respondCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(201).JSON(fiber.Map{"success": true, "data": data})
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "error": message})
}

// respondServiceError maps service-layer failures onto the envelope. Any
// error outside the taxonomy is logged server-side and surfaced generically.
func respondServiceError(c *fiber.Ctx, err error) error {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		return respondError(c, 400, vErr.Message)
	case errors.Is(err, service.ErrInvalidCredentials):
		return respondError(c, 401, err.Error())
	case errors.Is(err, service.ErrOutletForbidden):
		return respondError(c, 403, "Insufficient permissions")
	case errors.Is(err, imagestore.ErrTooLarge), errors.Is(err, imagestore.ErrNotImage):
		return respondError(c, 400, err.Error())
	default:
		log.Printf("internal error on %s %s: %v", c.Method(), c.Path(), err)
		return respondError(c, 500, "Internal server error")
	}
}

func claimsFrom(c *fiber.Ctx) *jwt.Claims {
	claims, _ := c.Locals(middleware.ClaimsKey).(*jwt.Claims)
	return claims
}
