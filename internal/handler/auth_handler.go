package handler

import (
	"go-outlet-ops/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles user authentication
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}

	if req.Email == "" {
		return respondError(c, 400, "Valid email is required")
	}
	if req.Password == "" {
		return respondError(c, 400, "Password is required")
	}

	response, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		return respondServiceError(c, err)
	}

	return respondOK(c, response)
}
