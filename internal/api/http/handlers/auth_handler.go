package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/procurement-service/internal/api/dto"
	"github.com/spec-kit/procurement-service/internal/ratelimit"
	"github.com/spec-kit/procurement-service/internal/service"
	apperrors "github.com/spec-kit/procurement-service/pkg/util"
)

// AuthHandler serves the login endpoint.
type AuthHandler struct {
	service *service.AuthService
	limiter *ratelimit.LoginLimiter
}

// NewAuthHandler constructs handler. The limiter may be nil when rate
// limiting is disabled.
func NewAuthHandler(authService *service.AuthService, limiter *ratelimit.LoginLimiter) *AuthHandler {
	return &AuthHandler{service: authService, limiter: limiter}
}

// Login POST /auth.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Login == "" || req.Password == "" {
		return apperrors.NewValidationError("login and password required", nil)
	}

	allowed, err := h.limiter.Allow(c.UserContext(), req.Login)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.NewTooManyRequests("too many login attempts")
	}

	token, expiresAt, err := h.service.Login(c.UserContext(), req.Login, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.AuthResponse{Token: token, ExpiresAt: expiresAt}})
}
