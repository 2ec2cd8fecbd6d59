package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/finance-api/internal/api/dto"
	"github.com/spec-kit/finance-api/internal/auth"
	"github.com/spec-kit/finance-api/internal/service"
	apperrors "github.com/spec-kit/finance-api/pkg/util"
)

// AuthHandler exposes registration, login, logout and session endpoints.
type AuthHandler struct {
	auth    *service.AuthService
	cookies *auth.CookieCodec
	limiter auth.LoginLimiter
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, cookies *auth.CookieCodec, limiter auth.LoginLimiter) *AuthHandler {
	return &AuthHandler{auth: authService, cookies: cookies, limiter: limiter}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	user, token, exp, err := h.auth.Register(c.Context(), normalizeEmail(req.Email), req.Username, req.Password)
	if err != nil {
		return err
	}

	h.cookies.Attach(c, token, exp)
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"email": user.Email},
	})
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	email := normalizeEmail(req.Email)
	if !h.limiter.Allow(c.Context(), email) {
		return apperrors.NewRateLimited("too many login attempts, try again later")
	}

	user, token, exp, err := h.auth.Login(c.Context(), email, req.Password)
	if err != nil {
		return err
	}

	h.cookies.Attach(c, token, exp)
	return c.JSON(fiber.Map{
		"data": fiber.Map{"email": user.Email},
	})
}

// Logout handles POST /api/v1/auth/logout. It always clears the cookie and
// reports success, valid session or not.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.cookies.Clear(c)
	return c.JSON(fiber.Map{"message": "logged out successfully"})
}

// Session handles GET /api/v1/auth/session.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authorized, no token")
	}

	user, err := h.auth.Session(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": dto.SessionResponse{Email: user.Email, Username: user.Username},
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
