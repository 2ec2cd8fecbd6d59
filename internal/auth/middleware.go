package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/finance-api/pkg/util"
)

const userIDKey = "auth_user_id"

// AuthMiddleware gates protected routes on a valid session cookie. It is
// stateless: no store lookup happens here, only signature and expiry checks.
type AuthMiddleware struct {
	cookies *CookieCodec
	tokens  *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(cookies *CookieCodec, tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{cookies: cookies, tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	token, ok := m.cookies.Extract(c)
	if !ok {
		return apperrors.NewUnauthorized("not authorized, no token")
	}

	userID, err := m.tokens.Verify(token)
	if err != nil {
		return apperrors.NewUnauthorized("not authorized, token failed")
	}

	c.Locals(userIDKey, userID)
	return c.Next()
}

// UserIDFromContext retrieves the authenticated user id.
func UserIDFromContext(c *fiber.Ctx) (string, bool) {
	val := c.Locals(userIDKey)
	if val == nil {
		return "", false
	}
	userID, ok := val.(string)
	return userID, ok && userID != ""
}
