package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "token"

// CookieCodec moves session tokens in and out of a signed cookie. The cookie
// value is `<token>.<hexsig>` where the signature is HMAC-SHA256 over the
// token using a secret distinct from the token-signing key. Secure and
// SameSite flags depend on the deployment environment, and Clear must reuse
// the exact attribute set or some clients keep the cookie.
type CookieCodec struct {
	secret     []byte
	production bool
}

// NewCookieCodec builds a codec with the outer-signature secret.
func NewCookieCodec(secret string, production bool) *CookieCodec {
	return &CookieCodec{secret: []byte(secret), production: production}
}

// Encode wraps a session token with the outer signature.
func (cc *CookieCodec) Encode(token string) string {
	return token + "." + cc.sign(token)
}

// Decode verifies the outer signature and returns the inner session token.
// A missing or bad signature reads as absent, not as an error.
func (cc *CookieCodec) Decode(raw string) (string, bool) {
	idx := strings.LastIndexByte(raw, '.')
	if idx <= 0 || idx == len(raw)-1 {
		return "", false
	}
	token, sig := raw[:idx], raw[idx+1:]
	if !hmac.Equal([]byte(sig), []byte(cc.sign(token))) {
		return "", false
	}
	return token, true
}

// Attach sets the session cookie on the response.
func (cc *CookieCodec) Attach(c *fiber.Ctx, token string, expiresAt time.Time) {
	cookie := cc.baseCookie()
	cookie.Value = cc.Encode(token)
	cookie.Expires = expiresAt
	c.Cookie(cookie)
}

// Clear removes the session cookie using the identical attribute set used by
// Attach.
func (cc *CookieCodec) Clear(c *fiber.Ctx) {
	cookie := cc.baseCookie()
	cookie.Value = ""
	cookie.Expires = time.Unix(0, 0)
	c.Cookie(cookie)
}

// Extract reads the session token from the request cookie. Absent cookie and
// invalid outer signature are both reported as not-present.
func (cc *CookieCodec) Extract(c *fiber.Ctx) (string, bool) {
	raw := c.Cookies(CookieName)
	if raw == "" {
		return "", false
	}
	return cc.Decode(raw)
}

func (cc *CookieCodec) baseCookie() *fiber.Cookie {
	sameSite := fiber.CookieSameSiteLaxMode
	if cc.production {
		sameSite = fiber.CookieSameSiteNoneMode
	}
	return &fiber.Cookie{
		Name:     CookieName,
		Path:     "/",
		HTTPOnly: true,
		Secure:   cc.production,
		SameSite: sameSite,
	}
}

func (cc *CookieCodec) sign(value string) string {
	m := hmac.New(sha256.New, cc.secret)
	m.Write([]byte(value))
	return hex.EncodeToString(m.Sum(nil))
}
