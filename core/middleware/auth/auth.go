// Package auth validates the bearer token on incoming requests.
//
// Token issuance lives outside this service; the middleware only verifies
// the HS256 signature with the shared secret and exposes the subject claim
// as the authenticated user id.
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Config holds configuration for the identity middleware.
type Config struct {
	// Secret is the HMAC secret shared with the token issuer.
	Secret string `mapstructure:"secret" default:""`
}

// LocalsKey is the Fiber locals key under which the user id is stored.
const LocalsKey = "user_id"

// New returns a middleware that rejects requests without a valid bearer
// token and stores the token subject in the request locals.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing bearer token",
			})
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.Secret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid token",
			})
		}

		sub, err := token.Claims.GetSubject()
		if err != nil || sub == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "token has no subject",
			})
		}

		c.Locals(LocalsKey, sub)
		return c.Next()
	}
}

// UserID returns the authenticated user id stored by the middleware, or an
// empty string when the request was not authenticated.
func UserID(c *fiber.Ctx) string {
	if id, ok := c.Locals(LocalsKey).(string); ok {
		return id
	}
	return ""
}
