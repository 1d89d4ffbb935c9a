// Package rayid assigns a unique request id to every incoming request.
//
// The id is stored in the Fiber locals under "ray_id" and echoed back in the
// X-Ray-ID response header so clients and logs can be correlated.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the request id.
const HeaderName = "X-Ray-ID"

// LocalsKey is the Fiber locals key under which the id is stored.
const LocalsKey = "ray_id"

// New returns the ray id middleware. An incoming X-Ray-ID header is honored
// so upstream proxies can propagate their own id.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderName)
		if id == "" {
			id = uuid.New().String()
		}
		c.Locals(LocalsKey, id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}
