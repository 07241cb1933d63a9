// Package reqid provides a Fiber middleware that stamps every request with a
// unique request ID, stored in the context locals and echoed in the
// X-Request-Id response header.
package reqid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Local is the key under which the request ID is stored in context locals.
const Local = "request_id"

// New returns the request ID middleware. An incoming X-Request-Id header is
// honored so upstream proxies can correlate; otherwise a fresh UUID is issued.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get("X-Request-Id")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(Local, rid)
		c.Set("X-Request-Id", rid)
		return c.Next()
	}
}
