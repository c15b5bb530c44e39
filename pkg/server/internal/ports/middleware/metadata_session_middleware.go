package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/p0lemic/SIFO/pkg/metadata"
	"github.com/p0lemic/SIFO/pkg/server/internal/adapters"
)

// sessionLocalsKey is the Locals key under which the request's metadata
// session is stored.
const sessionLocalsKey = "metadata:session"

// MetadataSessionMiddleware creates one metadata session per request, backed
// by the request's Locals storage, and makes it available to downstream
// handlers through SessionFrom. The session is the explicit per-request
// object the controller phase mutates and the rendering phase resolves.
func MetadataSessionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := metadata.NewSession(adapters.NewLocalsRegistry(c))
		c.Locals(sessionLocalsKey, sess)
		return c.Next()
	}
}

// SessionFrom returns the metadata session bound to the request, or nil if
// the session middleware is not installed. Resolution treats a nil session
// as an empty state, so callers may pass the result straight through.
func SessionFrom(c *fiber.Ctx) *metadata.Session {
	sess, _ := c.Locals(sessionLocalsKey).(*metadata.Session)
	return sess
}
