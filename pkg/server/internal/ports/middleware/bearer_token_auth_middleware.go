package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/p0lemic/SIFO/pkg/metadata"
)

// BearerTokenAuthorizationMiddleware returns a fiber.Handler that validates
// the Bearer token present in the Authorization header of incoming HTTP
// requests against the expected admin token.
func BearerTokenAuthorizationMiddleware(expectedToken string) fiber.Handler {
	const scheme = "Bearer "

	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)
		if auth == "" {
			return NewMissingAuthorizationHeaderError()
		}
		if !strings.HasPrefix(auth, scheme) {
			return NewMissingBearerTokenValueError()
		}
		if strings.TrimPrefix(auth, scheme) != expectedToken {
			return NewInvalidBearerTokenValueError()
		}
		return c.Next()
	}
}

// NewMissingAuthorizationHeaderError returns an error indicating that the
// Authorization header is missing from the request.
func NewMissingAuthorizationHeaderError() metadata.Error {
	const str = "Unauthorized access: Missing Authorization header in the request"
	return metadata.NewAuthorizationError(str, str)
}

// NewMissingBearerTokenValueError returns an error indicating that the
// Bearer token value is missing from the Authorization header.
func NewMissingBearerTokenValueError() metadata.Error {
	const str = "Unauthorized access: Missing Authorization header Bearer token value"
	return metadata.NewAuthorizationError(str, str)
}

// NewInvalidBearerTokenValueError returns an error indicating that the
// Bearer token provided is invalid or not recognized.
func NewInvalidBearerTokenValueError() metadata.Error {
	const str = "Unauthorized access: Invalid Bearer token value"
	return metadata.NewAuthorizationError(str, str)
}
