// Package ports adapts the metadata application layer to the Fiber transport:
// request handlers, the error translation layer and the response DTOs.
package ports

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/p0lemic/SIFO/pkg/metadata"
)

// ErrorResponse is the JSON body returned for every failed request. It only
// carries the requester-safe slug, never the internal error message.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ErrorHandler returns a Fiber error handler that translates application-level
// errors into appropriate HTTP status codes and JSON responses. The handler
// maps error categories to corresponding HTTP status codes and includes the
// user-friendly slug in the response body. If an error is unrecognized or
// zero, the handler returns a generic internal server error response.
func ErrorHandler() fiber.ErrorHandler {
	codes := map[metadata.ErrorType]int{
		metadata.ErrorTypeAuthorization:        fiber.StatusUnauthorized,
		metadata.ErrorTypeIncorrectInput:       fiber.StatusBadRequest,
		metadata.ErrorTypeNotFound:             fiber.StatusNotFound,
		metadata.ErrorTypeConfigurationFailure: fiber.StatusInternalServerError,
		metadata.ErrorTypeProviderFailure:      fiber.StatusInternalServerError,
		metadata.ErrorTypeUnknown:              fiber.StatusInternalServerError,
	}

	return func(c *fiber.Ctx, err error) error {
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(ErrorResponse{Message: fiberErr.Message})
		}

		var appErr metadata.Error
		if !errors.As(err, &appErr) || appErr.IsZero() {
			return c.Status(fiber.StatusInternalServerError).JSON(NewUnhandledErrorTypeResponse())
		}

		code, ok := codes[appErr.ErrorType()]
		if !ok {
			code = fiber.StatusInternalServerError
		}
		return c.Status(code).JSON(ErrorResponse{Message: appErr.Slug()})
	}
}

// NewUnhandledErrorTypeResponse is the default response returned when an error
// occurs that does not match any known or handled error category. It
// represents a generic internal server error to avoid exposing internal
// details to the client.
func NewUnhandledErrorTypeResponse() ErrorResponse {
	return ErrorResponse{
		Message: "An internal error occurred during processing the request. Please try again later or contact the support team.",
	}
}
