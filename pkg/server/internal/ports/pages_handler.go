package ports

import (
	"github.com/gofiber/fiber/v2"

	"github.com/p0lemic/SIFO/pkg/server/internal/ports/middleware"
)

// PageResponse is the JSON document of a demo page: the resolved head
// metadata plus the page body payload.
type PageResponse struct {
	Meta map[string]string `json:"meta"`
	Body map[string]string `json:"body,omitempty"`
}

// PagesHandler serves the demo page routes. Each handler plays the
// controller-then-render flow of a real page: it records keys and variables
// on the request session first and resolves the metadata last.
type PagesHandler struct {
	service MetadataResolverService
}

// HandleHome serves the home page. Nothing is recorded on the session, so
// metadata selection falls through to the reversed route entry, or to the
// default entry when the table has none.
func (h *PagesHandler) HandleHome(c *fiber.Ctx) error {
	fields, err := h.service.Get(middleware.SessionFrom(c), middleware.LanguageFrom(c), c.Path())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(PageResponse{Meta: fields})
}

// HandleUserProfile serves a profile page. The profile name from the route
// parameter is recorded as a substitution variable before resolution, so the
// user_profile table entry can interpolate it.
func (h *PagesHandler) HandleUserProfile(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)
	name := c.Params("name")
	if sess != nil {
		sess.SetValue("name", name)
	}

	fields, err := h.service.Get(sess, middleware.LanguageFrom(c), c.Path())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(PageResponse{
		Meta: fields,
		Body: map[string]string{"name": name},
	})
}

// NewPagesHandler creates a new instance of PagesHandler.
// Panics if the provided MetadataResolverService is nil.
func NewPagesHandler(service MetadataResolverService) *PagesHandler {
	if service == nil {
		panic("metadata resolver service is nil")
	}
	return &PagesHandler{service: service}
}
