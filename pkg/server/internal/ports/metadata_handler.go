package ports

import (
	"github.com/gofiber/fiber/v2"

	"github.com/p0lemic/SIFO/pkg/metadata"
	"github.com/p0lemic/SIFO/pkg/server/internal/ports/middleware"
)

// MetadataResolverService defines the contract for resolving the metadata
// fields of a request by delegating to the application layer's resolver.
type MetadataResolverService interface {
	Get(sess *metadata.Session, language, path string) (metadata.Fields, error)
}

// ResolvedMetadataResponse is the JSON document describing the metadata
// resolved for a request: the language the table was loaded for, the explicit
// key if one was recorded, and the substituted field values.
type ResolvedMetadataResponse struct {
	Language string            `json:"language"`
	Key      *string           `json:"key,omitempty"`
	Fields   map[string]string `json:"fields"`
}

// MetadataHandler handles incoming HTTP requests for resolved page metadata,
// acting as the adapter between the transport and the application layer.
type MetadataHandler struct {
	service MetadataResolverService
}

// Handle resolves the metadata for the current request session. The key query
// parameter records an explicit metadata key before resolution; the path
// query parameter resolves on behalf of another page path instead of the
// endpoint's own, which is what route-based selection needs to be reachable
// through this endpoint at all.
// Returns an HTTP 200 response with the resolved fields on success, or an
// error translated by the error handler otherwise.
func (h *MetadataHandler) Handle(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)
	if key := c.Query("key"); key != "" && sess != nil {
		sess.SetKey(key)
	}
	path := c.Query("path", c.Path())
	language := middleware.LanguageFrom(c)

	fields, err := h.service.Get(sess, language, path)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(NewResolvedMetadataResponse(language, sess, fields))
}

// NewMetadataHandler creates a new instance of MetadataHandler.
// Panics if the provided MetadataResolverService is nil.
func NewMetadataHandler(service MetadataResolverService) *MetadataHandler {
	if service == nil {
		panic("metadata resolver service is nil")
	}
	return &MetadataHandler{service: service}
}

// NewResolvedMetadataResponse converts resolved fields into the response
// document. The key is present only when the session recorded one.
func NewResolvedMetadataResponse(language string, sess *metadata.Session, fields metadata.Fields) ResolvedMetadataResponse {
	response := ResolvedMetadataResponse{
		Language: language,
		Fields:   fields,
	}
	if sess != nil {
		if key := sess.State().Key; key != "" {
			response.Key = &key
		}
	}
	return response
}
