package ports

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gookit/slog"
)

// TableCacheResetter defines the contract for dropping cached metadata tables
// so the next resolution reloads them from the underlying source.
type TableCacheResetter interface {
	Reset()
}

// ReloadTablesResponse confirms a completed cache reset.
type ReloadTablesResponse struct {
	Message string `json:"message"`
}

// ReloadTablesHandler handles admin requests to reload the metadata tables
// after their configuration resources changed on disk or upstream.
type ReloadTablesHandler struct {
	cache TableCacheResetter
}

// Handle drops all cached tables and returns an HTTP 200 confirmation.
func (h *ReloadTablesHandler) Handle(c *fiber.Ctx) error {
	h.cache.Reset()
	slog.Info("Metadata table cache dropped on admin request")
	return c.Status(fiber.StatusOK).JSON(ReloadTablesResponse{
		Message: "Metadata tables will be reloaded on next resolution.",
	})
}

// NewReloadTablesHandler creates a new instance of ReloadTablesHandler.
// Panics if the provided TableCacheResetter is nil.
func NewReloadTablesHandler(cache TableCacheResetter) *ReloadTablesHandler {
	if cache == nil {
		panic("table cache resetter is nil")
	}
	return &ReloadTablesHandler{cache: cache}
}
