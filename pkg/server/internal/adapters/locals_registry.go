// Package adapters binds the metadata collaborator contracts to the Fiber
// transport: the request-scoped registry lives in the request's Locals
// storage, and route reversal walks the application's route stack.
package adapters

import (
	"github.com/gofiber/fiber/v2"

	"github.com/p0lemic/SIFO/pkg/metadata"
)

// localsKeyPrefix namespaces registry slots inside the shared Locals storage.
const localsKeyPrefix = "metadata:"

// LocalsRegistry is a metadata.Registry backed by the Locals storage of a
// single Fiber request. Fiber resets Locals when the request ends, which
// gives the state exactly the one-request lifetime the session expects, with
// no locking needed: Fiber guarantees one handler chain per context.
type LocalsRegistry struct {
	c *fiber.Ctx
}

// NewLocalsRegistry creates a registry bound to the given request context.
// Panics if the context is nil.
func NewLocalsRegistry(c *fiber.Ctx) *LocalsRegistry {
	if c == nil {
		panic("fiber context is nil")
	}
	return &LocalsRegistry{c: c}
}

// Get returns the state stored under slot, or a zero state and false.
func (r *LocalsRegistry) Get(slot string) (metadata.State, bool) {
	st, ok := r.c.Locals(localsKeyPrefix + slot).(metadata.State)
	return st, ok
}

// Set stores the state under slot.
func (r *LocalsRegistry) Set(slot string, state metadata.State) {
	r.c.Locals(localsKeyPrefix+slot, state)
}

// Exists reports whether slot holds a state.
func (r *LocalsRegistry) Exists(slot string) bool {
	_, ok := r.Get(slot)
	return ok
}
