package adapters

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// FiberRouteReverser maps a concrete request path back to the name of the
// declared Fiber route that would serve it. It implements
// metadata.RouteReverser. Only named routes participate; unnamed routes can
// never select a metadata table entry.
type FiberRouteReverser struct {
	app *fiber.App
}

// NewFiberRouteReverser creates a reverser over the given application.
// Panics if the application is nil.
func NewFiberRouteReverser(app *fiber.App) *FiberRouteReverser {
	if app == nil {
		panic("fiber app is nil")
	}
	return &FiberRouteReverser{app: app}
}

// ReversalRoute returns the name of the first named route whose path pattern
// matches the given concrete path, or false if no named route matches.
func (r *FiberRouteReverser) ReversalRoute(path string) (string, bool) {
	for _, route := range r.app.GetRoutes(true) {
		if route.Name == "" {
			continue
		}
		if matchPattern(route.Path, path) {
			return route.Name, true
		}
	}
	return "", false
}

// matchPattern reports whether a concrete path matches a Fiber route pattern.
// Parameter segments (":id") match any single non-empty segment, optional
// parameters (":id?") also match an absent segment, a plus ("+") consumes one
// or more trailing segments and a wildcard ("*") consumes the remainder.
// Regex-constrained and mid-segment parameters are not supported; routes
// declared with them never reverse.
func matchPattern(pattern, path string) bool {
	patternSegs := strings.Split(strings.Trim(pattern, "/"), "/")
	pathSegs := strings.Split(strings.Trim(path, "/"), "/")

	for i, seg := range patternSegs {
		if seg == "*" {
			return true
		}
		if seg == "+" {
			return i < len(pathSegs) && pathSegs[i] != ""
		}
		if i >= len(pathSegs) {
			return allOptionalParams(patternSegs[i:])
		}
		if strings.HasPrefix(seg, ":") {
			if pathSegs[i] == "" && !strings.HasSuffix(seg, "?") {
				return false
			}
			continue
		}
		if seg != pathSegs[i] {
			return false
		}
	}
	return len(patternSegs) == len(pathSegs)
}

// allOptionalParams reports whether every remaining pattern segment is an
// optional parameter, in which case the pattern still matches a shorter path.
func allOptionalParams(segs []string) bool {
	for _, seg := range segs {
		if !strings.HasPrefix(seg, ":") || !strings.HasSuffix(seg, "?") {
			return false
		}
	}
	return true
}
