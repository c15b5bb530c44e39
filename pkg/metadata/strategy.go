package metadata

// Strategy is a pluggable resolution step. The resolver chains strategies in
// order (explicit key -> reversed route -> default) and stops at the first
// one that handles the request.
type Strategy interface {
	// TryResolve attempts to select a template from the table for the given
	// state and request path. It returns (template, true, nil) if handled;
	// (nil, false, nil) to fall through to the next strategy; or a non-nil
	// error to abort resolution.
	TryResolve(table Table, st State, path string) (Template, bool, error)
}

// KeyStrategy selects the table entry named by the explicitly recorded
// metadata key. A recorded key that is absent from the table aborts
// resolution with a not-found error rather than falling through, since it
// indicates a configuration/caller mismatch.
type KeyStrategy struct{}

// TryResolve implements Strategy.
func (KeyStrategy) TryResolve(table Table, st State, _ string) (Template, bool, error) {
	if st.Key == "" {
		return nil, false, nil
	}
	tpl, ok := table[st.Key]
	if !ok {
		return nil, false, NewTemplateNotFoundError(st.Key)
	}
	return tpl, true, nil
}

// RouteReverser defines the contract for mapping a concrete request path back
// to its declared route name. Implementations return false when the path
// matches no declared route.
type RouteReverser interface {
	ReversalRoute(path string) (string, bool)
}

// RouteStrategy selects the table entry named after the reversed route of the
// current request path. An unmapped path or a route name with no table entry
// falls through to the next strategy.
type RouteStrategy struct {
	reverser RouteReverser
}

// NewRouteStrategy creates a RouteStrategy over the given reverser.
// Panics if the reverser is nil.
func NewRouteStrategy(reverser RouteReverser) RouteStrategy {
	if reverser == nil {
		panic("route reverser is nil")
	}
	return RouteStrategy{reverser: reverser}
}

// TryResolve implements Strategy.
func (s RouteStrategy) TryResolve(table Table, _ State, path string) (Template, bool, error) {
	route, ok := s.reverser.ReversalRoute(path)
	if !ok {
		return nil, false, nil
	}
	tpl, ok := table[route]
	if !ok {
		return nil, false, nil
	}
	return tpl, true, nil
}

// DefaultStrategy unconditionally selects the table's default entry. It is
// the final strategy in every chain, so resolution with no explicit key and
// no route match is normal, not an error.
type DefaultStrategy struct{}

// TryResolve implements Strategy.
func (DefaultStrategy) TryResolve(table Table, _ State, _ string) (Template, bool, error) {
	return table[DefaultKey], true, nil
}
