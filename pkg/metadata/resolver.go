package metadata

// TableSource defines the contract for loading the metadata table of a given
// language. Implementations are expected to be synchronous and to cache
// loaded tables themselves. A missing or malformed table resource must be
// reported as a configuration failure Error.
type TableSource interface {
	Table(language string) (Table, error)
}

// Resolver selects and substitutes the metadata template for a request. It is
// a long-lived service: the table source and the strategy chain are fixed at
// construction, while the per-request inputs (session, language, path) arrive
// with every Get call.
type Resolver struct {
	source     TableSource
	strategies []Strategy
}

// NewResolver creates a resolver with the standard strategy chain: explicit
// metadata key, then reversed route, then the unconditional default entry.
// Panics if the table source or the route reverser is nil.
func NewResolver(source TableSource, reverser RouteReverser) *Resolver {
	if source == nil {
		panic("metadata table source is nil")
	}
	return &Resolver{
		source: source,
		strategies: []Strategy{
			KeyStrategy{},
			NewRouteStrategy(reverser),
			DefaultStrategy{},
		},
	}
}

// Get resolves the metadata fields for the current request: it loads the
// table for the given language, walks the strategy chain until one handles
// the request, and substitutes the session's recorded variables into the
// selected template. The result is computed fresh on every call.
//
// A nil session resolves with an empty state, which is the normal path for
// requests that never recorded a key or variables.
func (r *Resolver) Get(sess *Session, language, path string) (Fields, error) {
	var st State
	if sess != nil {
		st = sess.State()
	}

	table, err := r.source.Table(language)
	if err != nil {
		return nil, err
	}

	for _, strategy := range r.strategies {
		tpl, handled, err := strategy.TryResolve(table, st, path)
		if err != nil {
			return nil, err
		}
		if handled {
			return Substitute(tpl, st.Vars), nil
		}
	}

	// The default strategy handles unconditionally, so the chain cannot be
	// exhausted unless it was replaced with a custom one.
	return nil, NewUnknownError(
		"Metadata resolution strategy chain was exhausted without a match.",
		"Unable to resolve page metadata for the requested resource.",
	)
}
