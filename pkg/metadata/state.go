package metadata

// StateSlot is the fixed registry slot under which the per-request metadata
// state is stored.
const StateSlot = "metadata_information"

// Registry defines the contract for the request-scoped key-value store that
// holds the metadata state. Implementations must guarantee request isolation;
// this package does not lock around registry access.
type Registry interface {
	// Get returns the state stored under the given slot, or a zero state and
	// false if the slot was never written.
	Get(slot string) (State, bool)

	// Set stores the state under the given slot, replacing any previous value.
	Set(slot string, state State)

	// Exists reports whether the slot holds a state.
	Exists(slot string) bool
}

// State is the mutable per-request metadata record: the explicitly selected
// metadata key, if any, and the accumulated substitution variables. Variable
// keys include the surrounding percent signs, so they can be matched against
// template text verbatim.
//
// The state is absent until the first mutation, lives for the duration of the
// owning registry's scope (typically one request), and is never destroyed by
// this package.
type State struct {
	Key  string
	Vars map[string]string
}

// Mutation is a single tagged state change. SetKey and SetVar are the two
// variants; SetVars expands to one SetVar per entry. All mutations funnel
// through Session.Apply, the single point of state mutation.
type Mutation interface {
	apply(State) State
}

// SetKey records the metadata key selecting a table entry for the current
// request. The key is not validated against the table at mutation time;
// validation is deferred to resolution. A later SetKey overwrites an earlier
// one.
type SetKey string

func (m SetKey) apply(st State) State {
	st.Key = string(m)
	return st
}

// SetVar records one substitution variable. The name is the bare placeholder
// name; the surrounding percent signs are added here. A duplicate name
// overwrites the previous value.
type SetVar struct {
	Name  string
	Value string
}

func (m SetVar) apply(st State) State {
	vars := make(map[string]string, len(st.Vars)+1)
	for k, v := range st.Vars {
		vars[k] = v
	}
	vars[Placeholder(m.Name)] = m.Value
	st.Vars = vars
	return st
}

// SetVars records a batch of substitution variables, one SetVar per entry.
type SetVars map[string]string

func (m SetVars) apply(st State) State {
	for name, value := range m {
		st = SetVar{Name: name, Value: value}.apply(st)
	}
	return st
}

// Placeholder wraps a bare variable name into its %name% template form.
func Placeholder(name string) string {
	return "%" + name + "%"
}

// Session is the explicit per-request metadata object passed through the
// request-handling call chain, from the controller phase that records keys
// and variables to the rendering phase that resolves them. It owns no state
// itself; everything is read from and written back to the backing registry
// under StateSlot.
type Session struct {
	registry Registry
}

// NewSession creates a session over the given registry.
// Panics if the registry is nil.
func NewSession(registry Registry) *Session {
	if registry == nil {
		panic("metadata session registry is nil")
	}
	return &Session{registry: registry}
}

// Apply reads the current state, applies the mutations in order, and writes
// the result back. Variables accumulate across calls: a mutation adds or
// overwrites entries but never clears prior ones, and a recorded key survives
// later variable mutations.
func (s *Session) Apply(mutations ...Mutation) {
	if len(mutations) == 0 {
		return
	}
	st, _ := s.registry.Get(StateSlot)
	for _, m := range mutations {
		st = m.apply(st)
	}
	s.registry.Set(StateSlot, st)
}

// SetKey records the metadata key for the current request.
func (s *Session) SetKey(key string) {
	s.Apply(SetKey(key))
}

// SetValue records a single substitution variable.
func (s *Session) SetValue(name, value string) {
	s.Apply(SetVar{Name: name, Value: value})
}

// SetValues records a batch of substitution variables.
func (s *Session) SetValues(vars map[string]string) {
	s.Apply(SetVars(vars))
}

// State returns a snapshot of the current state, or a zero state if nothing
// was ever recorded.
func (s *Session) State() State {
	st, _ := s.registry.Get(StateSlot)
	return st
}

// MemoryRegistry is a plain in-memory Registry for non-HTTP callers and
// tests. One instance per logical request.
type MemoryRegistry struct {
	slots map[string]State
}

// NewMemoryRegistry creates an empty in-memory registry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{slots: make(map[string]State)}
}

// Get returns the state stored under slot, or a zero state and false.
func (r *MemoryRegistry) Get(slot string) (State, bool) {
	st, ok := r.slots[slot]
	return st, ok
}

// Set stores the state under slot.
func (r *MemoryRegistry) Set(slot string, state State) {
	r.slots[slot] = state
}

// Exists reports whether slot holds a state.
func (r *MemoryRegistry) Exists(slot string) bool {
	_, ok := r.slots[slot]
	return ok
}
