package metadata

// DefaultKey is the table entry used when neither an explicit metadata key
// nor a reversed route selects another entry.
const DefaultKey = "default"

// Template maps a metadata field name (e.g. "title", "description",
// "keywords") to a template string containing zero or more %name%
// placeholders. Templates are immutable once loaded.
type Template map[string]string

// Table maps a metadata key to its Template. Every valid table carries a
// DefaultKey entry used as the unconditional fallback. One table exists per
// language, sourced from the "lang/metadata_<language>" configuration
// resource.
type Table map[string]Template

// Fields is a resolved Template: the entry chosen for the current request
// with all recorded variables substituted into its values. Fields are
// computed fresh on every resolution and never cached.
type Fields map[string]string

// Validate reports whether the table can serve resolution requests.
// A table without a DefaultKey entry cannot, since the fallback strategy
// would have nothing to return.
func (t Table) Validate(resource string) error {
	if _, ok := t[DefaultKey]; !ok {
		return NewMissingDefaultEntryError(resource)
	}
	return nil
}

// Clone returns a deep copy of the template. Resolution substitutes into a
// copy so the loaded table stays untouched.
func (t Template) Clone() Template {
	out := make(Template, len(t))
	for field, value := range t {
		out[field] = value
	}
	return out
}
