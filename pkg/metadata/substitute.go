package metadata

import "strings"

// Substitute returns a copy of the template with every occurrence of every
// recorded placeholder replaced by its variable value. The replacement is a
// single literal multi-pattern pass: replaced text is not re-scanned, and
// placeholders with no recorded variable stay in the output verbatim, since
// authors may intentionally keep literal %...%-shaped text or expect partial
// binding across multiple render passes.
func Substitute(tpl Template, vars map[string]string) Fields {
	if len(vars) == 0 {
		return Fields(tpl.Clone())
	}

	pairs := make([]string, 0, len(vars)*2)
	for placeholder, value := range vars {
		pairs = append(pairs, placeholder, value)
	}
	replacer := strings.NewReplacer(pairs...)

	out := make(Fields, len(tpl))
	for field, value := range tpl {
		out[field] = replacer.Replace(value)
	}
	return out
}
