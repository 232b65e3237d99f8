package models

// Portfolio is a free-form record of tracked holdings and analysis data. The
// shape is client-defined; the only key the API itself interprets is "id".
// The store never enforces id uniqueness, lookups take the first match.
type Portfolio map[string]interface{}

// Keys the PATCH operation is allowed to touch.
var patchableKeys = []string{"analysis", "coins", "values"}

// ID returns the record's id, or "" when absent or not a string.
func (p Portfolio) ID() string {
	if v, ok := p["id"].(string); ok {
		return v
	}
	return ""
}

// Clone returns a shallow copy of the top-level keys.
func (p Portfolio) Clone() Portfolio {
	out := make(Portfolio, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Merge overwrites every top-level key present in patch, leaving others
// untouched.
func (p Portfolio) Merge(patch Portfolio) {
	for k, v := range patch {
		p[k] = v
	}
}

// ApplyFields copies only the patchable keys (analysis, coins, values) from
// patch when present, leaving everything else untouched.
func (p Portfolio) ApplyFields(patch Portfolio) {
	for _, k := range patchableKeys {
		if v, ok := patch[k]; ok {
			p[k] = v
		}
	}
}
