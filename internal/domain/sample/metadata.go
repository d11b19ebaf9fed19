package sample

// Metadata is the free-form document carried by a sample. Values arrive from
// JSON, so numbers are float64 and nested values are maps and slices.
type Metadata map[string]any

// Clone returns a shallow copy of the metadata. Top-level keys can be added
// and replaced on the copy without touching the original.
func (m Metadata) Clone() Metadata {
	if m == nil {
		return nil
	}
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Merge overlays other onto m, key by key, and returns the result. Existing
// keys are overwritten, keys missing from other are kept. The receiver may be
// nil; the returned map is always non-nil.
func (m Metadata) Merge(other Metadata) Metadata {
	out := m.Clone()
	if out == nil {
		out = make(Metadata, len(other))
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Float reads a numeric value by key. Missing keys and non-numeric values
// report ok=false.
func (m Metadata) Float(key string) (float64, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
