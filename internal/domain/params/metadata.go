package params

// Well-known metadata keys
const (
	// MetaDefault holds the value returned when no override is stored
	MetaDefault = "deflt"
	// MetaModifyCallback holds a ChangeCallback invoked when a save changes the value
	MetaModifyCallback = "modify_cb"
	// MetaLabel holds a short display name
	MetaLabel = "label"
	// MetaHelp holds a longer description
	MetaHelp = "help"
	// MetaType holds a display hint for rendering the parameter
	MetaType = "type"
	// MetaValues holds the allowed values for list-like parameters
	MetaValues = "values"
)

// ChangeCallback is invoked with the new value when a save actually changes
// a parameter, before the override is persisted
type ChangeCallback func(value string)

// Metadata is the open-ended definition of one parameter. Beyond the
// well-known keys, namespaces may attach arbitrary display hints.
type Metadata map[string]any

// Default returns the declared default value, or the empty string when the
// definition carries none
func (m Metadata) Default() string {
	if v, ok := m[MetaDefault].(string); ok {
		return v
	}
	return ""
}

// ChangeCallback returns the attached value-change callback, or nil
func (m Metadata) ChangeCallback() ChangeCallback {
	switch cb := m[MetaModifyCallback].(type) {
	case ChangeCallback:
		return cb
	case func(string):
		return cb
	default:
		return nil
	}
}

// Merge copies every key from other into m, overwriting existing keys
func (m Metadata) Merge(other Metadata) {
	for k, v := range other {
		m[k] = v
	}
}

// Clone returns a deep copy of m, safe for external mutation. Nested maps and
// slices are copied recursively, other values are shared.
func (m Metadata) Clone() Metadata {
	if m == nil {
		return nil
	}
	clone := make(Metadata, len(m))
	for k, v := range m {
		clone[k] = cloneValue(v)
	}
	return clone
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		clone := make(map[string]any, len(val))
		for k, nested := range val {
			clone[k] = cloneValue(nested)
		}
		return clone
	case Metadata:
		return val.Clone()
	case []any:
		clone := make([]any, len(val))
		for i, nested := range val {
			clone[i] = cloneValue(nested)
		}
		return clone
	case []string:
		clone := make([]string, len(val))
		copy(clone, val)
		return clone
	default:
		return v
	}
}
