package schema

import (
	"encoding/json"
	"sort"
)

// Infer derives a schema node from an example value by structural
// induction. Booleans are checked before numbers so they are never
// misclassified; anything unrecognized defaults to string.
func Infer(value any) *Node {
	switch v := value.(type) {
	case bool:
		return Primitive("boolean", "")
	case json.Number:
		if _, err := v.Int64(); err == nil {
			return Primitive("integer", "")
		}
		return Primitive("number", "")
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return Primitive("integer", "")
	case float32, float64:
		return Primitive("number", "")
	case string:
		return Primitive("string", "")
	case []any:
		if len(v) == 0 {
			// no signal to infer the item shape from
			return Array(Unknown())
		}
		return Array(Infer(v[0]))
	case map[string]any:
		return inferObject(v)
	default:
		return Primitive("string", "")
	}
}

func inferObject(m map[string]any) *Node {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)

	props := make([]Property, 0, len(names))
	required := make(map[string]bool, len(names))
	for _, name := range names {
		props = append(props, Property{Name: name, Schema: Infer(m[name])})
		if m[name] != nil {
			required[name] = true
		}
	}
	return Object(props, required)
}
