package loader

import (
	"fmt"
	"sort"

	"github.com/stasinato/dto-generator/internal/schema"
)

// nodeFromGeneric converts a generically decoded (JSON) schema value
// into a schema node. Unrecognized type tags degrade to Unknown; only a
// non-mapping where an object is required is an error.
func nodeFromGeneric(v any) (*schema.Node, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("schema must be an object-shaped mapping, got %T", v)
	}

	if ref, ok := m["$ref"].(string); ok && ref != "" {
		return schema.Reference(ref), nil
	}

	typ, _ := m["type"].(string)
	if typ == "" {
		if _, ok := m["properties"]; !ok {
			return schema.Unknown(), nil
		}
		typ = "object"
	}

	switch typ {
	case "object":
		propsVal, ok := m["properties"]
		if !ok {
			return schema.Object(nil, nil), nil
		}
		pm, ok := propsVal.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("properties must be a mapping, got %T", propsVal)
		}
		props := make([]schema.Property, 0, len(pm))
		for _, name := range sortedKeys(pm) {
			node, err := nodeFromGeneric(pm[name])
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", name, err)
			}
			props = append(props, schema.Property{Name: name, Schema: node})
		}
		return schema.Object(props, requiredSet(m["required"])), nil
	case "array":
		itemsVal, ok := m["items"]
		if !ok {
			return schema.Array(schema.Unknown()), nil
		}
		items, err := nodeFromGeneric(itemsVal)
		if err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
		return schema.Array(items), nil
	case "string", "integer", "number", "boolean":
		format, _ := m["format"].(string)
		return schema.Primitive(typ, format), nil
	default:
		return schema.Unknown(), nil
	}
}

func requiredSet(v any) map[string]bool {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make(map[string]bool, len(list))
	for _, item := range list {
		if name, ok := item.(string); ok {
			out[name] = true
		}
	}
	return out
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
