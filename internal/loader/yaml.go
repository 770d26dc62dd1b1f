package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/stasinato/dto-generator/internal/resolve"
	"github.com/stasinato/dto-generator/internal/schema"
)

// loadYAML applies the same strategy order as the JSON path, but walks
// yaml.Node mappings directly so property declaration order survives
// into the schema nodes.
func loadYAML(path string, data []byte, rootName string) (*Result, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	doc := &root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: document root must be a mapping", path)
	}

	if yamlKey(doc, "openapi") != nil {
		return loadOpenAPI(path)
	}

	defs := yamlKey(yamlKey(doc, "components"), "schemas")
	if defs == nil {
		defs = yamlKey(doc, "definitions")
	}
	if defs != nil && defs.Kind == yaml.MappingNode && len(defs.Content) > 0 {
		out := &schema.Document{}
		for i := 0; i+1 < len(defs.Content); i += 2 {
			name := defs.Content[i].Value
			node, err := nodeFromYAML(defs.Content[i+1])
			if err != nil {
				return nil, fmt.Errorf("definition %q: %w", name, err)
			}
			out.Definitions = append(out.Definitions, schema.Definition{Key: name, Schema: node})
		}
		return &Result{Document: out, Policy: resolve.PolicyPromote}, nil
	}

	if example := yamlKey(doc, "example"); example != nil {
		var value any
		if err := example.Decode(&value); err != nil {
			return nil, fmt.Errorf("decode example: %w", err)
		}
		out := &schema.Document{Definitions: []schema.Definition{
			{Key: rootName, Schema: schema.Infer(value)},
		}}
		return &Result{Document: out, Policy: resolve.PolicyInline}, nil
	}

	if yamlKey(doc, "type") != nil || yamlKey(doc, "properties") != nil {
		node, err := nodeFromYAML(doc)
		if err != nil {
			return nil, err
		}
		out := &schema.Document{Definitions: []schema.Definition{
			{Key: rootName, Schema: node},
		}}
		return &Result{Document: out, Policy: resolve.PolicyInline}, nil
	}

	return nil, fmt.Errorf("no schema definitions found: document has no definitions, no example, and no top-level schema structure")
}

func nodeFromYAML(n *yaml.Node) (*schema.Node, error) {
	if n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if n == nil || n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("schema must be an object-shaped mapping")
	}

	if ref := yamlKey(n, "$ref"); ref != nil && ref.Value != "" {
		return schema.Reference(ref.Value), nil
	}

	typ := ""
	if t := yamlKey(n, "type"); t != nil {
		typ = t.Value
	}
	props := yamlKey(n, "properties")
	if typ == "" {
		if props == nil {
			return schema.Unknown(), nil
		}
		typ = "object"
	}

	switch typ {
	case "object":
		if props == nil {
			return schema.Object(nil, nil), nil
		}
		if props.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("properties must be a mapping")
		}
		out := make([]schema.Property, 0, len(props.Content)/2)
		for i := 0; i+1 < len(props.Content); i += 2 {
			name := props.Content[i].Value
			node, err := nodeFromYAML(props.Content[i+1])
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", name, err)
			}
			out = append(out, schema.Property{Name: name, Schema: node})
		}
		return schema.Object(out, yamlRequired(yamlKey(n, "required"))), nil
	case "array":
		items := yamlKey(n, "items")
		if items == nil {
			return schema.Array(schema.Unknown()), nil
		}
		node, err := nodeFromYAML(items)
		if err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
		return schema.Array(node), nil
	case "string", "integer", "number", "boolean":
		format := ""
		if f := yamlKey(n, "format"); f != nil {
			format = f.Value
		}
		return schema.Primitive(typ, format), nil
	default:
		return schema.Unknown(), nil
	}
}

// yamlKey returns the value node for a mapping key, or nil.
func yamlKey(m *yaml.Node, name string) *yaml.Node {
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == name {
			return m.Content[i+1]
		}
	}
	return nil
}

func yamlRequired(n *yaml.Node) map[string]bool {
	if n == nil || n.Kind != yaml.SequenceNode {
		return nil
	}
	out := make(map[string]bool, len(n.Content))
	for _, item := range n.Content {
		if item.Value != "" {
			out[item.Value] = true
		}
	}
	return out
}
