package loader

import (
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/stasinato/dto-generator/internal/openapi"
	"github.com/stasinato/dto-generator/internal/resolve"
	"github.com/stasinato/dto-generator/internal/schema"
)

// loadOpenAPI loads a full OpenAPI document through kin-openapi and
// takes components.schemas as the definition set.
func loadOpenAPI(path string) (*Result, error) {
	doc, err := openapi.LoadAndValidate(path)
	if err != nil {
		return nil, err
	}
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, fmt.Errorf("OpenAPI document has no components.schemas")
	}

	names := make([]string, 0, len(doc.Components.Schemas))
	for name := range doc.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	out := &schema.Document{}
	for _, name := range names {
		node, err := nodeFromOpenAPI(doc.Components.Schemas[name])
		if err != nil {
			return nil, fmt.Errorf("components.schemas.%s: %w", name, err)
		}
		out.Definitions = append(out.Definitions, schema.Definition{Key: name, Schema: node})
	}
	return &Result{Document: out, Policy: resolve.PolicyPromote}, nil
}

// nodeFromOpenAPI converts a kin-openapi schema into a schema node.
// Unlike the loaders above this one is fully permissive: kin-openapi
// has already validated the document, so anything it cannot express in
// our model degrades to Unknown.
func nodeFromOpenAPI(sr *openapi3.SchemaRef) (*schema.Node, error) {
	if sr == nil {
		return schema.Unknown(), nil
	}
	if sr.Ref != "" {
		return schema.Reference(sr.Ref), nil
	}
	v := sr.Value
	if v == nil {
		return schema.Unknown(), nil
	}

	typ := ""
	if v.Type != nil && len(*v.Type) > 0 {
		typ = (*v.Type)[0]
	}
	if typ == "" && len(v.Properties) > 0 {
		typ = "object"
	}

	switch typ {
	case "object":
		names := make([]string, 0, len(v.Properties))
		for name := range v.Properties {
			names = append(names, name)
		}
		sort.Strings(names)

		props := make([]schema.Property, 0, len(names))
		for _, name := range names {
			node, err := nodeFromOpenAPI(v.Properties[name])
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", name, err)
			}
			props = append(props, schema.Property{Name: name, Schema: node})
		}
		required := make(map[string]bool, len(v.Required))
		for _, name := range v.Required {
			required[name] = true
		}
		return schema.Object(props, required), nil
	case "array":
		if v.Items == nil {
			return schema.Array(schema.Unknown()), nil
		}
		items, err := nodeFromOpenAPI(v.Items)
		if err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
		return schema.Array(items), nil
	case "string", "integer", "number", "boolean":
		return schema.Primitive(typ, v.Format), nil
	default:
		return schema.Unknown(), nil
	}
}
