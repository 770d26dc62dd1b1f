package loader

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/stasinato/dto-generator/internal/resolve"
	"github.com/stasinato/dto-generator/internal/schema"
)

// Result is a normalized document plus the resolution policy implied by
// how its definitions were obtained: declared definitions promote,
// direct example/document input inlines.
type Result struct {
	Document *schema.Document
	Policy   resolve.Policy
}

// Load reads a schema-like document and obtains definitions by the
// first applicable strategy: explicit definitions (OpenAPI
// components.schemas or Swagger-style definitions), a top-level example
// value to infer from, or the document itself being a schema. No
// strategy applying is a hard error.
func Load(path, rootName string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if rootName == "" {
		rootName = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAML(path, data, rootName)
	default:
		return loadJSON(path, data, rootName)
	}
}

func loadJSON(path string, data []byte, rootName string) (*Result, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	root, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: document root must be an object", path)
	}
	// only OpenAPI 3 documents go through kin-openapi; Swagger 2
	// documents carry top-level "definitions" and are absorbed by the
	// generic path below
	if _, isOpenAPI := root["openapi"]; isOpenAPI {
		return loadOpenAPI(path)
	}
	return documentFromGeneric(root, rootName)
}

func documentFromGeneric(root map[string]any, rootName string) (*Result, error) {
	defs := lookupDefinitions(root)
	if len(defs) > 0 {
		doc := &schema.Document{}
		for _, name := range sortedKeys(defs) {
			node, err := nodeFromGeneric(defs[name])
			if err != nil {
				return nil, fmt.Errorf("definition %q: %w", name, err)
			}
			doc.Definitions = append(doc.Definitions, schema.Definition{Key: name, Schema: node})
		}
		return &Result{Document: doc, Policy: resolve.PolicyPromote}, nil
	}

	if example, ok := root["example"]; ok {
		doc := &schema.Document{Definitions: []schema.Definition{
			{Key: rootName, Schema: schema.Infer(example)},
		}}
		return &Result{Document: doc, Policy: resolve.PolicyInline}, nil
	}

	if looksLikeSchema(root) {
		node, err := nodeFromGeneric(root)
		if err != nil {
			return nil, err
		}
		doc := &schema.Document{Definitions: []schema.Definition{
			{Key: rootName, Schema: node},
		}}
		return &Result{Document: doc, Policy: resolve.PolicyInline}, nil
	}

	return nil, fmt.Errorf("no schema definitions found: document has no definitions, no example, and no top-level schema structure")
}

// lookupDefinitions finds components.schemas (OpenAPI) or definitions
// (Swagger-style) in a generically decoded document.
func lookupDefinitions(root map[string]any) map[string]any {
	if comps, ok := root["components"].(map[string]any); ok {
		if schemas, ok := comps["schemas"].(map[string]any); ok {
			return schemas
		}
	}
	if defs, ok := root["definitions"].(map[string]any); ok {
		return defs
	}
	return nil
}

func looksLikeSchema(m map[string]any) bool {
	if _, ok := m["properties"]; ok {
		return true
	}
	if _, ok := m["type"]; ok {
		return true
	}
	return false
}
