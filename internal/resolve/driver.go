package resolve

import (
	"fmt"

	"github.com/stasinato/dto-generator/internal/ir"
	"github.com/stasinato/dto-generator/internal/schema"
)

// Run seeds a fresh context from the document's top-level definitions
// and drives the worklist to a fixpoint: each pass materializes the
// pending definitions discovered so far, which may promote new nested
// schemas into the pending set; the loop ends when a full pass adds
// nothing. Growth is gated by the signature dedup table, so the number
// of passes is bounded by the number of distinct signatures.
//
// Records are returned in first-discovery order, not input-document
// order: dedup can skip a later-declared schema in favor of an
// earlier-registered equivalent.
func Run(doc *schema.Document, cfg Config) ([]ir.RecordDef, error) {
	if doc == nil || len(doc.Definitions) == 0 {
		return nil, fmt.Errorf("no schema definitions to resolve")
	}

	ctx := NewContext(cfg)
	for _, def := range doc.Definitions {
		if err := ctx.seed(def.Key, def.Schema); err != nil {
			return nil, err
		}
	}

	for {
		batch := ctx.takePending()
		if len(batch) == 0 {
			break
		}
		for _, name := range batch {
			ctx.materialize(name)
		}
	}

	return ctx.Records(), nil
}

// seed registers a top-level definition. Top-level keys are always
// promoted (and signature-deduplicated) regardless of policy; a key
// whose signature already has a canonical record simply aliases it.
func (c *Context) seed(key string, node *schema.Node) error {
	if node == nil || node.Kind != schema.KindObject {
		return fmt.Errorf("definition %q: expected an object schema", key)
	}
	if _, ok := c.alias[key]; ok {
		return nil
	}
	c.registerPromoted(key, node, key)
	return nil
}

// materialize resolves the fields of a registered definition. Type
// names are assigned at registration time, so a reference back into a
// not-yet-materialized definition resolves through the alias table
// without recursing; self- and mutually-referential schemas terminate.
func (c *Context) materialize(name string) {
	e := c.entries[name]
	if e == nil || c.processed[name] {
		return
	}

	fields := make([]ir.Field, 0, len(e.node.Properties))
	for _, p := range e.node.Properties {
		ident := FieldName(p.Name)
		f := ir.Field{
			Name:     ident,
			Type:     c.Resolve(p.Schema, p.Name),
			Required: e.node.Required[p.Name],
		}
		if ident != p.Name {
			f.WireKey = p.Name
		}
		fields = append(fields, f)
	}
	e.fields = fields
	c.processed[name] = true
}

// Records returns the finalized definitions in first-discovery order.
func (c *Context) Records() []ir.RecordDef {
	out := make([]ir.RecordDef, 0, len(c.order))
	for _, name := range c.order {
		e := c.entries[name]
		out = append(out, ir.RecordDef{Name: e.name, Fields: e.fields, Signature: e.sig})
	}
	return out
}
