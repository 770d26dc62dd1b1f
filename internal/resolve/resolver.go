package resolve

import (
	"github.com/stasinato/dto-generator/internal/ir"
	"github.com/stasinato/dto-generator/internal/schema"
)

// Resolve maps a schema node to a type reference, registering pending
// record definitions in the context as a side effect. Unresolvable
// leaves degrade to Unknown; Resolve never fails.
func (c *Context) Resolve(node *schema.Node, hint string) ir.TypeRef {
	if node == nil {
		return ir.Unknown()
	}
	switch node.Kind {
	case schema.KindReference:
		if name, ok := c.alias[schema.RefTarget(node.Ref)]; ok {
			return ir.Record(name)
		}
		return ir.Unknown()
	case schema.KindObject:
		return c.resolveObject(node, hint)
	case schema.KindArray:
		// the item reuses the property name as its naming hint
		return ir.List(c.Resolve(node.Items, hint))
	case schema.KindPrimitive:
		return resolvePrimitive(node)
	default:
		return ir.Unknown()
	}
}

func (c *Context) resolveObject(node *schema.Node, hint string) ir.TypeRef {
	if len(node.Properties) == 0 {
		return ir.Map()
	}
	if c.cfg.Policy == PolicyInline {
		if len(node.Properties) > c.cfg.threshold() {
			return ir.Map()
		}
		return ir.Record(c.registerInline(node, hint))
	}
	return ir.Record(c.registerPromoted("", node, hint))
}

func resolvePrimitive(node *schema.Node) ir.TypeRef {
	switch node.Primitive {
	case "string":
		if node.Format == "date" || node.Format == "date-time" {
			return ir.Primitive(ir.PrimDateTime)
		}
		return ir.Primitive(ir.PrimString)
	case "integer":
		return ir.Primitive(ir.PrimInteger)
	case "number":
		return ir.Primitive(ir.PrimNumber)
	case "boolean":
		return ir.Primitive(ir.PrimBoolean)
	default:
		return ir.Unknown()
	}
}
