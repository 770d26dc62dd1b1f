package resolve

import (
	"sort"
	"strings"

	"github.com/stasinato/dto-generator/internal/schema"
)

// SignatureOf canonicalizes a schema node into an order-independent
// structural signature. Equal shapes yield equal signatures regardless
// of property declaration order or originating location; the signature
// is the sole dedup key for promoted nested object schemas.
func SignatureOf(n *schema.Node) string {
	if n == nil {
		return "unknown"
	}
	switch n.Kind {
	case schema.KindObject:
		names := make([]string, 0, len(n.Properties))
		for _, p := range n.Properties {
			names = append(names, p.Name)
		}
		sort.Strings(names)

		var b strings.Builder
		b.WriteString("obj{")
		for i, name := range names {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(name)
			if n.Required[name] {
				b.WriteByte('!')
			}
			b.WriteByte(':')
			b.WriteString(SignatureOf(n.Prop(name)))
		}
		b.WriteByte('}')
		return b.String()
	case schema.KindArray:
		return "arr[" + SignatureOf(n.Items) + "]"
	case schema.KindPrimitive:
		if n.Format != "" {
			return "prim:" + n.Primitive + ":" + n.Format
		}
		return "prim:" + n.Primitive
	case schema.KindReference:
		return "ref:" + schema.RefTarget(n.Ref)
	default:
		return "unknown"
	}
}
