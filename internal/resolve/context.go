package resolve

import (
	"strconv"

	"github.com/stasinato/dto-generator/internal/ir"
	"github.com/stasinato/dto-generator/internal/schema"
)

// Policy selects how nested object schemas are handled.
type Policy string

const (
	// PolicyInline is used for schemas derived from direct example or
	// document input: small nested objects become scoped anonymous
	// records, larger ones degrade to the opaque Map type.
	PolicyInline Policy = "inline"

	// PolicyPromote is used for schemas reached via declared
	// definitions: every nested object is promoted to a shared,
	// signature-deduplicated top-level record.
	PolicyPromote Policy = "promote"
)

// DefaultInlineThreshold is the property count at or below which a
// nested object is inlined under PolicyInline.
const DefaultInlineThreshold = 3

type Config struct {
	Policy          Policy
	InlineThreshold int // 0 means DefaultInlineThreshold
}

func (c Config) threshold() int {
	if c.InlineThreshold > 0 {
		return c.InlineThreshold
	}
	return DefaultInlineThreshold
}

// entry is a registered record definition awaiting (or past)
// materialization of its fields.
type entry struct {
	name   string
	sig    string
	node   *schema.Node
	fields []ir.Field
}

// Context owns the definition registry for one generation run. It is
// mutated only by the worklist driver and the type resolver, strictly
// sequentially; independent runs must use independent contexts.
type Context struct {
	cfg Config

	entries map[string]*entry // by type name
	order   []string          // first-discovery order of type names

	bySig map[string]string // structural signature -> canonical type name
	names map[string]string // type name -> owning signature
	alias map[string]string // schema key -> type name (for $ref lookups)

	pending   []string // discovered but unmaterialized type names
	processed map[string]bool
}

func NewContext(cfg Config) *Context {
	if cfg.Policy == "" {
		cfg.Policy = PolicyPromote
	}
	return &Context{
		cfg:       cfg,
		entries:   map[string]*entry{},
		bySig:     map[string]string{},
		names:     map[string]string{},
		alias:     map[string]string{},
		processed: map[string]bool{},
	}
}

// uniqueName reserves an unused type name derived from base, appending
// an incrementing numeric suffix on collision. Existing definitions are
// never overwritten.
func (c *Context) uniqueName(base string) string {
	if base == "" {
		base = fallbackTypeName
	}
	if _, taken := c.names[base]; !taken {
		return base
	}
	for i := 2; ; i++ {
		cand := base + strconv.Itoa(i)
		if _, taken := c.names[cand]; !taken {
			return cand
		}
	}
}

// registerPromoted returns the canonical type name for node, creating a
// new pending definition when its signature is unseen. Growth of the
// pending set is always gated by the signature table, which bounds the
// worklist fixpoint.
func (c *Context) registerPromoted(key string, node *schema.Node, hint string) string {
	sig := SignatureOf(node)
	if name, ok := c.bySig[sig]; ok {
		if key != "" {
			c.alias[key] = name
		}
		return name
	}
	name := c.uniqueName(TypeName(hint))
	c.bySig[sig] = name
	c.addEntry(key, name, sig, node)
	return name
}

// registerInline creates a scoped anonymous record named from hint.
// Inline records are deliberately not deduplicated against each other:
// each occurrence is local to its parent and not meant to be shared.
func (c *Context) registerInline(node *schema.Node, hint string) string {
	name := c.uniqueName(TypeName(hint))
	c.addEntry("", name, SignatureOf(node), node)
	return name
}

func (c *Context) addEntry(key, name, sig string, node *schema.Node) {
	c.names[name] = sig
	c.entries[name] = &entry{name: name, sig: sig, node: node}
	c.order = append(c.order, name)
	c.pending = append(c.pending, name)
	if key != "" {
		c.alias[key] = name
	}
}

// takePending snapshots and clears the unprocessed pending names.
func (c *Context) takePending() []string {
	batch := make([]string, 0, len(c.pending))
	for _, name := range c.pending {
		if !c.processed[name] {
			batch = append(batch, name)
		}
	}
	c.pending = c.pending[:0]
	return batch
}
