package schema

import "strings"

type Kind string

const (
	KindObject    Kind = "object"
	KindArray     Kind = "array"
	KindPrimitive Kind = "primitive"
	KindReference Kind = "reference"
	KindUnknown   Kind = "unknown"
)

// Node is the tagged structural description of a value's shape.
// Nodes are immutable once constructed.
type Node struct {
	Kind Kind

	// object
	Properties []Property // declaration order
	Required   map[string]bool

	// array
	Items *Node

	// primitive
	Primitive string // "string" | "integer" | "number" | "boolean"
	Format    string // "date" | "date-time" | ""

	// reference
	Ref string // e.g. "#/components/schemas/User"
}

type Property struct {
	Name   string
	Schema *Node
}

func Object(props []Property, required map[string]bool) *Node {
	if required == nil {
		required = map[string]bool{}
	}
	return &Node{Kind: KindObject, Properties: props, Required: required}
}

func Array(items *Node) *Node {
	return &Node{Kind: KindArray, Items: items}
}

func Primitive(kind, format string) *Node {
	return &Node{Kind: KindPrimitive, Primitive: kind, Format: format}
}

func Reference(ref string) *Node {
	return &Node{Kind: KindReference, Ref: ref}
}

func Unknown() *Node {
	return &Node{Kind: KindUnknown}
}

// Prop returns the schema of the named property, or nil.
func (n *Node) Prop(name string) *Node {
	for _, p := range n.Properties {
		if p.Name == name {
			return p.Schema
		}
	}
	return nil
}

// RefTarget strips a reference path down to its final segment.
// Only same-document refs of the form "#/<container>/<Name>" are
// supported, so the last segment is the whole lookup key.
func RefTarget(ref string) string {
	if i := strings.LastIndexByte(ref, '/'); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

// Document is a normalized set of named top-level schema definitions,
// in declaration (or discovery) order.
type Document struct {
	Definitions []Definition
}

type Definition struct {
	Key    string
	Schema *Node
}
