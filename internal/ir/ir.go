package ir

type RefKind string

const (
	KindPrimitive RefKind = "primitive"
	KindRecord    RefKind = "record"
	KindList      RefKind = "list"
	KindMap       RefKind = "map"
	KindUnknown   RefKind = "unknown"
)

type PrimitiveKind string

const (
	PrimString   PrimitiveKind = "string"
	PrimInteger  PrimitiveKind = "integer"
	PrimNumber   PrimitiveKind = "number"
	PrimBoolean  PrimitiveKind = "boolean"
	PrimDateTime PrimitiveKind = "datetime"
)

// TypeRef is a resolved type descriptor. Never mutated after creation.
type TypeRef struct {
	Kind      RefKind       `json:"kind"`
	Primitive PrimitiveKind `json:"primitive,omitempty"` // KindPrimitive
	Name      string        `json:"name,omitempty"`      // KindRecord
	Elem      *TypeRef      `json:"elem,omitempty"`      // KindList
}

func Primitive(k PrimitiveKind) TypeRef {
	return TypeRef{Kind: KindPrimitive, Primitive: k}
}

func Record(name string) TypeRef {
	return TypeRef{Kind: KindRecord, Name: name}
}

func List(elem TypeRef) TypeRef {
	return TypeRef{Kind: KindList, Elem: &elem}
}

// Map is the opaque untyped container; no inner structure is modeled.
func Map() TypeRef {
	return TypeRef{Kind: KindMap}
}

func Unknown() TypeRef {
	return TypeRef{Kind: KindUnknown}
}

// Field is a resolved record field. WireKey is set only when the
// resolved identifier differs from the original property name, so
// emitters can produce correct serialization mappings.
type Field struct {
	Name     string  `json:"name"`
	WireKey  string  `json:"wireKey,omitempty"`
	Type     TypeRef `json:"type"`
	Required bool    `json:"required"`
}

// Key returns the serialization key for the field.
func (f Field) Key() string {
	if f.WireKey != "" {
		return f.WireKey
	}
	return f.Name
}

// RecordDef is a finalized named record definition. Created exactly once
// per distinct structural signature; never mutated afterwards.
type RecordDef struct {
	Name      string  `json:"name"`
	Fields    []Field `json:"fields"`
	Signature string  `json:"signature"`
}
