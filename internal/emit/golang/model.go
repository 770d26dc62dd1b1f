package golang

import (
	"fmt"
	"strings"

	"github.com/stasinato/dto-generator/internal/ir"
)

type EmitOptions struct {
	OutDir  string
	Package string // default "models"
	Check   bool
}

type fileData struct {
	Package   string
	NeedsTime bool
	Type      typeData
}

type typeData struct {
	Name   string
	Fields []fieldData
}

type fieldData struct {
	Name string // exported Go field name
	Type string
	Tag  string
}

func buildFile(rec ir.RecordDef, pkg string) fileData {
	fd := fileData{Package: pkg}
	td := typeData{Name: rec.Name}
	for _, f := range rec.Fields {
		td.Fields = append(td.Fields, fieldData{
			Name: exported(f.Name),
			Type: renderType(f.Type, f.Required, &fd.NeedsTime),
			Tag:  jsonTag(f.Key(), f.Required),
		})
	}
	fd.Type = td
	return fd
}

func renderType(tr ir.TypeRef, required bool, needsTime *bool) string {
	var t string
	switch tr.Kind {
	case ir.KindPrimitive:
		switch tr.Primitive {
		case ir.PrimString:
			t = "string"
		case ir.PrimInteger:
			t = "int64"
		case ir.PrimNumber:
			t = "float64"
		case ir.PrimBoolean:
			t = "bool"
		case ir.PrimDateTime:
			*needsTime = true
			t = "time.Time"
		default:
			t = "any"
		}
	case ir.KindRecord:
		t = tr.Name
	case ir.KindList:
		elem := "any"
		if tr.Elem != nil {
			elem = renderType(*tr.Elem, true, needsTime)
		}
		t = "[]" + elem
	case ir.KindMap:
		t = "map[string]any"
	default:
		t = "any"
	}

	// optional => pointer, except for containers and any
	if !required && !strings.HasPrefix(t, "[]") && !strings.HasPrefix(t, "map[") && t != "any" {
		return "*" + t
	}
	return t
}

func jsonTag(key string, required bool) string {
	if required {
		return fmt.Sprintf("`json:%q`", key)
	}
	return fmt.Sprintf("`json:%q`", key+",omitempty")
}

// exported maps a resolved field identifier to an exported Go field
// name. Identifiers can still carry characters that are invalid in Go
// (e.g. a hyphenated wire key), so split on non-alphanumeric
// boundaries and capitalize each part.
func exported(name string) string {
	var parts []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() == 0 {
			return
		}
		parts = append(parts, cur.String())
		cur.Reset()
	}
	for _, r := range name {
		isLetter := (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
		isDigit := (r >= '0' && r <= '9')
		if isLetter || isDigit {
			cur.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	var out strings.Builder
	for _, p := range parts {
		out.WriteString(strings.ToUpper(p[:1]))
		out.WriteString(p[1:])
	}
	res := out.String()
	// must start with a letter
	if res == "" || (res[0] >= '0' && res[0] <= '9') {
		return "Field"
	}
	return res
}

// FileName maps a type name to its output file; a pure function of the
// name. Upper-case runs collapse to a single snake_case segment, so
// "UserDTO" becomes "user_dto.gen.go".
func FileName(typeName string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range typeName {
		if r >= 'A' && r <= 'Z' {
			if prevLower {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			prevLower = false
			continue
		}
		b.WriteRune(r)
		prevLower = true
	}
	return b.String() + ".gen.go"
}
