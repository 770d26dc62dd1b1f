package resolve

import "strings"

const fallbackTypeName = "UnnamedRecord"

// TypeName turns a raw schema key into a valid type identifier:
// split on non-alphanumeric boundaries, capitalize each word, concat.
// An empty or unusable result falls back to "UnnamedRecord".
func TypeName(raw string) string {
	raw = strings.TrimSpace(raw)
	var parts []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() == 0 {
			return
		}
		parts = append(parts, cur.String())
		cur.Reset()
	}
	for _, r := range raw {
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
		return fallbackTypeName
	}
	return res
}

// FieldName turns a raw property name into a field identifier.
// Underscored names become lower camel case; otherwise only the first
// character is lowercased. Empty input falls back to "empty".
func FieldName(raw string) string {
	if raw == "" {
		return "empty"
	}
	if !strings.Contains(raw, "_") {
		return strings.ToLower(raw[:1]) + raw[1:]
	}

	var out strings.Builder
	first := true
	for _, seg := range strings.Split(raw, "_") {
		if seg == "" {
			continue
		}
		if first {
			out.WriteString(strings.ToLower(seg[:1]))
			out.WriteString(seg[1:])
			first = false
			continue
		}
		out.WriteString(strings.ToUpper(seg[:1]))
		out.WriteString(seg[1:])
	}
	if out.Len() == 0 {
		return "empty"
	}
	return out.String()
}
