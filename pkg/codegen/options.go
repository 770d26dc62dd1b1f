package codegen

import "github.com/stasinato/dto-generator/internal/ir"

type Options struct {
	// SpecPath is the input document: an OpenAPI/Swagger file, a raw
	// JSON-Schema-like document, or a document carrying an example.
	SpecPath string

	// OutDir is where generated files are written.
	OutDir string

	// Targets selects emitters; defaults to "go". Known: go, json-ir.
	Targets []string

	// RootName names the top-level record when the document yields a
	// single inferred or direct schema; defaults to the file name.
	RootName string

	// Package is the Go package of emitted files; defaults to "models".
	Package string

	// InlineThreshold is the property count at or below which small
	// nested objects are inlined under the inline-capable policy.
	// 0 means the default.
	InlineThreshold int

	// Check fails instead of writing when output would change.
	Check bool

	Verbose bool
}

type Result struct {
	Files   []string
	Records []ir.RecordDef
}
