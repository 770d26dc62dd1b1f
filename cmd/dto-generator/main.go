package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/stasinato/dto-generator/pkg/codegen"
)

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		p := strings.TrimSpace(part)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func main() {
	var (
		specPath  = flag.String("spec", "", "Path to the schema document: OpenAPI/Swagger, raw JSON Schema, or an example document (required)")
		outDir    = flag.String("out", ".", "Output directory")
		targets   = flag.String("targets", "go", "Comma-separated targets: go,json-ir")
		rootName  = flag.String("root", "", "Name for the top-level record when the document yields a single schema (default: file name)")
		pkg       = flag.String("package", "models", "Package name for emitted Go files")
		threshold = flag.Int("inline-threshold", 0, "Max property count for inlining small nested objects (default 3)")
		check     = flag.Bool("check", false, "Check-only mode: do not write, fail if output differs")
		verbose   = flag.Bool("v", false, "Verbose logs")
	)
	flag.Parse()

	if *specPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -spec is required")
		flag.Usage()
		os.Exit(2)
	}

	opts := codegen.Options{
		SpecPath:        *specPath,
		OutDir:          *outDir,
		Targets:         splitCSV(*targets),
		RootName:        *rootName,
		Package:         *pkg,
		InlineThreshold: *threshold,
		Check:           *check,
		Verbose:         *verbose,
	}

	res, err := codegen.Generate(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	if opts.Verbose {
		fmt.Printf("Resolved %d record(s), generated %d file(s)\n", len(res.Records), len(res.Files))
		for _, f := range res.Files {
			fmt.Println(" -", f)
		}
		spew.Dump(res.Records)
	}
}
