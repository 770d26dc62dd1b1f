package codegen

import (
	"fmt"

	"github.com/stasinato/dto-generator/internal/emit"
	"github.com/stasinato/dto-generator/internal/loader"
	"github.com/stasinato/dto-generator/internal/resolve"
)

// Generate runs the whole pipeline: load and normalize the document,
// resolve it into a deduplicated record registry, emit the targets.
func Generate(opts Options) (*Result, error) {
	if opts.SpecPath == "" {
		return nil, fmt.Errorf("spec path is required")
	}
	if opts.OutDir == "" {
		return nil, fmt.Errorf("output directory is required")
	}

	loaded, err := loader.Load(opts.SpecPath, opts.RootName)
	if err != nil {
		return nil, err
	}

	records, err := resolve.Run(loaded.Document, resolve.Config{
		Policy:          loaded.Policy,
		InlineThreshold: opts.InlineThreshold,
	})
	if err != nil {
		return nil, err
	}

	files, err := emit.Dispatch(records, emit.Options{
		OutDir:  opts.OutDir,
		Targets: opts.Targets,
		Package: opts.Package,
		Check:   opts.Check,
	})
	if err != nil {
		return nil, err
	}

	return &Result{Files: files, Records: records}, nil
}
