package emit

import (
	"fmt"
	"path/filepath"

	json "github.com/goccy/go-json"

	"github.com/stasinato/dto-generator/internal/emit/common"
	"github.com/stasinato/dto-generator/internal/emit/golang"
	"github.com/stasinato/dto-generator/internal/ir"
)

type Options struct {
	OutDir  string
	Targets []string
	Package string
	Check   bool
}

func Dispatch(records []ir.RecordDef, opt Options) ([]string, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no record definitions to emit")
	}
	if len(opt.Targets) == 0 {
		opt.Targets = []string{"go"}
	}

	var files []string
	for _, t := range opt.Targets {
		switch t {
		case "go":
			fs, err := golang.Emit(records, golang.EmitOptions{
				OutDir:  opt.OutDir,
				Package: opt.Package,
				Check:   opt.Check,
			})
			if err != nil {
				return nil, err
			}
			files = append(files, fs...)
		case "json-ir":
			fs, err := emitJSONIR(records, opt)
			if err != nil {
				return nil, err
			}
			files = append(files, fs...)
		default:
			return nil, fmt.Errorf("unknown target: %s", t)
		}
	}
	return files, nil
}

// emitJSONIR dumps the resolved registry as JSON, mostly useful for
// debugging and diffing generator changes.
func emitJSONIR(records []ir.RecordDef, opt Options) ([]string, error) {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal IR: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(opt.OutDir, "ir.gen.json")
	wrote, err := common.WriteFile(path, data, common.WriteOptions{Check: opt.Check})
	if err != nil {
		return nil, err
	}
	if wrote {
		return []string{path}, nil
	}
	return nil, nil
}
