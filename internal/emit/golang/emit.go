package golang

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/stasinato/dto-generator/internal/emit/common"
	"github.com/stasinato/dto-generator/internal/ir"
)

//go:embed templates/*.go.tpl
var tplFS embed.FS

// Emit renders one Go source file per record definition.
func Emit(records []ir.RecordDef, opt EmitOptions) ([]string, error) {
	if opt.Package == "" {
		opt.Package = "models"
	}

	tplText, err := tplFS.ReadFile("templates/record.go.tpl")
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	tpl, err := template.New("record.go.tpl").Parse(string(tplText))
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	var files []string
	seen := map[string]int{}
	for _, rec := range records {
		data := buildFile(rec, opt.Package)

		var buf bytes.Buffer
		if err := tpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("render %s: %w", rec.Name, err)
		}

		// distinct type names can share a snake_case form ("ABC" vs
		// "Abc"); suffix later ones instead of overwriting
		fname := FileName(rec.Name)
		seen[fname]++
		if n := seen[fname]; n > 1 {
			fname = strings.TrimSuffix(fname, ".gen.go") + "_" + strconv.Itoa(n) + ".gen.go"
		}

		path := filepath.Join(opt.OutDir, fname)
		wrote, err := common.WriteFile(path, buf.Bytes(), common.WriteOptions{Check: opt.Check})
		if err != nil {
			return nil, err
		}
		if wrote {
			files = append(files, path)
		}
	}
	return files, nil
}
