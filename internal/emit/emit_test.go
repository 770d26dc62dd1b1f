package emit_test

import (
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stasinato/dto-generator/internal/emit"
	"github.com/stasinato/dto-generator/internal/ir"
)

func TestDispatchJSONIR(t *testing.T) {
	records := []ir.RecordDef{{
		Name:      "User",
		Signature: `obj{id!:prim:integer}`,
		Fields:    []ir.Field{{Name: "id", Type: ir.Primitive(ir.PrimInteger), Required: true}},
	}}

	dir := t.TempDir()
	files, err := emit.Dispatch(records, emit.Options{OutDir: dir, Targets: []string{"json-ir"}})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "ir.gen.json")}, files)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)

	var decoded []ir.RecordDef
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, records, decoded)
}

func TestDispatchUnknownTarget(t *testing.T) {
	records := []ir.RecordDef{{Name: "X"}}
	_, err := emit.Dispatch(records, emit.Options{OutDir: t.TempDir(), Targets: []string{"rust"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown target")
}

func TestDispatchRequiresRecords(t *testing.T) {
	_, err := emit.Dispatch(nil, emit.Options{OutDir: t.TempDir()})
	require.Error(t, err)
}
