package golang_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stasinato/dto-generator/internal/emit/golang"
	"github.com/stasinato/dto-generator/internal/ir"
)

func ExampleFileName() {
	fmt.Println(golang.FileName("User"))
	fmt.Println(golang.FileName("UserProfile"))
	fmt.Println(golang.FileName("UserDTO"))

	// Output:
	// user.gen.go
	// user_profile.gen.go
	// user_dto.gen.go
}

func TestEmitRendersRecords(t *testing.T) {
	records := []ir.RecordDef{
		{
			Name: "User",
			Fields: []ir.Field{
				{Name: "id", Type: ir.Primitive(ir.PrimInteger), Required: true},
				{Name: "userName", WireKey: "user_name", Type: ir.Primitive(ir.PrimString)},
				{Name: "createdAt", WireKey: "created_at", Type: ir.Primitive(ir.PrimDateTime), Required: true},
				{Name: "address", Type: ir.Record("Address"), Required: true},
				{Name: "tags", Type: ir.List(ir.Primitive(ir.PrimString))},
				{Name: "meta", Type: ir.Map()},
				{Name: "extra", Type: ir.Unknown()},
			},
		},
		{
			Name: "Address",
			Fields: []ir.Field{
				{Name: "city", Type: ir.Primitive(ir.PrimString)},
			},
		},
	}

	dir := t.TempDir()
	files, err := golang.Emit(records, golang.EmitOptions{OutDir: dir, Package: "models"})
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "user.gen.go"), files[0])

	src, err := os.ReadFile(files[0])
	require.NoError(t, err)
	out := string(src)

	assert.Contains(t, out, "package models")
	assert.Contains(t, out, `import "time"`)
	assert.Contains(t, out, "type User struct {")
	assert.Contains(t, out, "Id int64 `json:\"id\"`")
	assert.Contains(t, out, "UserName *string `json:\"user_name,omitempty\"`")
	assert.Contains(t, out, "CreatedAt time.Time `json:\"created_at\"`")
	assert.Contains(t, out, "Address Address `json:\"address\"`")
	assert.Contains(t, out, "Tags []string `json:\"tags,omitempty\"`")
	assert.Contains(t, out, "Meta map[string]any `json:\"meta,omitempty\"`")
	assert.Contains(t, out, "Extra any `json:\"extra,omitempty\"`")

	addr, err := os.ReadFile(files[1])
	require.NoError(t, err)
	assert.Contains(t, string(addr), "type Address struct {")
	assert.NotContains(t, string(addr), "time")
}

func TestEmitSanitizesFieldNames(t *testing.T) {
	records := []ir.RecordDef{{
		Name: "Header",
		Fields: []ir.Field{
			{Name: "content-type", Type: ir.Primitive(ir.PrimString), Required: true},
			{Name: "x-rate-limit", Type: ir.Primitive(ir.PrimInteger)},
			{Name: "123", Type: ir.Primitive(ir.PrimString)},
		},
	}}

	dir := t.TempDir()
	files, err := golang.Emit(records, golang.EmitOptions{OutDir: dir})
	require.NoError(t, err)
	require.Len(t, files, 1)

	src, err := os.ReadFile(files[0])
	require.NoError(t, err)
	out := string(src)

	// wire keys keep the raw name; Go field names must be valid idents
	assert.Contains(t, out, "ContentType string `json:\"content-type\"`")
	assert.Contains(t, out, "XRateLimit *int64 `json:\"x-rate-limit,omitempty\"`")
	assert.Contains(t, out, "Field *string `json:\"123,omitempty\"`")
	assert.NotContains(t, out, "Content-type")
}

func TestEmitDisambiguatesFileNameCollisions(t *testing.T) {
	records := []ir.RecordDef{
		{Name: "ABC", Fields: []ir.Field{{Name: "a", Type: ir.Primitive(ir.PrimString), Required: true}}},
		{Name: "Abc", Fields: []ir.Field{{Name: "b", Type: ir.Primitive(ir.PrimInteger), Required: true}}},
	}

	dir := t.TempDir()
	files, err := golang.Emit(records, golang.EmitOptions{OutDir: dir})
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "abc.gen.go"),
		filepath.Join(dir, "abc_2.gen.go"),
	}, files)

	first, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(first), "type ABC struct {")

	second, err := os.ReadFile(files[1])
	require.NoError(t, err)
	assert.Contains(t, string(second), "type Abc struct {")
}

func TestEmitIsStable(t *testing.T) {
	records := []ir.RecordDef{{
		Name:   "Ping",
		Fields: []ir.Field{{Name: "ok", Type: ir.Primitive(ir.PrimBoolean), Required: true}},
	}}

	dir := t.TempDir()
	first, err := golang.Emit(records, golang.EmitOptions{OutDir: dir})
	require.NoError(t, err)
	require.Len(t, first, 1)

	// unchanged output is not rewritten, and check mode passes
	second, err := golang.Emit(records, golang.EmitOptions{OutDir: dir})
	require.NoError(t, err)
	assert.Empty(t, second)

	_, err = golang.Emit(records, golang.EmitOptions{OutDir: dir, Check: true})
	assert.NoError(t, err)
}
