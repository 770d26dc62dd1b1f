package schema_test

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stasinato/dto-generator/internal/schema"
)

func decodeExample(t *testing.T, src string) any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(src))
	dec.UseNumber()
	var v any
	require.NoError(t, dec.Decode(&v))
	return v
}

func TestInferObjectFromExample(t *testing.T) {
	node := schema.Infer(decodeExample(t, `{"count": 3, "tags": []}`))

	require.Equal(t, schema.KindObject, node.Kind)
	require.Len(t, node.Properties, 2)

	count := node.Prop("count")
	require.NotNil(t, count)
	assert.Equal(t, schema.KindPrimitive, count.Kind)
	assert.Equal(t, "integer", count.Primitive)

	tags := node.Prop("tags")
	require.NotNil(t, tags)
	assert.Equal(t, schema.KindArray, tags.Kind)
	assert.Equal(t, schema.KindUnknown, tags.Items.Kind)

	assert.True(t, node.Required["count"])
	assert.True(t, node.Required["tags"])
}

func TestInferScalars(t *testing.T) {
	cases := []struct {
		src       string
		primitive string
	}{
		{`3`, "integer"},
		{`-17`, "integer"},
		{`3.5`, "number"},
		{`1e3`, "number"},
		{`true`, "boolean"},
		{`false`, "boolean"},
		{`"hello"`, "string"},
	}
	for _, tc := range cases {
		node := schema.Infer(decodeExample(t, tc.src))
		assert.Equal(t, schema.KindPrimitive, node.Kind, tc.src)
		assert.Equal(t, tc.primitive, node.Primitive, tc.src)
	}
}

func TestInferGoValues(t *testing.T) {
	// YAML decoding hands over native Go ints and floats
	assert.Equal(t, "integer", schema.Infer(42).Primitive)
	assert.Equal(t, "number", schema.Infer(4.2).Primitive)
	assert.Equal(t, "boolean", schema.Infer(true).Primitive)
}

func TestInferList(t *testing.T) {
	node := schema.Infer(decodeExample(t, `[{"id": 1}, {"id": 2}]`))
	require.Equal(t, schema.KindArray, node.Kind)
	require.Equal(t, schema.KindObject, node.Items.Kind)
	assert.Equal(t, "integer", node.Items.Prop("id").Primitive)
}

func TestInferNullValueIsOptional(t *testing.T) {
	node := schema.Infer(decodeExample(t, `{"name": "x", "nick": null}`))
	assert.True(t, node.Required["name"])
	assert.False(t, node.Required["nick"])
	// null carries no signal; defaults to string
	assert.Equal(t, "string", node.Prop("nick").Primitive)
}

func TestInferNested(t *testing.T) {
	node := schema.Infer(decodeExample(t, `{"user": {"name": "a", "age": 7}}`))
	user := node.Prop("user")
	require.Equal(t, schema.KindObject, user.Kind)
	assert.Equal(t, "string", user.Prop("name").Primitive)
	assert.Equal(t, "integer", user.Prop("age").Primitive)
}
