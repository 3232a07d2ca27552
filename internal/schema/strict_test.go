package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/schema"
)

func TestStrict_ObjectGetsAllRequiredAndNoAdditional(t *testing.T) {
	in := map[string]any{
		"type":     "object",
		"required": []any{"b"},
		"properties": map[string]any{
			"c": map[string]any{"type": "string"},
			"a": map[string]any{"type": "integer"},
			"b": map[string]any{"type": "string"},
		},
	}

	out := schema.Strict(in)

	assert.Equal(t, false, out["additionalProperties"])
	assert.Equal(t, []any{"b", "a", "c"}, out["required"])
	// input untouched
	assert.Equal(t, []any{"b"}, in["required"])
	_, has := in["additionalProperties"]
	assert.False(t, has)
}

func TestStrict_RefNodesLoseAnnotations(t *testing.T) {
	in := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"visit": map[string]any{
				"$ref":        "#/$defs/Visit",
				"description": "Vizitas",
				"title":       "Visit",
				"default":     nil,
			},
		},
		"$defs": map[string]any{
			"Visit": map[string]any{
				"type":       "object",
				"properties": map[string]any{"date": map[string]any{"type": "string"}},
			},
		},
	}

	out := schema.Strict(in)

	visit := out["properties"].(map[string]any)["visit"].(map[string]any)
	assert.Equal(t, map[string]any{"$ref": "#/$defs/Visit"}, visit)

	def := out["$defs"].(map[string]any)["Visit"].(map[string]any)
	assert.Equal(t, false, def["additionalProperties"])
	assert.Equal(t, []any{"date"}, def["required"])
}

func TestStrict_RecursesIntoArraysAndAnyOf(t *testing.T) {
	in := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"items": map[string]any{
				"anyOf": []any{
					map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":       "object",
							"properties": map[string]any{"x": map[string]any{"type": "string"}},
						},
					},
					map[string]any{"type": "null"},
				},
			},
			"nullable": map[string]any{
				"type":       []any{"object", "null"},
				"properties": map[string]any{"y": map[string]any{"type": "string"}},
			},
		},
	}

	out := schema.Strict(in)

	props := out["properties"].(map[string]any)
	branch := props["items"].(map[string]any)["anyOf"].([]any)[0].(map[string]any)
	item := branch["items"].(map[string]any)
	assert.Equal(t, false, item["additionalProperties"])
	assert.Equal(t, []any{"x"}, item["required"])

	nullable := props["nullable"].(map[string]any)
	assert.Equal(t, false, nullable["additionalProperties"])
	assert.Equal(t, []any{"y"}, nullable["required"])
}

func TestStrict_ObjectWithoutPropertiesGetsNoRequired(t *testing.T) {
	out := schema.Strict(map[string]any{"type": "object"})

	assert.Equal(t, false, out["additionalProperties"])
	_, has := out["required"]
	assert.False(t, has)
}

func TestStrict_NilInput(t *testing.T) {
	assert.Nil(t, schema.Strict(nil))
}

func TestStrict_IsIdempotentOnDocumentSchema(t *testing.T) {
	doc, err := schema.Document()
	require.NoError(t, err)

	once := schema.Strict(doc)
	twice := schema.Strict(once)

	assert.Equal(t, once, twice)
}

func TestStrict_DocumentSchemaIsFullyStrict(t *testing.T) {
	strict, err := schema.StrictDocument()
	require.NoError(t, err)

	var walk func(path string, node map[string]any)
	walk = func(path string, node map[string]any) {
		if _, ok := node["$ref"]; ok {
			assert.Len(t, node, 1, "%s: $ref node carries extra keywords", path)
			return
		}
		if props, ok := node["properties"].(map[string]any); ok {
			assert.Equal(t, false, node["additionalProperties"], "%s: additionalProperties", path)
			required := map[string]bool{}
			for _, r := range node["required"].([]any) {
				required[r.(string)] = true
			}
			for name, child := range props {
				assert.True(t, required[name], "%s: %s not required", path, name)
				walk(path+"."+name, child.(map[string]any))
			}
		}
		if items, ok := node["items"].(map[string]any); ok {
			walk(path+"[]", items)
		}
		if branches, ok := node["anyOf"].([]any); ok {
			for _, b := range branches {
				walk(path+"|", b.(map[string]any))
			}
		}
	}

	walk("#", strict)
	for name, def := range strict["$defs"].(map[string]any) {
		walk("#/$defs/"+name, def.(map[string]any))
	}
}
