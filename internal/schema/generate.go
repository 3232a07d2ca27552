// Package schema owns the JSON Schema of the extraction result: generation
// from the domain types, the strict variant for structured outputs, output
// validation and lenient JSON recovery.
package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sync"

	"github.com/invopop/jsonschema"

	"github.com/gabrieliussalyga/LLMtranscriptionNERproject/internal/domain"
)

var (
	documentOnce   sync.Once
	documentSchema map[string]any
	documentErr    error

	strictOnce   sync.Once
	strictSchema map[string]any
)

// Document returns the canonical schema of domain.ExtractionResult. Optional
// properties are nullable. The returned tree is a fresh copy on every call.
func Document() (map[string]any, error) {
	documentOnce.Do(func() {
		documentSchema, documentErr = generate(&domain.ExtractionResult{})
	})
	if documentErr != nil {
		return nil, documentErr
	}
	out, _ := deepCopy(documentSchema).(map[string]any)
	return out, nil
}

// StrictDocument returns Strict(Document()).
func StrictDocument() (map[string]any, error) {
	doc, err := Document()
	if err != nil {
		return nil, err
	}
	strictOnce.Do(func() {
		strictSchema = Strict(doc)
	})
	out, _ := deepCopy(strictSchema).(map[string]any)
	return out, nil
}

// DocumentJSON returns the canonical schema serialized as JSON.
func DocumentJSON() ([]byte, error) {
	doc, err := Document()
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

func newReflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		Anonymous:      true,
		ExpandedStruct: true,
		Mapper:         mapType,
	}
}

var referenceValueType = reflect.TypeOf(domain.ReferenceValue{})

func mapType(t reflect.Type) *jsonschema.Schema {
	if t == referenceValueType {
		return &jsonschema.Schema{AnyOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "integer"},
			{Type: "number"},
			{Type: "boolean"},
		}}
	}
	return nil
}

func generate(v any) (map[string]any, error) {
	reflected := newReflector().Reflect(v)
	raw, err := json.Marshal(reflected)
	if err != nil {
		return nil, fmt.Errorf("marshaling reflected schema: %w", err)
	}
	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("decoding reflected schema: %w", err)
	}
	delete(tree, "$schema")
	delete(tree, "$id")

	markOptionalNullable(tree)
	if defs, ok := tree["$defs"].(map[string]any); ok {
		for _, def := range defs {
			if node, ok := def.(map[string]any); ok {
				markOptionalNullable(node)
			}
		}
	}
	return tree, nil
}

// markOptionalNullable wraps every property of node that is not listed in
// "required" as anyOf [X, null], moving its description onto the wrapper.
func markOptionalNullable(node map[string]any) {
	props, ok := node["properties"].(map[string]any)
	if !ok {
		return
	}
	required := map[string]struct{}{}
	if list, ok := node["required"].([]any); ok {
		for _, v := range list {
			if s, ok := v.(string); ok {
				required[s] = struct{}{}
			}
		}
	}
	for name, raw := range props {
		prop, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if _, req := required[name]; req {
			continue
		}
		wrapper := map[string]any{}
		for _, key := range []string{"description", "title"} {
			if v, ok := prop[key]; ok {
				wrapper[key] = v
				delete(prop, key)
			}
		}
		wrapper["anyOf"] = []any{prop, map[string]any{"type": "null"}}
		props[name] = wrapper
	}
}
