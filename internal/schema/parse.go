package schema

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrEmptyOutput is returned by ParseJSON for blank model output.
var ErrEmptyOutput = errors.New("empty model output")

// ParseJSON parses JSON from model output, recovering from markdown code
// fences and surrounding prose.
func ParseJSON(content string) (json.RawMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyOutput
	}

	candidates := []string{content}
	if stripped := stripCodeFences(content); stripped != "" && stripped != content {
		candidates = append(candidates, stripped)
	}
	if extracted := extractObject(content); extracted != "" && extracted != content {
		candidates = append(candidates, extracted)
	}

	var firstErr error
	for _, candidate := range candidates {
		if !json.Valid([]byte(candidate)) {
			if firstErr == nil {
				var probe any
				firstErr = json.Unmarshal([]byte(candidate), &probe)
			}
			continue
		}
		return json.RawMessage(candidate), nil
	}
	return nil, firstErr
}

// Prepare decodes the parsed output into a generic tree ready for validation:
// the root must be an object, missing "document" and "references" get their
// empty defaults, null-valued object members are dropped and strings are
// trimmed.
func Prepare(raw json.RawMessage) (map[string]any, error) {
	var root any
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, err
	}
	obj, ok := root.(map[string]any)
	if !ok {
		return nil, errors.New("top-level JSON value is not an object")
	}
	if v, ok := obj["document"]; !ok || v == nil {
		obj["document"] = map[string]any{}
	}
	if v, ok := obj["references"]; !ok || v == nil {
		obj["references"] = []any{}
	}
	cleaned, _ := clean(obj).(map[string]any)
	return cleaned, nil
}

func clean(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			if val == nil {
				delete(t, k)
				continue
			}
			t[k] = clean(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = clean(val)
		}
		return t
	case string:
		return strings.TrimSpace(t)
	default:
		return t
	}
}

func stripCodeFences(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return ""
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 {
		return ""
	}
	lines = lines[1:]
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func extractObject(content string) string {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end < start {
		return ""
	}
	return strings.TrimSpace(content[start : end+1])
}
