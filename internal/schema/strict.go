package schema

import "sort"

// Strict returns a copy of tree rewritten for strict structured outputs:
//   - object nodes get "additionalProperties": false and every property
//     name listed in "required" (existing order kept, missing names appended
//     in sorted order);
//   - "$ref" nodes lose description, title and default and are not descended;
//   - properties, $defs, array items and anyOf branches are rewritten
//     recursively.
//
// The input is never modified. Strict(Strict(s)) equals Strict(s).
func Strict(tree map[string]any) map[string]any {
	out, _ := deepCopy(tree).(map[string]any)
	if out == nil {
		return nil
	}
	makeStrict(out)
	return out
}

func makeStrict(node map[string]any) {
	if _, ok := node["$ref"]; ok {
		delete(node, "description")
		delete(node, "title")
		delete(node, "default")
		return
	}

	switch primaryType(node["type"]) {
	case "object":
		node["additionalProperties"] = false
		props, _ := node["properties"].(map[string]any)
		if len(props) > 0 {
			node["required"] = withAllRequired(node["required"], props)
		}
		for _, name := range sortedKeys(props) {
			if child, ok := props[name].(map[string]any); ok {
				makeStrict(child)
			}
		}
		if defs, ok := node["$defs"].(map[string]any); ok {
			for _, name := range sortedKeys(defs) {
				if child, ok := defs[name].(map[string]any); ok {
					makeStrict(child)
				}
			}
		}
	case "array":
		if items, ok := node["items"].(map[string]any); ok {
			makeStrict(items)
		}
	default:
		if branches, ok := node["anyOf"].([]any); ok {
			for _, b := range branches {
				if child, ok := b.(map[string]any); ok {
					makeStrict(child)
				}
			}
		}
	}
}

// primaryType returns the first non-null type of a "type" keyword, which is
// either a string or a list of strings.
func primaryType(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && s != "null" {
				return s
			}
		}
	case []string:
		for _, s := range t {
			if s != "null" {
				return s
			}
		}
	}
	return ""
}

func withAllRequired(existing any, props map[string]any) []any {
	required := make([]any, 0, len(props))
	seen := make(map[string]struct{}, len(props))
	switch r := existing.(type) {
	case []any:
		for _, v := range r {
			if s, ok := v.(string); ok {
				if _, dup := seen[s]; dup {
					continue
				}
				seen[s] = struct{}{}
			}
			required = append(required, v)
		}
	case []string:
		for _, s := range r {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			required = append(required, s)
		}
	}
	for _, name := range sortedKeys(props) {
		if _, ok := seen[name]; !ok {
			required = append(required, name)
		}
	}
	return required
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func deepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = deepCopy(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = deepCopy(val)
		}
		return out
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	default:
		return t
	}
}
