package enumset

import "encoding/json"

// CanonicalizeJSON rewrites a JSON document so that every string value
// which resolves in the set is replaced by the variant's canonical name.
// Object keys and non-matching strings are left as they are; objects and
// arrays are walked recursively.
//
// The function is fail-safe: if the input cannot be parsed or the result
// cannot be serialized, the original input is returned unchanged rather
// than an error. This keeps canonicalization safe to apply to payloads of
// unknown shape.
func (s *Set) CanonicalizeJSON(input string) string {
	var data any
	if err := json.Unmarshal([]byte(input), &data); err != nil {
		return input
	}

	out, err := json.Marshal(s.canonicalizeJSONValue(data))
	if err != nil {
		return input
	}
	return string(out)
}

func (s *Set) canonicalizeJSONValue(value any) any {
	switch v := value.(type) {
	case string:
		if variant := s.Lookup(v); variant != nil {
			return variant.name
		}
		return v
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = s.canonicalizeJSONValue(e)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = s.canonicalizeJSONValue(e)
		}
		return out
	}
	return value
}
