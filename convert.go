package enumset

import "fmt"

// The conversion helpers walk heterogeneous containers, replacing string
// keys, values, or elements that resolve in the set with the resolved
// singleton variant, and leaving everything else untouched. They never
// mutate their input; a new container is always returned. The inverse
// helpers replace variants of the set with their canonical names.
//
// Mappings are map[any]any or map[string]any, sequences are []any, and
// sets are map[any]struct{}.

// ConvertKeys returns a copy of the mapping with every string key that
// resolves in the set replaced by the resolved variant. Non-string keys
// and unmatched strings keep their original form. Values are untouched.
func (s *Set) ConvertKeys(m map[any]any) map[any]any {
	out := make(map[any]any, len(m))
	for k, val := range m {
		if str, ok := k.(string); ok {
			if v := s.Lookup(str); v != nil {
				out[v] = val
				continue
			}
		}
		out[k] = val
	}
	return out
}

// ConvertKeysToString is the inverse of ConvertKeys: every key that is a
// variant of this set becomes its canonical name. Other keys, including
// variants of other sets, are untouched.
func (s *Set) ConvertKeysToString(m map[any]any) map[any]any {
	out := make(map[any]any, len(m))
	for k, val := range m {
		if v, ok := k.(*Variant); ok && v.set == s {
			out[v.name] = val
			continue
		}
		out[k] = val
	}
	return out
}

// ConvertMapValues returns a copy of the mapping with every string value
// that resolves in the set replaced by the resolved variant. Keys are
// untouched.
func (s *Set) ConvertMapValues(m map[any]any) map[any]any {
	out := make(map[any]any, len(m))
	for k, val := range m {
		out[k] = s.convertElement(val)
	}
	return out
}

// ConvertValuesToString is the inverse of ConvertMapValues: every value
// that is a variant of this set becomes its canonical name.
func (s *Set) ConvertValuesToString(m map[any]any) map[any]any {
	out := make(map[any]any, len(m))
	for k, val := range m {
		if v, ok := val.(*Variant); ok && v.set == s {
			out[k] = v.name
			continue
		}
		out[k] = val
	}
	return out
}

// ConvertSlice returns a copy of the sequence with every string element
// that resolves in the set replaced by the resolved variant.
func (s *Set) ConvertSlice(in []any) []any {
	out := make([]any, len(in))
	for i, e := range in {
		out[i] = s.convertElement(e)
	}
	return out
}

// ConvertSet returns a copy of the set container with every string member
// that resolves in the set replaced by the resolved variant.
func (s *Set) ConvertSet(in map[any]struct{}) map[any]struct{} {
	out := make(map[any]struct{}, len(in))
	for e := range in {
		out[s.convertElement(e)] = struct{}{}
	}
	return out
}

// ConvertValues dispatches on the runtime container kind, applying the
// resolve-or-keep rule to the container's values or elements. Supported
// kinds are mappings (map[any]any, map[string]any), sequences ([]any), and
// sets (map[any]struct{}). For any other kind the input is returned
// unchanged, or, when strict is true, an error wrapping
// ErrUnsupportedContainer is returned.
func (s *Set) ConvertValues(container any, strict bool) (any, error) {
	switch c := container.(type) {
	case map[any]any:
		return s.ConvertMapValues(c), nil
	case map[string]any:
		out := make(map[string]any, len(c))
		for k, val := range c {
			out[k] = s.convertElement(val)
		}
		return out, nil
	case []any:
		return s.ConvertSlice(c), nil
	case map[any]struct{}:
		return s.ConvertSet(c), nil
	}

	if strict {
		return nil, &Error{
			Op:   "Set.ConvertValues",
			Kind: KindUnsupported,
			Err:  fmt.Errorf("%w: %T", ErrUnsupportedContainer, container),
		}
	}
	return container, nil
}

func (s *Set) convertElement(e any) any {
	if str, ok := e.(string); ok {
		if v := s.Lookup(str); v != nil {
			return v
		}
	}
	return e
}
