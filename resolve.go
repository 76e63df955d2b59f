package enumset

import "fmt"

// Resolve performs a strict resolution of value against the set.
//
// A *Variant belonging to this set is returned unchanged without touching
// the table (identity short-circuit). Any other non-string input, including
// nil and variants of other sets, fails with ErrTypeMismatch. String input
// is normalized and looked up; a miss fails with ErrNotFound carrying the
// attempted input and the set's full variant list for diagnostics.
//
// Resolution is case- and separator-insensitive only through Normalize; no
// fuzzy or edit-distance matching is performed. The first call seals the
// set.
func (s *Set) Resolve(value any) (*Variant, error) {
	if v := s.Lookup(value); v != nil {
		return v, nil
	}

	if _, ok := value.(string); !ok {
		return nil, &Error{
			Op:   "Set.Resolve",
			Kind: KindTypeMismatch,
			Err:  fmt.Errorf("%w: want string or variant of %q, got %T", ErrTypeMismatch, s.name, value),
		}
	}

	names := s.names()
	return nil, &Error{
		Op:   "Set.Resolve",
		Kind: KindNotFound,
		Err:  fmt.Errorf("%w: %q in set %q; available values are %v", ErrNotFound, value, s.name, names),
		Context: map[string]any{
			"set":      s.name,
			"input":    value,
			"variants": names,
		},
	}
}

// Lookup performs a non-strict resolution: it returns the matching variant,
// or nil when the input is not a string, is a variant of another set, or
// matches nothing. All miss conditions collapse into the single nil result,
// which is what the container conversion helpers rely on for their
// resolve-or-keep rule.
func (s *Set) Lookup(value any) *Variant {
	if v, ok := value.(*Variant); ok {
		if v != nil && v.set == s {
			return v
		}
		return nil
	}

	str, ok := value.(string)
	if !ok {
		return nil
	}

	s.sealed.Store(true)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table[Normalize(str)]
}

// MatchesAny reports whether value resolves to any variant of the set.
func (s *Set) MatchesAny(value any) bool {
	return s.Lookup(value) != nil
}

// MatchesNone reports whether value resolves to no variant of the set.
func (s *Set) MatchesNone(value any) bool {
	return !s.MatchesAny(value)
}

// DecodeFunc returns a strict string decoder suitable for registration
// with serialization frameworks that accept a value-decoding callback.
func (s *Set) DecodeFunc() func(string) (*Variant, error) {
	return func(value string) (*Variant, error) {
		return s.Resolve(value)
	}
}
