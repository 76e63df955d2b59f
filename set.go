package enumset

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
)

// setID distinguishes sets that happen to share a name; it feeds
// Variant.Hash.
var setID atomic.Uint64

// Set is a closed enumeration type: an ordered collection of singleton
// variants plus the resolution table that maps normalized strings to them.
//
// A set starts open: Define adds variants, maintaining the table
// incrementally with a running uniqueness check over every key seen so far
// (canonical names, alias-list keys, and aliases alike). The first
// resolution, or an explicit Seal, closes the set; the table is immutable
// from then on and is never rebuilt or invalidated.
//
// Define and the resolution methods are safe for concurrent use. The table
// is guarded by a RWMutex: definitions take the write lock, resolutions the
// read lock.
type Set struct {
	name string
	id   uint64

	mu       sync.RWMutex
	variants []*Variant
	table    map[string]*Variant
	sealed   atomic.Bool
}

// New creates an empty, open enumeration set with the given name. The name
// identifies the set in error messages, hashes, and the package registry;
// it is not itself a lookup key for variants.
func New(name string) *Set {
	return &Set{
		name:  name,
		id:    setID.Add(1),
		table: make(map[string]*Variant),
	}
}

// Name returns the set's name.
func (s *Set) Name() string {
	return s.name
}

// Len returns the number of defined variants.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.variants)
}

// Variants returns the set's variants in declaration order.
func (s *Set) Variants() []*Variant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Variant, len(s.variants))
	copy(out, s.variants)
	return out
}

// Sealed reports whether the set has been closed to further definitions.
func (s *Set) Sealed() bool {
	return s.sealed.Load()
}

// Seal closes the set to further definitions. Sealing is idempotent and
// also happens implicitly on the first resolution.
func (s *Set) Seal() {
	s.sealed.Store(true)
}

// Define adds a variant with the given canonical name and optional aliases.
// Variants are defined in declaration order and become process-wide
// singletons owned by the set.
//
// The resolution table is extended under a running uniqueness check: the
// normalized name, the normalized alias-list key, and each normalized alias
// must be distinct from every key inserted by this and all earlier
// definitions. A collision returns an error wrapping ErrDefinitionCollision
// that names both conflicting variants, and leaves the set exactly as it
// was: no partial keys from the failed definition remain. An alias that
// normalizes identically to its own variant's name is redundant and is
// skipped rather than rejected.
//
// Define fails with ErrSetSealed once the set has served a resolution or
// has been sealed explicitly.
func (s *Set) Define(name string, aliases ...string) (*Variant, error) {
	if s.sealed.Load() {
		return nil, &Error{
			Op:   "Set.Define",
			Kind: KindSealed,
			Err:  fmt.Errorf("%w: cannot define %q on sealed set %q", ErrSetSealed, name, s.name),
		}
	}
	if name == "" {
		return nil, &Error{
			Op:   "Set.Define",
			Kind: KindValidation,
			Err:  fmt.Errorf("%w: variant name must not be empty", ErrInvalidDefinition),
		}
	}
	for _, a := range aliases {
		if a == "" {
			return nil, &Error{
				Op:   "Set.Define",
				Kind: KindValidation,
				Err:  fmt.Errorf("%w: variant %q declares an empty alias", ErrInvalidDefinition, name),
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	v := &Variant{
		set:     s,
		name:    name,
		aliases: append([]string(nil), aliases...),
		index:   len(s.variants),
	}

	// Stage every key first so a collision anywhere in the definition
	// leaves the table untouched.
	staged := make(map[string]struct{})
	nameKey := Normalize(name)
	if err := s.checkKey(nameKey, v, staged); err != nil {
		return nil, err
	}
	staged[nameKey] = struct{}{}

	if len(aliases) > 0 {
		// The literal alias-list form is a secondary round-trip key; it is
		// an artifact of alias storage, not a documented lookup surface.
		listKey := Normalize(aliasListKey(aliases))
		if err := s.checkKey(listKey, v, staged); err != nil {
			return nil, err
		}
		staged[listKey] = struct{}{}

		for _, a := range aliases {
			aliasKey := Normalize(a)
			if aliasKey == nameKey {
				continue
			}
			if err := s.checkKey(aliasKey, v, staged); err != nil {
				return nil, err
			}
			staged[aliasKey] = struct{}{}
		}
	}

	for k := range staged {
		s.table[k] = v
	}
	s.variants = append(s.variants, v)
	return v, nil
}

// MustDefine is like Define but panics on error. It is intended for
// package-level enumeration declarations, where a definition defect is a
// bug in the declaring code.
func (s *Set) MustDefine(name string, aliases ...string) *Variant {
	v, err := s.Define(name, aliases...)
	if err != nil {
		panic(err)
	}
	return v
}

// checkKey rejects a candidate table key that is already claimed, either
// by an earlier variant or by an earlier key of the definition in
// progress. Caller holds the write lock.
func (s *Set) checkKey(key string, v *Variant, staged map[string]struct{}) error {
	existing, taken := s.table[key]
	if !taken {
		if _, dup := staged[key]; !dup {
			return nil
		}
		existing = v
	}
	return &Error{
		Op:   "Set.Define",
		Kind: KindCollision,
		Err: fmt.Errorf("%w: cannot register %q in set %q; %q already resolves the normalized key %q",
			ErrDefinitionCollision, v.name, s.name, existing.name, key),
		Context: map[string]any{
			"set":      s.name,
			"variant":  v.name,
			"existing": existing.name,
			"key":      key,
		},
	}
}

// aliasListKey renders the literal form of an alias list, e.g.
// alias:['csv', 'comma separated']. Its normalized form is inserted as a
// secondary key so the rendered list round-trips through resolution.
func aliasListKey(aliases []string) string {
	var b strings.Builder
	b.WriteString("alias:[")
	for i, a := range aliases {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('\'')
		b.WriteString(a)
		b.WriteByte('\'')
	}
	b.WriteByte(']')
	return b.String()
}

// names returns the canonical variant names in declaration order. Caller
// must not hold the lock.
func (s *Set) names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.variants))
	for i, v := range s.variants {
		out[i] = v.name
	}
	return out
}
