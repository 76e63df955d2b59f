package enumset

import (
	"fmt"
	"sort"
	"sync"
)

// registry is the package-level index of published sets, keyed by the
// normalized set name.
var (
	registry   = make(map[string]*Set)
	registryMu sync.RWMutex
)

// Register publishes a set in the package registry under its normalized
// name, sealing it in the process. Registration fails with ErrDuplicateSet
// if another set already claims the same normalized name.
//
// The registry exists for code that discovers enumeration sets dynamically,
// such as the decl loader; statically declared sets do not need to be
// registered to be used.
func Register(s *Set) error {
	key := Normalize(s.name)
	if key == "" {
		return &Error{
			Op:   "Register",
			Kind: KindValidation,
			Err:  fmt.Errorf("%w: set name %q normalizes to an empty key", ErrInvalidDefinition, s.name),
		}
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if existing, taken := registry[key]; taken {
		return &Error{
			Op:   "Register",
			Kind: KindDuplicate,
			Err:  fmt.Errorf("%w: %q conflicts with registered set %q", ErrDuplicateSet, s.name, existing.name),
		}
	}

	s.Seal()
	registry[key] = s
	return nil
}

// Get returns the registered set matching name. The lookup is case- and
// separator-insensitive through Normalize, like variant resolution.
func Get(name string) (*Set, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	s, ok := registry[Normalize(name)]
	return s, ok
}

// Sets returns the names of all registered sets, sorted.
func Sets() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]string, 0, len(registry))
	for _, s := range registry {
		out = append(out, s.name)
	}
	sort.Strings(out)
	return out
}

// Clear resets the package registry. This is primarily useful for testing.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry = make(map[string]*Set)
}
