package enumset

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Variant is one named member of a closed enumeration Set.
//
// Variants are process-wide singletons: exactly one *Variant exists per
// (set, name) pair, created by Set.Define and immutable thereafter.
// Equality between variants is pointer identity, never value comparison;
// normalization is lossy, so two distinct variants could otherwise compare
// equal through string coincidence. Alias strings are not part of a
// variant's identity, they exist only to feed the resolution table.
type Variant struct {
	set     *Set
	name    string
	aliases []string
	index   int
}

// Name returns the canonical identifier of the variant. The name is the
// variant's only string form; aliases are never produced as output.
func (v *Variant) Name() string {
	return v.name
}

// Aliases returns a copy of the variant's declared alias list, in
// declaration order. The list may be empty.
func (v *Variant) Aliases() []string {
	if len(v.aliases) == 0 {
		return nil
	}
	out := make([]string, len(v.aliases))
	copy(out, v.aliases)
	return out
}

// Set returns the enumeration set that owns this variant.
func (v *Variant) Set() *Set {
	return v.set
}

// Index returns the variant's zero-based declaration position within its set.
func (v *Variant) Index() int {
	return v.index
}

// String implements fmt.Stringer, returning the canonical name.
func (v *Variant) String() string {
	return v.name
}

// Hash returns a stable in-process hash derived from the owning set's
// identity and the variant's name. Variants with identical names that
// belong to different sets never hash equal, even if the sets themselves
// share a name.
func (v *Variant) Hash() uint64 {
	d := xxhash.New()
	fmt.Fprintf(d, "%d:%s.%s", v.set.id, v.set.name, v.name)
	return d.Sum64()
}

// Matches reports whether value resolves to this exact variant. The check
// is identity-based: it is true only when non-strict resolution returns
// this same singleton.
func (v *Variant) Matches(value any) bool {
	return v.set.Lookup(value) == v
}

// MarshalText implements encoding.TextMarshaler, emitting the canonical name.
func (v *Variant) MarshalText() ([]byte, error) {
	return []byte(v.name), nil
}

// MarshalJSON implements json.Marshaler, emitting the canonical name as a
// JSON string.
func (v *Variant) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.name)
}

// MarshalYAML implements yaml.Marshaler, emitting the canonical name.
func (v *Variant) MarshalYAML() (any, error) {
	return v.name, nil
}
