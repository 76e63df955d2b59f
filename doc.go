// Package enumset is a symbol-resolution engine: it resolves arbitrary
// strings to the members of closed, named enumeration sets using
// case-insensitive, separator-insensitive matching, with optional alternate
// spellings ("aliases") per member.
//
// # Core Concepts
//
// The package is organized around three ideas:
//
//   - Variants: process-wide singleton members of a set, compared by
//     identity only
//   - Sets: enumeration types owning their variants and an immutable
//     resolution table from normalized strings to variants
//   - Normalization: the lossy canonicalization (lowercasing ASCII letters,
//     deleting separators) that makes resolution insensitive to case and
//     punctuation
//
// # Usage
//
// Declare a set and its variants, then resolve:
//
//	var (
//	    DataType = enumset.New("data_type")
//	    Int      = DataType.MustDefine("INT", "integer", "int32")
//	    Float    = DataType.MustDefine("FLOAT", "float32", "double")
//	)
//
//	v, err := DataType.Resolve("Int-32")
//	// v == Int
//
// Resolution comes in a strict form (Resolve, which returns a structured
// error on miss) and a non-strict form (Lookup, which returns nil on any
// miss). Matches, MatchesAny, and MatchesNone are identity predicates built
// on Lookup.
//
// # Ambiguity Detection
//
// Because normalization is lossy, two declarations can collide: "A_B" and
// "AB" normalize identically. Define rejects any collision at definition
// time with an error wrapping ErrDefinitionCollision, naming both
// conflicting variants. An ambiguous enumeration is a defect in its own
// declaration, so the failure happens while the set is being built, never
// at lookup time, and a failed definition leaves no partial state behind.
//
// # Container Conversion
//
// ConvertKeys, ConvertMapValues, ConvertSlice, ConvertSet, and the
// ConvertValues dispatcher walk heterogeneous containers and replace
// resolvable string keys, values, or elements with the resolved singleton,
// leaving everything else untouched. ConvertKeysToString and
// ConvertValuesToString invert the transform back to canonical names. All
// helpers return new containers and never mutate their input.
//
// # Thread Safety
//
// Defining variants and resolving strings are safe to interleave from
// multiple goroutines; each set guards its table with a sync.RWMutex. The
// first resolution seals the set, after which the table is immutable and
// further definitions fail. For deterministic behavior, declare sets
// completely (typically in package-level var blocks) before resolving
// against them.
//
// # Error Handling
//
// Failures are reported as *Error values carrying the failed operation and
// an error kind, wrapping sentinel errors (ErrDefinitionCollision,
// ErrTypeMismatch, ErrNotFound, ErrUnsupportedContainer, ...) that work
// with errors.Is. Non-strict entry points never fail: every miss condition
// collapses into a nil result.
//
// Sets can optionally be published in a package-level registry (Register,
// Get) for frameworks that discover enumeration types dynamically; the
// decl subpackage builds and registers sets from YAML declarations.
package enumset
