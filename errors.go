package enumset

import (
	"errors"
	"fmt"
)

// Sentinel errors for common resolution and definition failures.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrDefinitionCollision indicates two variants of the same set (or a
	// variant and an alias) normalize to the same lookup key. This is a
	// defect in the enumeration's own definition, never a bad-input error,
	// and is detected at definition time.
	ErrDefinitionCollision = errors.New("definition collision")

	// ErrInvalidDefinition indicates a variant was declared with an empty
	// name or an empty alias string.
	ErrInvalidDefinition = errors.New("invalid definition")

	// ErrTypeMismatch indicates a strict resolution was requested with an
	// input that is neither a string nor a variant of the set.
	ErrTypeMismatch = errors.New("input is not a string")

	// ErrNotFound indicates a strict resolution matched no variant.
	ErrNotFound = errors.New("no matching variant")

	// ErrUnsupportedContainer indicates ConvertValues was invoked in strict
	// mode with a container kind outside mapping/sequence/set.
	ErrUnsupportedContainer = errors.New("unsupported container")

	// ErrSetSealed indicates an attempt to define a variant on a set that
	// has already served a resolution or was explicitly sealed.
	ErrSetSealed = errors.New("set is sealed")

	// ErrDuplicateSet indicates a set with the same normalized name is
	// already present in the registry.
	ErrDuplicateSet = errors.New("duplicate set")
)

// Error kinds categorize errors by their type.
const (
	// KindCollision represents ambiguous enumeration definitions.
	KindCollision = "collision"

	// KindValidation represents errors related to definition validation.
	KindValidation = "validation"

	// KindTypeMismatch represents strict resolutions of non-string input.
	KindTypeMismatch = "type_mismatch"

	// KindNotFound represents strict resolutions that matched nothing.
	KindNotFound = "not_found"

	// KindUnsupported represents unsupported container kinds.
	KindUnsupported = "unsupported_container"

	// KindSealed represents definition attempts on sealed sets.
	KindSealed = "sealed"

	// KindDuplicate represents duplicate registrations in the set registry.
	KindDuplicate = "duplicate"
)

// Error is a structured error type that wraps underlying errors with
// additional context about the operation that failed and the category of
// error.
//
// Error implements the error interface and supports error unwrapping,
// making it compatible with errors.Is() and errors.As().
type Error struct {
	// Op is the operation that failed (e.g., "Set.Define", "Set.Resolve").
	Op string

	// Kind categorizes the error (e.g., KindCollision, KindNotFound).
	Kind string

	// Err is the underlying error that caused this error.
	Err error

	// Context provides additional context about the error (optional).
	// Resolution failures carry the attempted input and the set's valid
	// variant names here for diagnostics.
	Context map[string]any
}

// Error implements the error interface, returning a formatted error message
// that includes the operation, kind, and underlying error.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("enumset: %s: %s", e.Op, e.Kind)
	}

	if len(e.Context) > 0 {
		return fmt.Sprintf("enumset: %s (%s): %v [context: %+v]", e.Op, e.Kind, e.Err, e.Context)
	}

	return fmt.Sprintf("enumset: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and errors.As()
// to work correctly with wrapped errors.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error matching for Error, allowing comparison based on the
// underlying error or on another Error's Op and Kind.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}

	return errors.Is(e.Err, target)
}

// WithContext returns a copy of the error with the provided context merged
// in. This is useful for adding debugging information to errors.
func (e *Error) WithContext(ctx map[string]any) *Error {
	newErr := *e
	if newErr.Context == nil {
		newErr.Context = make(map[string]any)
	}
	for k, v := range ctx {
		newErr.Context[k] = v
	}
	return &newErr
}
