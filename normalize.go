package enumset

import "strings"

// separators are the characters deleted by Normalize. Everything else,
// including digits, non-ASCII letters, and other punctuation, passes
// through unchanged.
const separators = " -_.:;,"

// Normalize canonicalizes a string for lookup: ASCII letters A-Z are
// lowercased and separator characters (space, hyphen, underscore, period,
// colon, semicolon, comma) are deleted. The transform is pure, total, and
// idempotent, and performs no locale-aware case mapping.
//
// Normalize is exported so callers can precompute lookup keys, but most
// code should go through Set.Resolve or Set.Lookup, which normalize
// internally.
func Normalize(s string) string {
	return strings.Map(normalizeRune, s)
}

func normalizeRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	if r < 0x80 && strings.ContainsRune(separators, r) {
		return -1
	}
	return r
}
