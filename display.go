package enumset

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// stopWords stay lowercase in display names.
var stopWords = map[string]struct{}{
	"of":  {},
	"in":  {},
	"the": {},
}

// DisplayOption configures display-name rendering.
type DisplayOption func(*displayConfig)

type displayConfig struct {
	separator string
}

// WithSeparator sets the string joining the words of a display name.
// The default is a single space.
func WithSeparator(sep string) DisplayOption {
	return func(c *displayConfig) {
		c.separator = sep
	}
}

// DisplayName renders the variant's canonical name for human consumption:
// the name is split on underscores, each word is capitalized except the
// stop-words "of", "in", and "the" (matched case-insensitively, rendered
// lowercase), and the words are rejoined with the configured separator.
//
// A variant named TYPE_OF_SERVICE renders as "Type of Service".
func (v *Variant) DisplayName(opts ...DisplayOption) string {
	cfg := displayConfig{separator: " "}
	for _, opt := range opts {
		opt(&cfg)
	}

	caser := cases.Title(language.Und)
	words := strings.Split(v.name, "_")
	for i, word := range words {
		lower := strings.ToLower(word)
		if _, stop := stopWords[lower]; stop {
			words[i] = lower
			continue
		}
		words[i] = caser.String(word)
	}
	return strings.Join(words, cfg.separator)
}

// DisplayNames renders the display name of every variant in declaration
// order.
func (s *Set) DisplayNames(opts ...DisplayOption) []string {
	variants := s.Variants()
	out := make([]string, len(variants))
	for i, v := range variants {
		out[i] = v.DisplayName(opts...)
	}
	return out
}
