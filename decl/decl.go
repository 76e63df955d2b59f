package decl

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zero-day-ai/enumset"
)

// Document is the root of a set-declaration file.
type Document struct {
	// Sets lists the enumeration sets to build, in order.
	Sets []SetDecl `yaml:"sets"`
}

// SetDecl declares one enumeration set.
type SetDecl struct {
	// Name is the set's name.
	Name string `yaml:"name"`

	// Variants lists the set's variants in declaration order.
	Variants []VariantDecl `yaml:"variants"`
}

// VariantDecl declares one variant. In YAML it is either a mapping with
// name and optional aliases, or a bare scalar shorthand for a variant
// without aliases:
//
//	variants:
//	  - INT
//	  - name: FLOAT
//	    aliases: [float32, double]
type VariantDecl struct {
	// Name is the variant's canonical identifier.
	Name string `yaml:"name"`

	// Aliases are the variant's alternate spellings, possibly empty.
	Aliases []string `yaml:"aliases,omitempty"`
}

// UnmarshalYAML implements yaml.Unmarshaler, accepting both the scalar
// shorthand and the full mapping form.
func (d *VariantDecl) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		d.Name = node.Value
		d.Aliases = nil
		return nil
	}

	type plain VariantDecl
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*d = VariantDecl(p)
	return nil
}

// Option configures the loader.
type Option func(*config)

type config struct {
	logger   *slog.Logger
	register bool
}

// WithLogger sets the logger used for per-set debug logging and close
// warnings. If not provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithRegistry controls whether built sets are published in the enumset
// package registry. Registration is on by default; pass false for sets
// that should stay private to the caller.
func WithRegistry(register bool) Option {
	return func(c *config) {
		c.register = register
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{register: true}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	return cfg
}

// Parse builds enumeration sets from a YAML declaration document. Every
// set is fully defined, sealed, and (unless disabled with WithRegistry)
// registered before being returned. Definition defects such as ambiguous
// names surface as enumset errors wrapped with the declaring set's name;
// a failed document publishes nothing.
func Parse(data []byte, opts ...Option) ([]*enumset.Set, error) {
	cfg := newConfig(opts)

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decl: parse declarations: %w", err)
	}

	sets := make([]*enumset.Set, 0, len(doc.Sets))
	for _, sd := range doc.Sets {
		s, err := build(sd)
		if err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}

	// Register only after the whole document built cleanly.
	if cfg.register {
		for _, s := range sets {
			if err := enumset.Register(s); err != nil {
				return nil, fmt.Errorf("decl: register set %q: %w", s.Name(), err)
			}
		}
	}

	for _, s := range sets {
		cfg.logger.Debug("built enumeration set",
			"set", s.Name(),
			"variants", s.Len())
	}

	return sets, nil
}

// Load builds enumeration sets from a YAML declaration stream.
func Load(r io.Reader, opts ...Option) ([]*enumset.Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decl: read declarations: %w", err)
	}
	return Parse(data, opts...)
}

// LoadFile builds enumeration sets from a YAML declaration file.
func LoadFile(path string, opts ...Option) ([]*enumset.Set, error) {
	cfg := newConfig(opts)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decl: open declarations: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			cfg.logger.Warn("failed to close declaration file",
				"path", path,
				"error", cerr)
		}
	}()

	return Load(f, opts...)
}

func build(sd SetDecl) (*enumset.Set, error) {
	if sd.Name == "" {
		return nil, fmt.Errorf("decl: set declaration is missing a name")
	}

	s := enumset.New(sd.Name)
	for _, vd := range sd.Variants {
		if _, err := s.Define(vd.Name, vd.Aliases...); err != nil {
			return nil, fmt.Errorf("decl: set %q: %w", sd.Name, err)
		}
	}
	s.Seal()
	return s, nil
}
