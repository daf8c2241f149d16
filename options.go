package stylegen

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/yacobolo/stylegen/internal/theme"
)

// Options holds conversion configuration
type Options struct {
	// GroupComponents merges selectors sharing a base name into one
	// component with variants. Off by default: every selector keeps its
	// own constructor.
	GroupComponents bool

	// ExtractVariants gives recognized variant suffixes (primary, large,
	// disabled, ...) their own constructors when grouping. Off it folds
	// the suffix into the component name. DefaultOptions enables it.
	ExtractVariants bool

	// ExtraVariants extends the built-in variant vocabulary.
	ExtraVariants []string

	// IncludeUtilities appends the fixed layout helper constructors
	// (flex_center, hidden, full_width, ...).
	IncludeUtilities bool

	// SplitModules writes one file per component plus a mod.rs index
	// instead of a single aggregate file.
	SplitModules bool

	// UnitName is the aggregate file stem when not splitting.
	// Empty means "styles".
	UnitName string

	// Framework opts into a framework's class naming convention when
	// grouping ("bootstrap", "bulma"). Empty means plain prefix
	// splitting, so ".btn-primary" groups as component "btn".
	Framework string

	// Overlay layers user token mappings over the built-in table.
	Overlay Overlay

	// Logger receives debug output; nil disables it.
	Logger *zap.Logger
}

// DefaultOptions returns the options Convert assumes when nothing is
// configured explicitly: variant extraction on, everything else off.
func DefaultOptions() Options {
	return Options{ExtractVariants: true}
}

// Overlay is a user mapping document keyed by category. Categories are
// colors, spacing, radius, font-size, font-weight, shadow, transition and
// breakpoints; unknown categories are carried but never consulted.
type Overlay map[string]CategoryOverlay

// CategoryOverlay holds the exact values and ordered patterns for one
// category. In YAML a category takes either the structured form
//
//	colors:
//	  values:
//	    "#aabbcc": var(--color-accent)
//	  patterns:
//	    - match: "^#f{3,6}$"
//	      replace: var(--color-background)
//
// or a plain literal-to-token map, which reads as values only.
type CategoryOverlay struct {
	Values   map[string]string
	Patterns []PatternRule
}

// PatternRule is a regular-expression rewrite tried after exact lookups
// miss. Replace may reference capture groups ($1, $2, ...). Within a
// category the first matching pattern wins.
type PatternRule struct {
	Match   string `yaml:"match"`
	Replace string `yaml:"replace"`
}

// UnmarshalYAML accepts both the structured {values, patterns} form and a
// plain two-level literal-to-token map.
func (c *CategoryOverlay) UnmarshalYAML(node *yaml.Node) error {
	var structured struct {
		Values   map[string]string `yaml:"values"`
		Patterns []PatternRule     `yaml:"patterns"`
	}
	if err := node.Decode(&structured); err == nil {
		if structured.Values != nil || structured.Patterns != nil {
			c.Values = structured.Values
			c.Patterns = structured.Patterns
			return nil
		}
	}

	var plain map[string]string
	if err := node.Decode(&plain); err != nil {
		return fmt.Errorf("category overlay must be a values/patterns block or a plain mapping: %w", err)
	}
	c.Values = plain
	return nil
}

// LoadOverlayFile reads a YAML overlay document from disk.
func LoadOverlayFile(path string) (Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mapping overlay: %w", err)
	}
	var o Overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parsing mapping overlay %s: %w", path, err)
	}
	return o, nil
}

// table builds the layered mapping table; an empty overlay yields the
// built-in defaults.
func (o Overlay) table() (*theme.Table, error) {
	if len(o) == 0 {
		return theme.Defaults(), nil
	}
	values := make(map[string]map[string]string, len(o))
	patterns := make(map[string][]theme.PatternSpec, len(o))
	for cat, co := range o {
		if len(co.Values) > 0 {
			values[cat] = co.Values
		}
		for _, p := range co.Patterns {
			patterns[cat] = append(patterns[cat], theme.PatternSpec{Match: p.Match, Replace: p.Replace})
		}
	}
	return theme.NewTable(values, patterns)
}
