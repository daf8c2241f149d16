// Package theme resolves raw declaration values to design-token references
// through a layered mapping table: a user-supplied overlay consulted before a
// built-in default layer.
package theme

import (
	"fmt"
	"regexp"
	"strings"
)

// PatternSpec is one pattern rewrite rule: a regular expression matched
// against a canonicalized value token, and a replacement that may reference
// capture groups ($1, $2, ...).
type PatternSpec struct {
	Match   string
	Replace string
}

type pattern struct {
	re      *regexp.Regexp
	replace string
}

type layer struct {
	values   map[string]map[string]string
	patterns map[string][]pattern
}

// Table resolves values against the user layer first, then the defaults.
// A Table is immutable once built and safe for concurrent use.
type Table struct {
	user layer
	def  layer
}

// Defaults returns a table with only the built-in layer.
func Defaults() *Table {
	return &Table{def: defaultLayer}
}

// NewTable layers a user overlay over the built-in defaults. Overlay value
// keys are canonicalized the same way lookups are, so "rgba(0, 0, 0, 0.5)"
// and "rgba(0,0,0,0.5)" name the same entry. Patterns keep their declared
// order within a category.
func NewTable(values map[string]map[string]string, patterns map[string][]PatternSpec) (*Table, error) {
	user, err := buildLayer(values, patterns)
	if err != nil {
		return nil, err
	}
	return &Table{user: user, def: defaultLayer}, nil
}

func buildLayer(values map[string]map[string]string, patterns map[string][]PatternSpec) (layer, error) {
	l := layer{
		values:   make(map[string]map[string]string, len(values)),
		patterns: make(map[string][]pattern, len(patterns)),
	}
	for cat, entries := range values {
		m := make(map[string]string, len(entries))
		for k, v := range entries {
			m[canon(k)] = v
		}
		l.values[cat] = m
	}
	for cat, specs := range patterns {
		for _, spec := range specs {
			re, err := regexp.Compile(spec.Match)
			if err != nil {
				return layer{}, fmt.Errorf("mapping pattern %q for %s: %w", spec.Match, cat, err)
			}
			l.patterns[cat] = append(l.patterns[cat], pattern{re: re, replace: spec.Replace})
		}
	}
	return l, nil
}

var defaultLayer = mustLayer(defaultValues, defaultPatterns)

func mustLayer(values map[string]map[string]string, patterns map[string][]PatternSpec) layer {
	l, err := buildLayer(values, patterns)
	if err != nil {
		panic(err)
	}
	return l
}

// canon normalizes a value for exact-match lookup: lowercase, whitespace
// runs collapsed, and no spaces inside parenthesized argument lists.
func canon(v string) string {
	v = strings.ToLower(strings.Join(strings.Fields(v), " "))
	if !strings.ContainsRune(v, '(') {
		return v
	}
	var sb strings.Builder
	sb.Grow(len(v))
	depth := 0
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch c {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ' ':
			if depth > 0 {
				continue
			}
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
