// Package group partitions a parsed rule model into components and variants
// by selector naming convention.
package group

import (
	"strings"

	"github.com/yacobolo/stylegen/internal/css"
)

// Options control how selectors are partitioned.
type Options struct {
	// GroupComponents enables component grouping. Without it every distinct
	// selector base keeps its own flat component.
	GroupComponents bool
	// ExtractVariants splits recognized variant suffixes into their own
	// entries instead of folding them into the component name.
	ExtractVariants bool
	// ExtraVariants extends the built-in variant vocabulary.
	ExtraVariants []string
	// Classifier recognizes framework naming conventions; nil means none.
	Classifier Classifier
}

// StyleBlock is one flattened style scope of a component: its declarations
// plus the pseudo-state and media condition they apply under. The base scope
// has both fields empty.
type StyleBlock struct {
	Pseudo string
	Media  string
	Decls  []css.Declaration
}

// Variant is a named variation of a component, such as primary or large.
type Variant struct {
	Name   string
	Blocks []*StyleBlock
}

// Component is one grouped output unit.
type Component struct {
	Name     string
	Base     []*StyleBlock
	Variants []*Variant
	// Ungrouped marks selectors that never matched a component convention
	// (element and id selectors, combinator chains). They render as plain
	// top-level constructors.
	Ungrouped bool
}

// Resolve partitions rules into components. The partition depends only on
// the rule set, the options and the classifier, not on rule order; output
// order follows first appearance in the input, and repeated declarations for
// the same scope merge with the later value winning in the earlier position.
func Resolve(rules []*css.Rule, opts Options) []*Component {
	vocab := variantSet(opts.ExtraVariants)
	cls := opts.Classifier
	if cls == nil {
		cls = NopClassifier{}
	}

	byName := make(map[string]*Component)
	var order []*Component

	for _, r := range rules {
		name, variant, grouped := componentFor(r, opts, vocab, cls)
		comp, ok := byName[name]
		if !ok {
			comp = &Component{Name: name, Ungrouped: !grouped}
			byName[name] = comp
			order = append(order, comp)
		}
		comp.add(variant, r)
	}
	return order
}

// componentFor derives the (component, variant) pair for one rule. grouped
// reports that the selector matched a component convention rather than
// landing in the ungrouped bucket.
func componentFor(r *css.Rule, opts Options, vocab map[string]struct{}, cls Classifier) (name, variant string, grouped bool) {
	sel := r.Selector
	if sel.Complex || !sel.Class {
		return normalize(sel.Base), "", false
	}

	base := strings.ToLower(sel.Base)
	if !opts.GroupComponents {
		return normalize(base), "", true
	}

	comp, rest := base, ""
	if c, r2, ok := cls.Classify(base); ok && c != "" {
		comp, rest = c, r2
	} else if i := strings.IndexAny(base, "-_"); i > 0 {
		comp, rest = base[:i], base[i+1:]
	}

	if rest != "" {
		if _, known := vocab[rest]; known && opts.ExtractVariants {
			return normalize(comp), rest, true
		}
		// Unrecognized suffix stays part of the component name.
		return normalize(comp + "_" + rest), "", true
	}
	return normalize(comp), "", true
}

func (c *Component) add(variant string, r *css.Rule) {
	blocks := &c.Base
	if variant != "" {
		blocks = &c.variantFor(variant).Blocks
	}

	// A rule that only exists to anchor pseudo blocks contributes no empty
	// base scope.
	if len(r.Decls) > 0 || len(r.Nested) == 0 {
		findBlock(blocks, "", r.Media).merge(r.Decls)
	}
	for _, n := range r.Nested {
		findBlock(blocks, n.Selector.Pseudo, n.Media).merge(n.Decls)
	}
}

func (c *Component) variantFor(name string) *Variant {
	for _, v := range c.Variants {
		if v.Name == name {
			return v
		}
	}
	v := &Variant{Name: name}
	c.Variants = append(c.Variants, v)
	return v
}

func findBlock(blocks *[]*StyleBlock, pseudo, media string) *StyleBlock {
	for _, b := range *blocks {
		if b.Pseudo == pseudo && b.Media == media {
			return b
		}
	}
	b := &StyleBlock{Pseudo: pseudo, Media: media}
	*blocks = append(*blocks, b)
	return b
}

// merge folds declarations into the block with cascade semantics: a repeated
// property keeps its first position but takes the later value.
func (b *StyleBlock) merge(decls []css.Declaration) {
	for _, d := range decls {
		replaced := false
		for i := range b.Decls {
			if b.Decls[i].Property == d.Property {
				b.Decls[i].Value = d.Value
				b.Decls[i].Important = d.Important
				replaced = true
				break
			}
		}
		if !replaced {
			b.Decls = append(b.Decls, d)
		}
	}
}

// normalize lowers a selector base into a component key: lowercase with
// non-alphanumeric runs collapsed to single underscores.
func normalize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	pending := false
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			if pending && sb.Len() > 0 {
				sb.WriteByte('_')
			}
			pending = false
			sb.WriteRune(r)
			continue
		}
		pending = true
	}
	return sb.String()
}
