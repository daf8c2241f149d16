// Package rustgen renders grouped, mapped rules as Rust stylist style
// constructors, either as one aggregate source unit or as a module tree with
// a mod.rs index.
package rustgen

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/stylegen/internal/css"
	"github.com/yacobolo/stylegen/internal/group"
	"github.com/yacobolo/stylegen/internal/theme"
)

// ErrEmptyGroup reports a component group with nothing to generate, which
// means the group set handed in was built incorrectly.
var ErrEmptyGroup = errors.New("component group has no style blocks")

// Unit is one generated source file.
type Unit struct {
	Name   string // logical module name
	Path   string // suggested file name
	Source string
}

// Options control unit layout.
type Options struct {
	// SplitModules emits one unit per component plus a mod.rs index.
	SplitModules bool
	// IncludeUtilities appends the fixed helper constructors.
	IncludeUtilities bool
	// EmitVariants gives each variant its own constructor.
	EmitVariants bool
	// UnitName is the aggregate unit stem when not splitting.
	// Empty means "styles".
	UnitName string
}

// Body indentation inside the r#" literal.
const (
	indentBody  = "        "
	indentNest  = "            "
	indentNest2 = "                "
)

// Generator renders components against one mapping table. Safe for
// concurrent use once constructed.
type Generator struct {
	table *theme.Table
	log   *zap.Logger
}

// NewGenerator creates a generator. A nil table uses the built-in defaults,
// a nil logger disables debug output.
func NewGenerator(table *theme.Table, log *zap.Logger) *Generator {
	if table == nil {
		table = theme.Defaults()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{table: table, log: log.Named("generator")}
}

type ctor struct {
	name   string
	blocks []*group.StyleBlock
	frames *css.Keyframes
}

type unitSpec struct {
	name   string
	path   string
	header string
	ctors  []ctor
}

// Generate renders components, keyframes and optional utilities into units.
// Identifier assignment runs serially so collision suffixes are stable; unit
// bodies render concurrently and come back byte-identical between runs.
// Returned warnings describe identifier renames.
func (g *Generator) Generate(comps []*group.Component, keyframes []*css.Keyframes, opts Options) ([]Unit, []string, error) {
	unitName := opts.UnitName
	if unitName == "" {
		unitName = "styles"
	}

	fns := newIdentTable()
	var warnings []string
	claim := func(want string) string {
		got, renamed := fns.claim(want)
		if renamed {
			warnings = append(warnings, fmt.Sprintf("duplicate identifier %s renamed to %s", want, got))
		}
		return got
	}

	type compUnit struct {
		comp  *group.Component
		ctors []ctor
	}
	var compUnits []compUnit
	for _, c := range comps {
		if len(c.Base) == 0 && len(c.Variants) == 0 {
			return nil, warnings, fmt.Errorf("component %q: %w", c.Name, ErrEmptyGroup)
		}
		var ctors []ctor
		if len(c.Base) > 0 {
			ctors = append(ctors, ctor{name: claim(Ident(c.Name)), blocks: c.Base})
		}
		if opts.EmitVariants {
			for _, v := range c.Variants {
				if len(v.Blocks) == 0 {
					return nil, warnings, fmt.Errorf("variant %q of component %q: %w", v.Name, c.Name, ErrEmptyGroup)
				}
				ctors = append(ctors, ctor{name: claim(Ident(c.Name + "_" + v.Name)), blocks: v.Blocks})
			}
		}
		if len(ctors) == 0 {
			continue
		}
		compUnits = append(compUnits, compUnit{comp: c, ctors: ctors})
	}

	var kfCtors []ctor
	for _, kf := range keyframes {
		kfCtors = append(kfCtors, ctor{name: claim(Ident("animation_" + kf.Name)), frames: kf})
	}

	var utilCtors []ctor
	if opts.IncludeUtilities {
		for _, u := range utilityDefs {
			utilCtors = append(utilCtors, ctor{name: claim(u.name), blocks: []*group.StyleBlock{{Decls: u.decls}}})
		}
	}

	var specs []unitSpec
	if opts.SplitModules {
		mods := newIdentTable()
		for _, cu := range compUnits {
			mod, _ := mods.claim(Ident(cu.comp.Name))
			specs = append(specs, unitSpec{
				name:   mod,
				path:   mod + ".rs",
				header: title(mod) + " component styles",
				ctors:  cu.ctors,
			})
		}
		if len(kfCtors) > 0 {
			mod, _ := mods.claim("animations")
			specs = append(specs, unitSpec{name: mod, path: mod + ".rs", header: "Animation keyframes", ctors: kfCtors})
		}
		if len(utilCtors) > 0 {
			mod, _ := mods.claim("utils")
			specs = append(specs, unitSpec{name: mod, path: mod + ".rs", header: "Utility styles", ctors: utilCtors})
		}
		sort.Slice(specs, func(i, j int) bool { return specs[i].name < specs[j].name })
	} else {
		var all []ctor
		for _, cu := range compUnits {
			all = append(all, cu.ctors...)
		}
		all = append(all, kfCtors...)
		all = append(all, utilCtors...)
		if len(all) > 0 {
			specs = append(specs, unitSpec{
				name:   unitName,
				path:   unitName + ".rs",
				header: "Generated CSS styles",
				ctors:  all,
			})
		}
	}

	units := make([]Unit, len(specs))
	errs := make([]error, len(specs))
	var wg sync.WaitGroup
	for i := range specs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			src, err := g.renderUnit(specs[i])
			if err != nil {
				errs[i] = fmt.Errorf("unit %s: %w", specs[i].name, err)
				return
			}
			units[i] = Unit{Name: specs[i].name, Path: specs[i].path, Source: src}
		}(i)
	}
	wg.Wait()
	if err := multierr.Combine(errs...); err != nil {
		return nil, warnings, err
	}

	if opts.SplitModules && len(units) > 0 {
		idx, err := renderIndex(specs)
		if err != nil {
			return nil, warnings, err
		}
		units = append(units, idx)
	}

	g.log.Debug("generated units",
		zap.Int("units", len(units)),
		zap.Int("constructors", fnCount(specs)),
		zap.Int("warnings", len(warnings)))
	return units, warnings, nil
}

func (g *Generator) renderUnit(spec unitSpec) (string, error) {
	ctors := make([]string, 0, len(spec.ctors))
	for _, c := range spec.ctors {
		src, err := g.renderCtor(c)
		if err != nil {
			return "", err
		}
		ctors = append(ctors, src)
	}
	var sb strings.Builder
	err := unitTmpl.Execute(&sb, map[string]string{
		"Header":       spec.header,
		"Constructors": strings.Join(ctors, "\n"),
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (g *Generator) renderCtor(c ctor) (string, error) {
	var body string
	if c.frames != nil {
		body = g.keyframesBody(c.frames)
	} else {
		body = g.blocksBody(c.blocks)
	}
	var sb strings.Builder
	err := constructorTmpl.Execute(&sb, map[string]string{
		"Name": c.name,
		"Body": body,
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}

// blocksBody renders a constructor body: the plain base scope first, then
// pseudo-state blocks as nested &-rules, then media-scoped blocks, with a
// blank line between segments.
func (g *Generator) blocksBody(blocks []*group.StyleBlock) string {
	ordered := make([]*group.StyleBlock, 0, len(blocks))
	for _, b := range blocks {
		if b.Pseudo == "" && b.Media == "" {
			ordered = append(ordered, b)
		}
	}
	for _, b := range blocks {
		if b.Pseudo != "" || b.Media != "" {
			ordered = append(ordered, b)
		}
	}

	var segs []string
	for _, b := range ordered {
		switch {
		case b.Pseudo == "" && b.Media == "":
			if len(b.Decls) == 0 {
				continue
			}
			segs = append(segs, g.declLines(indentBody, b.Decls))
		case b.Media == "":
			segs = append(segs, indentBody+"&"+b.Pseudo+" {\n"+
				g.declLines(indentNest, b.Decls)+"\n"+
				indentBody+"}")
		case b.Pseudo == "":
			segs = append(segs, indentBody+"@media "+b.Media+" {\n"+
				g.declLines(indentNest, b.Decls)+"\n"+
				indentBody+"}")
		default:
			segs = append(segs, indentBody+"@media "+b.Media+" {\n"+
				indentNest+"&"+b.Pseudo+" {\n"+
				g.declLines(indentNest2, b.Decls)+"\n"+
				indentNest+"}\n"+
				indentBody+"}")
		}
	}
	return strings.Join(segs, "\n\n")
}

// keyframesBody wraps the @keyframes block whole so the animation stays
// referenceable by name from any other style.
func (g *Generator) keyframesBody(kf *css.Keyframes) string {
	frames := make([]string, 0, len(kf.Frames))
	for _, f := range kf.Frames {
		frames = append(frames, indentNest+f.Selector+" {\n"+
			g.declLines(indentNest2, f.Decls)+"\n"+
			indentNest+"}")
	}
	return indentBody + "@keyframes " + kf.Name + " {\n" +
		strings.Join(frames, "\n\n") + "\n" +
		indentBody + "}"
}

func (g *Generator) declLines(indent string, decls []css.Declaration) string {
	lines := make([]string, 0, len(decls))
	for _, d := range decls {
		val, _ := g.table.Map(d.Property, d.Value)
		if d.Important {
			val += " !important"
		}
		lines = append(lines, indent+d.Property+": "+val+";")
	}
	return strings.Join(lines, "\n")
}

func renderIndex(specs []unitSpec) (Unit, error) {
	modules := make([]string, 0, len(specs))
	for _, s := range specs {
		modules = append(modules, s.name)
	}
	sort.Strings(modules)
	var sb strings.Builder
	if err := indexTmpl.Execute(&sb, map[string]any{"Modules": modules}); err != nil {
		return Unit{}, fmt.Errorf("unit mod: %w", err)
	}
	return Unit{Name: "mod", Path: "mod.rs", Source: sb.String()}, nil
}

func fnCount(specs []unitSpec) int {
	n := 0
	for _, s := range specs {
		n += len(s.ctors)
	}
	return n
}
