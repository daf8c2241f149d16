package group

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/stylegen/internal/css"
)

func mustParse(t *testing.T, src string) []*css.Rule {
	t.Helper()
	sheet, err := css.NewParser(nil).Parse(src)
	require.NoError(t, err)
	return sheet.Rules
}

func groupedOpts() Options {
	return Options{GroupComponents: true, ExtractVariants: true}
}

func componentMap(comps []*Component) map[string]*Component {
	m := make(map[string]*Component, len(comps))
	for _, c := range comps {
		m[c.Name] = c
	}
	return m
}

func variantNames(c *Component) []string {
	names := make([]string, 0, len(c.Variants))
	for _, v := range c.Variants {
		names = append(names, v.Name)
	}
	return names
}

func TestResolveNaming(t *testing.T) {
	tests := []struct {
		name     string
		css      string
		opts     Options
		expected map[string][]string
	}{
		{
			name:     "known variant suffix splits",
			css:      ".btn-primary { color: red; }",
			opts:     groupedOpts(),
			expected: map[string][]string{"btn": {"primary"}},
		},
		{
			name:     "unknown suffix stays in the component name",
			css:      ".navbar-brand { color: red; }",
			opts:     groupedOpts(),
			expected: map[string][]string{"navbar_brand": nil},
		},
		{
			name:     "grouping disabled keeps flat names",
			css:      ".btn-primary { color: red; }",
			opts:     Options{ExtractVariants: true},
			expected: map[string][]string{"btn_primary": nil},
		},
		{
			name:     "variant extraction disabled folds suffixes",
			css:      ".btn-primary { color: red; }",
			opts:     Options{GroupComponents: true},
			expected: map[string][]string{"btn_primary": nil},
		},
		{
			name:     "extra vocabulary extends the variant set",
			css:      ".navbar-brand { color: red; }",
			opts:     Options{GroupComponents: true, ExtractVariants: true, ExtraVariants: []string{"brand"}},
			expected: map[string][]string{"navbar": {"brand"}},
		},
		{
			name: "variants share one component",
			css: `.btn { color: red; }
			      .btn-primary { color: blue; }
			      .btn-secondary { color: green; }`,
			opts:     groupedOpts(),
			expected: map[string][]string{"btn": {"primary", "secondary"}},
		},
		{
			name:     "underscore separates like dash",
			css:      ".badge_success { color: green; }",
			opts:     groupedOpts(),
			expected: map[string][]string{"badge": {"success"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comps := Resolve(mustParse(t, tt.css), tt.opts)
			require.Len(t, comps, len(tt.expected))
			byName := componentMap(comps)
			for name, variants := range tt.expected {
				c, ok := byName[name]
				require.True(t, ok, "missing component %s", name)
				if len(variants) == 0 {
					assert.Empty(t, c.Variants)
				} else {
					assert.Equal(t, variants, variantNames(c))
				}
			}
		})
	}
}

func TestResolveUngrouped(t *testing.T) {
	comps := Resolve(mustParse(t, `body { margin: 0; }
		.card .title { font-weight: 700; }`), groupedOpts())
	require.Len(t, comps, 2)
	byName := componentMap(comps)

	require.Contains(t, byName, "body")
	assert.True(t, byName["body"].Ungrouped)

	require.Contains(t, byName, "card_title")
	assert.True(t, byName["card_title"].Ungrouped)
}

func TestResolveBlocks(t *testing.T) {
	comps := Resolve(mustParse(t, `.button { color: red; }
		.button:hover { color: blue; }
		@media (max-width: 768px) { .button { width: 100%; } }`), groupedOpts())
	require.Len(t, comps, 1)
	c := comps[0]
	assert.Equal(t, "button", c.Name)
	require.Len(t, c.Base, 3)

	assert.Equal(t, "", c.Base[0].Pseudo)
	assert.Equal(t, "", c.Base[0].Media)
	assert.Equal(t, "red", c.Base[0].Decls[0].Value)

	assert.Equal(t, ":hover", c.Base[1].Pseudo)
	assert.Equal(t, "blue", c.Base[1].Decls[0].Value)

	assert.Equal(t, "(max-width: 768px)", c.Base[2].Media)
	assert.Equal(t, "width", c.Base[2].Decls[0].Property)
}

func TestResolveMergesRepeatedSelectors(t *testing.T) {
	comps := Resolve(mustParse(t, `.btn { color: red; padding: 8px; }
		.btn { color: blue; }`), groupedOpts())
	require.Len(t, comps, 1)
	require.Len(t, comps[0].Base, 1)

	decls := comps[0].Base[0].Decls
	require.Len(t, decls, 2)
	assert.Equal(t, "color", decls[0].Property)
	assert.Equal(t, "blue", decls[0].Value, "later value wins")
	assert.Equal(t, "padding", decls[1].Property, "first position kept")
}

func TestResolveOrderIndependent(t *testing.T) {
	rules := mustParse(t, `.btn { color: red; }
		.btn-primary { color: blue; }
		.card { padding: 8px; }
		.card-header { font-weight: 700; }`)

	forward := Resolve(rules, groupedOpts())

	reversed := make([]*css.Rule, len(rules))
	for i, r := range rules {
		reversed[len(rules)-1-i] = r
	}
	backward := Resolve(reversed, groupedOpts())

	require.Len(t, backward, len(forward))
	byName := componentMap(backward)
	for _, c := range forward {
		b, ok := byName[c.Name]
		require.True(t, ok, "missing component %s", c.Name)
		assert.ElementsMatch(t, variantNames(c), variantNames(b))
	}
}

// flatten turns resolved components back into a rule model so resolving can
// run a second time.
func flatten(comps []*Component) []*css.Rule {
	var rules []*css.Rule
	add := func(base string, blocks []*StyleBlock) {
		r := &css.Rule{Selector: css.Selector{Raw: "." + base, Base: base, Class: true}}
		for _, b := range blocks {
			switch {
			case b.Pseudo == "" && b.Media == "":
				r.Decls = b.Decls
			case b.Pseudo != "":
				r.Nested = append(r.Nested, &css.Rule{
					Selector: css.Selector{Base: base, Pseudo: b.Pseudo, Class: true},
					Decls:    b.Decls,
					Media:    b.Media,
				})
			default:
				rules = append(rules, &css.Rule{
					Selector: css.Selector{Base: base, Class: true},
					Decls:    b.Decls,
					Media:    b.Media,
				})
			}
		}
		rules = append(rules, r)
	}
	for _, c := range comps {
		add(c.Name, c.Base)
		for _, v := range c.Variants {
			add(c.Name+"-"+v.Name, v.Blocks)
		}
	}
	return rules
}

func TestResolveIdempotent(t *testing.T) {
	first := Resolve(mustParse(t, `.btn { color: red; }
		.btn-primary { color: blue; }
		.btn-primary:hover { color: green; }
		.navbar-brand { font-weight: 700; }
		.card { padding: 8px; }`), groupedOpts())

	second := Resolve(flatten(first), groupedOpts())

	require.Len(t, second, len(first))
	byName := componentMap(second)
	for _, c := range first {
		again, ok := byName[c.Name]
		require.True(t, ok, "missing component %s", c.Name)
		assert.Equal(t, variantNames(c), variantNames(again))
		assert.Len(t, again.Base, len(c.Base))
	}
}

func TestResolveWithBootstrapClassifier(t *testing.T) {
	opts := groupedOpts()
	opts.Classifier = ClassifierFor("bootstrap")

	comps := Resolve(mustParse(t, `.btn { color: red; }
		.btn-primary { color: blue; }`), opts)
	require.Len(t, comps, 1)
	assert.Equal(t, "button", comps[0].Name)
	assert.Equal(t, []string{"primary"}, variantNames(comps[0]))
}

func TestDetectFramework(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{"bootstrap classes", ".btn-primary { color: red; }", "bootstrap"},
		{"tailwind directive", "@tailwind base;", "tailwind"},
		{"bulma modifiers", ".is-primary { color: red; }", "bulma"},
		{"foundation callout", ".callout { padding: 8px; }", "foundation"},
		{"plain custom css", ".widget { color: red; }", ""},
		{"bootstrap wins over tailwind by order", ".btn-primary { } /* tailwind */", "bootstrap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectFramework(tt.source))
		})
	}
}

func TestClassifierFor(t *testing.T) {
	_, _, ok := ClassifierFor("tailwind").Classify("prose-lg")
	assert.False(t, ok, "tailwind is detect-only")

	_, _, ok = ClassifierFor("unknown").Classify("btn-primary")
	assert.False(t, ok)

	comp, rest, ok := ClassifierFor("bootstrap").Classify("btn-outline")
	require.True(t, ok)
	assert.Equal(t, "button", comp)
	assert.Equal(t, "outline", rest)

	comp, rest, ok = ClassifierFor("bulma").Classify("is-large")
	require.True(t, ok)
	assert.Equal(t, "large", comp)
	assert.Equal(t, "", rest)
}
