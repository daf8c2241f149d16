package rustgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/stylegen/internal/css"
	"github.com/yacobolo/stylegen/internal/group"
)

func convert(t *testing.T, src string, gopts group.Options, opts Options) ([]Unit, []string) {
	t.Helper()
	sheet, err := css.NewParser(nil).Parse(src)
	require.NoError(t, err)
	units, warnings, err := NewGenerator(nil, nil).Generate(group.Resolve(sheet.Rules, gopts), sheet.Keyframes, opts)
	require.NoError(t, err)
	return units, warnings
}

func groupedOpts() group.Options {
	return group.Options{GroupComponents: true, ExtractVariants: true}
}

func TestGenerateConstructor(t *testing.T) {
	units, warnings := convert(t, `.button { background: #007bff; padding: 8px 16px; }
		.button:hover { background: #0056b3; }`,
		groupedOpts(), Options{EmitVariants: true})
	require.Len(t, units, 1)
	assert.Empty(t, warnings)

	src := units[0].Source
	assert.Equal(t, "styles", units[0].Name)
	assert.Equal(t, "styles.rs", units[0].Path)
	assert.True(t, strings.HasPrefix(src, "//! Generated CSS styles\n\nuse stylist::Style;\n"))
	assert.Contains(t, src, "/// Button styles")
	assert.Contains(t, src, "pub fn button() -> Style {")
	assert.Contains(t, src, "        background: var(--color-primary);")
	assert.Contains(t, src, "        padding: var(--spacing-sm) var(--spacing-md);")
	assert.Contains(t, src, "        &:hover {\n            background: var(--color-primary-hover);\n        }")
	assert.Contains(t, src, `.expect("Failed to create button styles")`)
}

func TestGenerateVariants(t *testing.T) {
	units, _ := convert(t, `.btn { color: red; }
		.btn-primary { background: #007bff; }`,
		groupedOpts(), Options{EmitVariants: true})
	require.Len(t, units, 1)

	src := units[0].Source
	base := strings.Index(src, "pub fn btn() -> Style {")
	variant := strings.Index(src, "pub fn btn_primary() -> Style {")
	require.GreaterOrEqual(t, base, 0)
	require.GreaterOrEqual(t, variant, 0)
	assert.Less(t, base, variant, "base constructor comes first")
	assert.Contains(t, src, "/// Btn Primary styles")
}

func TestGenerateVariantsSuppressed(t *testing.T) {
	units, _ := convert(t, `.btn { color: red; }
		.btn-primary { background: #007bff; }`,
		groupedOpts(), Options{})
	require.Len(t, units, 1)
	assert.NotContains(t, units[0].Source, "btn_primary")
}

func TestGenerateMediaBlocks(t *testing.T) {
	units, _ := convert(t, `@media (max-width: 768px) { .btn { width: 100%; } }
		.btn { color: red; }`,
		groupedOpts(), Options{EmitVariants: true})
	require.Len(t, units, 1)

	src := units[0].Source
	media := "        @media (max-width: 768px) {\n            width: 100%;\n        }"
	assert.Contains(t, src, media)
	assert.Less(t, strings.Index(src, "color: red;"), strings.Index(src, "@media"),
		"plain declarations render before media blocks")
}

func TestGenerateSplitModules(t *testing.T) {
	units, _ := convert(t, `.card { padding: 8px; }
		.button { color: red; }`,
		groupedOpts(), Options{SplitModules: true, EmitVariants: true})
	require.Len(t, units, 3)

	assert.Equal(t, "button", units[0].Name)
	assert.Equal(t, "button.rs", units[0].Path)
	assert.True(t, strings.HasPrefix(units[0].Source, "//! Button component styles\n"))

	assert.Equal(t, "card", units[1].Name)
	assert.Contains(t, units[1].Source, "padding: var(--spacing-sm);")

	assert.Equal(t, "mod.rs", units[2].Path)
	expected := `//! Style modules

pub mod button;
pub mod card;

// Re-export all component styles
pub use button::*;
pub use card::*;
`
	assert.Equal(t, expected, units[2].Source)
}

func TestGenerateKeyframes(t *testing.T) {
	src := `@keyframes fade-in {
		from { opacity: 0; }
		to { opacity: 1; }
	}
	.spinner { color: red; }`

	units, _ := convert(t, src, groupedOpts(), Options{EmitVariants: true})
	require.Len(t, units, 1)
	agg := units[0].Source
	assert.Contains(t, agg, "pub fn animation_fade_in() -> Style {")
	assert.Contains(t, agg, "        @keyframes fade-in {")
	assert.Contains(t, agg, "            from {\n                opacity: 0;\n            }")

	units, _ = convert(t, src, groupedOpts(), Options{SplitModules: true, EmitVariants: true})
	require.Len(t, units, 3)
	assert.Equal(t, "animations", units[0].Name)
	assert.True(t, strings.HasPrefix(units[0].Source, "//! Animation keyframes\n"))
	assert.Contains(t, units[2].Source, "pub mod animations;")
}

func TestGenerateUtilities(t *testing.T) {
	units, _ := convert(t, ".widget { color: red; }",
		groupedOpts(), Options{IncludeUtilities: true, EmitVariants: true})
	require.Len(t, units, 1)
	src := units[0].Source
	assert.Contains(t, src, "pub fn flex_center() -> Style {")
	assert.Contains(t, src, "        align-items: center;")
	assert.Contains(t, src, "pub fn absolute_center() -> Style {")
	assert.Contains(t, src, "transform: translate(-50%, -50%);")
	assert.Less(t, strings.Index(src, "pub fn widget()"), strings.Index(src, "pub fn flex_center()"),
		"utilities render after parsed components")

	units, _ = convert(t, ".widget { color: red; }",
		groupedOpts(), Options{IncludeUtilities: true, SplitModules: true, EmitVariants: true})
	require.Len(t, units, 3)
	assert.Equal(t, "utils", units[0].Name)
	assert.True(t, strings.HasPrefix(units[0].Source, "//! Utility styles\n"))
	assert.Equal(t, "widget", units[1].Name)
}

func baseBlocks(prop, val string) []*group.StyleBlock {
	return []*group.StyleBlock{{Decls: []css.Declaration{{Property: prop, Value: val}}}}
}

func TestGenerateCollisionSuffix(t *testing.T) {
	comps := []*group.Component{
		{Name: "btn", Base: baseBlocks("color", "red"), Variants: []*group.Variant{
			{Name: "primary", Blocks: baseBlocks("color", "blue")},
		}},
		{Name: "btn_primary", Base: baseBlocks("color", "green")},
	}
	units, warnings, err := NewGenerator(nil, nil).Generate(comps, nil, Options{EmitVariants: true})
	require.NoError(t, err)
	require.Len(t, units, 1)

	src := units[0].Source
	assert.Contains(t, src, "pub fn btn_primary() -> Style {")
	assert.Contains(t, src, "pub fn btn_primary2() -> Style {")
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "btn_primary2")
}

func TestGenerateReservedAndNumericNames(t *testing.T) {
	comps := []*group.Component{
		{Name: "type", Base: baseBlocks("color", "red")},
		{Name: "2col", Base: baseBlocks("color", "blue")},
	}
	units, _, err := NewGenerator(nil, nil).Generate(comps, nil, Options{})
	require.NoError(t, err)
	src := units[0].Source
	assert.Contains(t, src, "pub fn type_style() -> Style {")
	assert.Contains(t, src, "pub fn style_2col() -> Style {")
}

func TestGenerateEmptyGroupFails(t *testing.T) {
	units, _, err := NewGenerator(nil, nil).Generate([]*group.Component{{Name: "ghost"}}, nil, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyGroup)
	assert.Nil(t, units)
}

func TestGenerateImportant(t *testing.T) {
	units, _ := convert(t, ".a { color: red !important; }", groupedOpts(), Options{})
	assert.Contains(t, units[0].Source, "        color: red !important;")
}

func TestGenerateDeterministic(t *testing.T) {
	src := `.btn { color: #007bff; }
	.btn-primary { background: #007bff; }
	.btn-primary:hover { background: #0056b3; }
	.card { padding: 8px; }
	@keyframes spin { from { transform: rotate(0deg); } to { transform: rotate(360deg); } }
	@media (max-width: 768px) { .card { padding: 4px; } }`
	opts := Options{SplitModules: true, IncludeUtilities: true, EmitVariants: true}

	first, _ := convert(t, src, groupedOpts(), opts)
	second, _ := convert(t, src, groupedOpts(), opts)
	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Name, second[i].Name)
		assert.Equal(t, first[i].Source, second[i].Source)
	}
}

func TestGenerateCustomUnitName(t *testing.T) {
	units, _ := convert(t, ".a { color: red; }", groupedOpts(), Options{UnitName: "bundle"})
	require.Len(t, units, 1)
	assert.Equal(t, "bundle", units[0].Name)
	assert.Equal(t, "bundle.rs", units[0].Path)
}

func TestIdent(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"passthrough", "button", "button"},
		{"separator runs collapse", "btn--primary", "btn_primary"},
		{"uppercase lowered", "MyWidget", "mywidget"},
		{"leading digit escaped", "2col", "style_2col"},
		{"reserved word suffixed", "type", "type_style"},
		{"empty becomes style", "", "style"},
		{"edge separators trimmed", "-foo-", "foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Ident(tt.in))
		})
	}
}
