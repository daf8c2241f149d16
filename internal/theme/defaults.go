package theme

import "strings"

// Mapping categories, the top-level keys of a mapping overlay document.
const (
	CategoryColors      = "colors"
	CategorySpacing     = "spacing"
	CategoryRadius      = "radius"
	CategoryFontSize    = "font-size"
	CategoryFontWeight  = "font-weight"
	CategoryShadow      = "shadow"
	CategoryTransition  = "transition"
	CategoryBreakpoints = "breakpoints"
)

// allCategories fixes the scan order for properties with no category
// affinity. Lookups walk it in this order, so earlier categories shadow
// later ones for values that appear in both.
var allCategories = []string{
	CategoryColors,
	CategorySpacing,
	CategoryRadius,
	CategoryFontSize,
	CategoryFontWeight,
	CategoryShadow,
	CategoryTransition,
	CategoryBreakpoints,
}

// defaultValues is the built-in exact-match layer.
var defaultValues = map[string]map[string]string{
	CategoryColors: {
		// Brand
		"#007bff": "var(--color-primary)",
		"#0056b3": "var(--color-primary-hover)",
		"#004085": "var(--color-primary-active)",
		"#545b62": "var(--color-secondary-hover)",
		"#4e555b": "var(--color-secondary-active)",

		// State
		"#28a745": "var(--color-success)",
		"#1e7e34": "var(--color-success-hover)",
		"#dc3545": "var(--color-error)",
		"#c82333": "var(--color-error-hover)",
		"#ffc107": "var(--color-warning)",
		"#e0a800": "var(--color-warning-hover)",

		// Text
		"#212529": "var(--color-text-primary)",
		"#6c757d": "var(--color-text-secondary)",

		// Surfaces and borders
		"#ffffff": "var(--color-background)",
		"#f8f9fa": "var(--color-surface)",
		"#e9ecef": "var(--color-surface-hover)",
		"#dee2e6": "var(--color-border)",
		"#adb5bd": "var(--color-border-hover)",

		// Keywords
		"white":       "var(--color-background)",
		"black":       "var(--color-text-primary)",
		"transparent": "var(--color-transparent)",
	},

	CategorySpacing: {
		"2px":  "var(--spacing-xs)",
		"4px":  "var(--spacing-xs)",
		"8px":  "var(--spacing-sm)",
		"12px": "var(--spacing-md)",
		"16px": "var(--spacing-md)",
		"20px": "var(--spacing-lg)",
		"24px": "var(--spacing-lg)",
		"32px": "var(--spacing-xl)",
		"40px": "var(--spacing-xxl)",
		"48px": "var(--spacing-xxl)",

		"0.125rem": "var(--spacing-xs)",
		"0.25rem":  "var(--spacing-xs)",
		"0.5rem":   "var(--spacing-sm)",
		"0.75rem":  "var(--spacing-md)",
		"1rem":     "var(--spacing-md)",
		"1.25rem":  "var(--spacing-lg)",
		"1.5rem":   "var(--spacing-lg)",
		"2rem":     "var(--spacing-xl)",
		"2.5rem":   "var(--spacing-xxl)",
		"3rem":     "var(--spacing-xxl)",
	},

	CategoryRadius: {
		"2px":    "var(--border-radius-sm)",
		"4px":    "var(--border-radius-sm)",
		"6px":    "var(--border-radius-md)",
		"8px":    "var(--border-radius-md)",
		"12px":   "var(--border-radius-lg)",
		"16px":   "var(--border-radius-lg)",
		"50%":    "50%",
		"9999px": "var(--border-radius-full)",

		"0.125rem": "var(--border-radius-sm)",
		"0.25rem":  "var(--border-radius-sm)",
		"0.375rem": "var(--border-radius-md)",
		"0.5rem":   "var(--border-radius-md)",
		"0.75rem":  "var(--border-radius-lg)",
		"1rem":     "var(--border-radius-lg)",
	},

	CategoryFontSize: {
		"12px": "var(--font-size-xs)",
		"14px": "var(--font-size-sm)",
		"16px": "var(--font-size-md)",
		"18px": "var(--font-size-lg)",
		"20px": "var(--font-size-xl)",
		"24px": "var(--font-size-xxl)",

		"0.75rem":  "var(--font-size-xs)",
		"0.875rem": "var(--font-size-sm)",
		"1rem":     "var(--font-size-md)",
		"1.125rem": "var(--font-size-lg)",
		"1.25rem":  "var(--font-size-xl)",
		"1.5rem":   "var(--font-size-xxl)",
	},

	CategoryFontWeight: {
		"300": "var(--font-weight-light)",
		"400": "var(--font-weight-normal)",
		"500": "var(--font-weight-medium)",
		"600": "var(--font-weight-semibold)",
		"700": "var(--font-weight-bold)",
		"800": "var(--font-weight-extrabold)",

		"light":    "var(--font-weight-light)",
		"normal":   "var(--font-weight-normal)",
		"medium":   "var(--font-weight-medium)",
		"semibold": "var(--font-weight-semibold)",
		"bold":     "var(--font-weight-bold)",
	},

	CategoryShadow: {
		"0 1px 3px rgba(0,0,0,0.1)":   "var(--shadow-sm)",
		"0 4px 6px rgba(0,0,0,0.1)":   "var(--shadow-md)",
		"0 10px 15px rgba(0,0,0,0.1)": "var(--shadow-lg)",
		"0 20px 25px rgba(0,0,0,0.1)": "var(--shadow-xl)",
		"none":                        "var(--shadow-none)",
	},

	CategoryTransition: {
		"0.15s": "var(--transition-fast)",
		"0.2s":  "var(--transition-fast)",
		"150ms": "var(--transition-fast)",
		"200ms": "var(--transition-fast)",
		"0.3s":  "var(--transition-normal)",
		"300ms": "var(--transition-normal)",
		"0.5s":  "var(--transition-slow)",
		"500ms": "var(--transition-slow)",
	},

	CategoryBreakpoints: {
		"576px":  "var(--breakpoint-sm)",
		"768px":  "var(--breakpoint-md)",
		"992px":  "var(--breakpoint-lg)",
		"1200px": "var(--breakpoint-xl)",
		"1400px": "var(--breakpoint-xxl)",
	},
}

// defaultPatterns is the built-in pattern layer, ordered. The first pattern
// that matches a token wins.
var defaultPatterns = map[string][]PatternSpec{
	CategoryColors: {
		{Match: `^#(?:fff|ffffff)$`, Replace: "var(--color-background)"},
		{Match: `^#(?:000|000000)$`, Replace: "var(--color-text-primary)"},
	},
	CategorySpacing: {
		{Match: `^0(?:px|rem|em|%)$`, Replace: "0"},
	},
}

// categoriesFor picks the category chain consulted for a property's values.
// The second result reports that the property has no affinity, in which case
// lookups scan every category's exact entries instead.
func categoriesFor(property string) ([]string, bool) {
	switch {
	case containsAny(property, "color", "background"):
		return []string{CategoryColors}, false
	case containsAny(property, "padding", "margin", "gap", "spacing"):
		return []string{CategorySpacing}, false
	case strings.Contains(property, "border-radius"):
		return []string{CategoryRadius}, false
	case strings.Contains(property, "font-size"):
		return []string{CategoryFontSize}, false
	case strings.Contains(property, "font-weight"):
		return []string{CategoryFontWeight}, false
	case strings.Contains(property, "shadow"):
		return []string{CategoryShadow}, false
	case strings.Contains(property, "transition"):
		return []string{CategoryTransition}, false
	case strings.Contains(property, "width"):
		// Width-family values are usually breakpoints; plain spacing
		// sizes are the fallback.
		return []string{CategoryBreakpoints, CategorySpacing}, false
	}
	return nil, true
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Categories lists every mapping category in scan order.
func Categories() []string {
	out := make([]string, len(allCategories))
	copy(out, allCategories)
	return out
}

// PrimaryCategory names the category consulted first for a property, or ""
// when the property has no category affinity.
func PrimaryCategory(property string) string {
	chain, scanAll := categoriesFor(strings.ToLower(property))
	if scanAll || len(chain) == 0 {
		return ""
	}
	return chain[0]
}
