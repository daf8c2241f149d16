package group

// defaultVariants is the vocabulary consulted when splitting a selector base
// into (component, variant). A suffix outside this set stays part of the
// component name, so .navbar-brand is one component rather than a brand
// variant of navbar.
var defaultVariants = map[string]struct{}{
	"primary":   {},
	"secondary": {},
	"success":   {},
	"danger":    {},
	"warning":   {},
	"info":      {},
	"light":     {},
	"dark":      {},
	"small":     {},
	"sm":        {},
	"large":     {},
	"lg":        {},
	"xl":        {},
	"xs":        {},
	"outline":   {},
	"solid":     {},
	"ghost":     {},
	"link":      {},
	"disabled":  {},
	"active":    {},
}

func variantSet(extra []string) map[string]struct{} {
	if len(extra) == 0 {
		return defaultVariants
	}
	set := make(map[string]struct{}, len(defaultVariants)+len(extra))
	for v := range defaultVariants {
		set[v] = struct{}{}
	}
	for _, v := range extra {
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}
