package theme

import "strings"

// Map resolves a declaration value. The property name selects the category
// chain; resolution per candidate value is user exact, default exact, user
// patterns, default patterns, identity. When the whole value does not match,
// multi-token shorthands map each token independently and rejoin with the
// original separators. The second result reports whether any substitution
// applied; on a full miss the value comes back verbatim.
func (t *Table) Map(property, value string) (string, bool) {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return raw, false
	}
	chain, scanAll := categoriesFor(strings.ToLower(property))

	if out, ok := t.resolve(chain, scanAll, raw); ok {
		return out, true
	}

	pieces := splitValue(raw)
	tokens := 0
	for _, p := range pieces {
		if !p.sep {
			tokens++
		}
	}
	if tokens < 2 {
		return raw, false
	}

	hit := false
	var sb strings.Builder
	for _, p := range pieces {
		if p.sep {
			sb.WriteString(p.text)
			continue
		}
		if out, ok := t.resolve(chain, scanAll, p.text); ok {
			sb.WriteString(out)
			hit = true
		} else {
			sb.WriteString(p.text)
		}
	}
	if !hit {
		return raw, false
	}
	return sb.String(), true
}

// resolve runs the lookup ladder for one candidate value. Categories are
// consulted in chain order; within a category the user layer always comes
// first. Properties without a category affinity scan every category but only
// its exact entries, so pattern rewrites never fire for them.
func (t *Table) resolve(chain []string, scanAll bool, value string) (string, bool) {
	key := canon(value)
	if scanAll {
		for _, cat := range allCategories {
			if out, ok := t.user.values[cat][key]; ok {
				return out, true
			}
			if out, ok := t.def.values[cat][key]; ok {
				return out, true
			}
		}
		return "", false
	}
	for _, cat := range chain {
		if out, ok := t.user.values[cat][key]; ok {
			return out, true
		}
		if out, ok := t.def.values[cat][key]; ok {
			return out, true
		}
		if out, ok := matchPatterns(t.user.patterns[cat], key); ok {
			return out, true
		}
		if out, ok := matchPatterns(t.def.patterns[cat], key); ok {
			return out, true
		}
	}
	return "", false
}

func matchPatterns(ps []pattern, key string) (string, bool) {
	for _, p := range ps {
		if p.re.MatchString(key) {
			return p.re.ReplaceAllString(key, p.replace), true
		}
	}
	return "", false
}

type piece struct {
	text string
	sep  bool
}

// splitValue cuts a value at whitespace and commas outside parentheses, so a
// function call such as rgba(0, 0, 0, 0.5) stays one token. Separator runs
// are kept verbatim for rejoining.
func splitValue(v string) []piece {
	var pieces []piece
	depth := 0
	start := 0
	inSep := false
	flush := func(end int) {
		if end > start {
			pieces = append(pieces, piece{text: v[start:end], sep: inSep})
		}
		start = end
	}
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		}
		isSep := depth == 0 && (v[i] == ' ' || v[i] == '\t' || v[i] == ',')
		if isSep != inSep {
			flush(i)
			inSep = isSep
		}
	}
	flush(len(v))
	return pieces
}
