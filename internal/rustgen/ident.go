package rustgen

import (
	"fmt"
	"strings"
)

// rustKeywords are reserved words that cannot name a function.
var rustKeywords = map[string]struct{}{
	"as": {}, "async": {}, "await": {}, "break": {}, "const": {},
	"continue": {}, "crate": {}, "dyn": {}, "else": {}, "enum": {},
	"extern": {}, "false": {}, "fn": {}, "for": {}, "if": {},
	"impl": {}, "in": {}, "let": {}, "loop": {}, "match": {},
	"mod": {}, "move": {}, "mut": {}, "pub": {}, "ref": {},
	"return": {}, "self": {}, "static": {}, "struct": {}, "super": {},
	"trait": {}, "true": {}, "type": {}, "unsafe": {}, "use": {},
	"where": {}, "while": {},
}

// Ident normalizes a name into a valid Rust identifier: lowercase, runs of
// any other characters collapse to single underscores, a leading digit gets a
// style_ prefix, and reserved words get a _style suffix. An empty result
// becomes "style".
func Ident(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))
	pending := false
	for _, r := range strings.ToLower(name) {
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
	id := sb.String()
	if id == "" {
		return "style"
	}
	if id[0] >= '0' && id[0] <= '9' {
		id = "style_" + id
	}
	if _, reserved := rustKeywords[id]; reserved {
		id += "_style"
	}
	return id
}

// identTable hands out unique identifiers within one generation run.
type identTable struct {
	used map[string]struct{}
}

func newIdentTable() *identTable {
	return &identTable{used: make(map[string]struct{})}
}

// claim reserves name, suffixing with the lowest free number on collision.
// The second result reports that a rename happened.
func (t *identTable) claim(name string) (string, bool) {
	if _, taken := t.used[name]; !taken {
		t.used[name] = struct{}{}
		return name, false
	}
	for i := 2; ; i++ {
		cand := fmt.Sprintf("%s%d", name, i)
		if _, taken := t.used[cand]; !taken {
			t.used[cand] = struct{}{}
			return cand, true
		}
	}
}
