package css

import (
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser turns stylesheet text into a Stylesheet model.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a parser. A nil logger disables debug output.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse builds the rule model. It returns a *ParseError only when the input
// has an unterminated block, string or comment; every other oddity is
// recorded as a Warning on the returned Stylesheet.
func (p *Parser) Parse(content string) (*Stylesheet, error) {
	if perr := scanStructure(content); perr != nil {
		p.log.Debug("structural scan failed",
			zap.String("construct", perr.Construct),
			zap.Int("line", perr.Line),
			zap.Int("col", perr.Col))
		return nil, perr
	}

	w := &walker{
		lexer: css.NewLexer(parse.NewInputString(content)),
		src:   content,
		log:   p.log,
		sheet: &Stylesheet{},
		bases: make(map[baseKey]*Rule),
	}
	w.parseRules("", 0)

	p.log.Debug("parsed stylesheet",
		zap.Int("rules", len(w.sheet.Rules)),
		zap.Int("keyframes", len(w.sheet.Keyframes)),
		zap.Int("warnings", len(w.sheet.Warnings)))
	return w.sheet, nil
}

// baseKey identifies the base rule a pseudo-selector rule nests under.
// Class and element selectors with the same name stay distinct.
type baseKey struct {
	base  string
	media string
	class bool
}

type walker struct {
	lexer *css.Lexer
	src   string
	log   *zap.Logger
	sheet *Stylesheet
	bases map[baseKey]*Rule

	// offset is the byte position of the next unread token; tokOffset is the
	// position of the token most recently returned by next. Summing token
	// lengths keeps positions exact without re-reading the input.
	offset    int
	tokOffset int
}

func (w *walker) next() (css.TokenType, []byte) {
	tt, data := w.lexer.Next()
	w.tokOffset = w.offset
	w.offset += len(data)
	return tt, data
}

func (w *walker) warnAt(offset int, msg string) {
	if offset < 0 {
		offset = w.tokOffset
	}
	line, col := positionAt(w.src, offset)
	w.sheet.Warnings = append(w.sheet.Warnings, Warning{
		Message: msg,
		Span:    spanAt(w.src, offset),
		Line:    line,
		Col:     col,
	})
	w.log.Debug("parse warning", zap.String("warning", msg), zap.Int("line", line))
}

// parseRules consumes rulesets and at-rules until end of input, or until the
// closing brace of the enclosing scope when depth > 0.
func (w *walker) parseRules(media string, depth int) {
	for {
		tt, data := w.next()
		switch tt {
		case css.ErrorToken:
			return
		case css.WhitespaceToken, css.CommentToken, css.SemicolonToken:
			continue
		case css.RightBraceToken:
			if depth > 0 {
				return
			}
			w.warnAt(w.tokOffset, "unexpected '}' skipped")
		case css.AtKeywordToken:
			w.handleAtRule(string(data), media, depth)
		default:
			if w.handleRuleset(data, media) && depth > 0 {
				return
			}
		}
	}
}

func (w *walker) handleAtRule(name, media string, depth int) {
	start := w.tokOffset
	switch strings.ToLower(name) {
	case "@media":
		cond, open := w.collectPrelude()
		if !open {
			w.warnAt(start, "@media without a block skipped")
			return
		}
		if media != "" {
			w.warnAt(start, "nested @media keeps the innermost condition")
		}
		w.log.Debug("entering @media block", zap.String("condition", cond))
		w.parseRules(cond, depth+1)
	case "@keyframes", "@-webkit-keyframes":
		w.parseKeyframes(start)
	default:
		_, open := w.collectPrelude()
		if open {
			w.skipBlock()
		}
		w.warnAt(start, fmt.Sprintf("unsupported at-rule %s skipped", name))
		w.log.Debug("skipping at-rule", zap.String("rule", name))
	}
}

// collectPrelude gathers tokens up to the opening brace of a block (true) or
// a terminating semicolon / end of input (false).
func (w *walker) collectPrelude() (string, bool) {
	var sb strings.Builder
	for {
		tt, data := w.next()
		switch tt {
		case css.ErrorToken, css.SemicolonToken:
			return collapseSpace(sb.String()), false
		case css.LeftBraceToken:
			return collapseSpace(sb.String()), true
		case css.CommentToken:
			continue
		default:
			sb.Write(data)
		}
	}
}

// skipBlock discards tokens until the brace that closes the already-open
// block, counting nested blocks on the way.
func (w *walker) skipBlock() {
	depth := 1
	for depth > 0 {
		tt, _ := w.next()
		switch tt {
		case css.ErrorToken:
			return
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			depth--
		}
	}
}

func (w *walker) parseKeyframes(start int) {
	prelude, open := w.collectPrelude()
	if !open {
		w.warnAt(start, "@keyframes without a block skipped")
		return
	}
	name := unquote(strings.TrimSpace(prelude))
	if name == "" {
		w.warnAt(start, "@keyframes without a name skipped")
		w.skipBlock()
		return
	}

	line, _ := positionAt(w.src, start)
	kf := &Keyframes{Name: name, Line: line}
	for {
		sel, open, done := w.collectFrameSelector()
		if done {
			break
		}
		if !open {
			continue
		}
		decls := w.parseDeclarations()
		if sel == "" {
			w.warnAt(w.tokOffset, "keyframe frame without a selector skipped")
			continue
		}
		kf.Frames = append(kf.Frames, Frame{Selector: sel, Decls: decls})
	}

	if len(kf.Frames) == 0 {
		w.warnAt(start, fmt.Sprintf("empty @keyframes %s skipped", kf.Name))
		return
	}
	w.sheet.Keyframes = append(w.sheet.Keyframes, kf)
	w.log.Debug("parsed @keyframes", zap.String("name", kf.Name), zap.Int("frames", len(kf.Frames)))
}

// collectFrameSelector reads the next frame selector inside a @keyframes
// block. done reports that the block (or input) ended before a frame opened.
func (w *walker) collectFrameSelector() (sel string, open, done bool) {
	var sb strings.Builder
	for {
		tt, data := w.next()
		switch tt {
		case css.ErrorToken, css.RightBraceToken:
			return "", false, true
		case css.LeftBraceToken:
			return collapseSpace(sb.String()), true, false
		case css.CommentToken, css.SemicolonToken:
			continue
		default:
			sb.Write(data)
		}
	}
}

// handleRuleset accumulates a selector list and parses its declaration block.
// data is the first selector token, already consumed by the caller. The
// return value reports that a stray '}' closed the enclosing scope.
func (w *walker) handleRuleset(data []byte, media string) bool {
	start := w.tokOffset
	var sb strings.Builder
	sb.Write(data)
	for {
		tt, data := w.next()
		switch tt {
		case css.ErrorToken:
			return false
		case css.SemicolonToken:
			w.warnAt(start, "stray tokens before ';' skipped")
			return false
		case css.RightBraceToken:
			w.warnAt(start, "stray tokens before '}' skipped")
			return true
		case css.LeftBraceToken:
			w.addRules(sb.String(), w.parseDeclarations(), media, start)
			return false
		case css.CommentToken:
			continue
		default:
			sb.Write(data)
		}
	}
}

// parseDeclarations reads property: value pairs until the block closes.
func (w *walker) parseDeclarations() []Declaration {
	var decls []Declaration
	var prop, val strings.Builder
	sawColon := false
	declStart := -1

	flush := func() {
		p := strings.TrimSpace(prop.String())
		raw := collapseSpace(val.String())
		v, important := splitImportant(raw)
		switch {
		case p == "" && raw == "" && !sawColon:
			// nothing accumulated
		case !sawColon || p == "" || v == "":
			w.warnAt(declStart, "unparseable declaration skipped")
		default:
			line, _ := positionAt(w.src, declStart)
			decls = append(decls, Declaration{
				Property:  strings.ToLower(p),
				Value:     v,
				Important: important,
				Line:      line,
			})
		}
		prop.Reset()
		val.Reset()
		sawColon = false
		declStart = -1
	}

	for {
		tt, data := w.next()
		switch tt {
		case css.ErrorToken, css.RightBraceToken:
			flush()
			return decls
		case css.CommentToken:
			continue
		case css.SemicolonToken:
			flush()
		case css.ColonToken:
			if sawColon {
				val.WriteByte(':')
			} else {
				sawColon = true
			}
		case css.LeftBraceToken:
			w.warnAt(w.tokOffset, "nested block inside declarations skipped")
			w.skipBlock()
			prop.Reset()
			val.Reset()
			sawColon = false
			declStart = -1
		default:
			if declStart < 0 && tt != css.WhitespaceToken {
				declStart = w.tokOffset
			}
			if sawColon {
				val.Write(data)
			} else {
				prop.Write(data)
			}
		}
	}
}

func (w *walker) addRules(raw string, decls []Declaration, media string, start int) {
	line, _ := positionAt(w.src, start)
	for _, part := range strings.Split(raw, ",") {
		sel, ok := w.parseSelector(part, start)
		if !ok {
			continue
		}
		// Each selector of a grouped list owns its own declaration copies.
		dc := make([]Declaration, len(decls))
		copy(dc, decls)
		w.attach(sel, dc, media, line)
	}
}

func (w *walker) parseSelector(part string, start int) (Selector, bool) {
	raw := collapseSpace(part)
	if raw == "" {
		return Selector{}, false
	}
	if strings.Contains(raw, "[") {
		w.warnAt(start, fmt.Sprintf("unsupported attribute selector skipped: %s", raw))
		return Selector{}, false
	}

	sel := Selector{Raw: raw}
	if strings.ContainsAny(raw, " >+~") {
		sel.Base = raw
		sel.Complex = true
		w.warnAt(start, fmt.Sprintf("complex selector kept without scoping: %s", raw))
		return sel, true
	}

	base := raw
	switch {
	case strings.HasPrefix(base, "."):
		sel.Class = true
		base = base[1:]
	case strings.HasPrefix(base, "#"):
		base = base[1:]
	}

	// Split off the pseudo part; a pseudo-only subject such as :root keeps
	// its name as the base.
	if i := strings.Index(base, ":"); i > 0 {
		sel.Pseudo = base[i:]
		base = base[:i]
	} else if i == 0 {
		base = strings.TrimLeft(base, ":")
	}
	if base == "" {
		w.warnAt(start, fmt.Sprintf("selector without a usable base skipped: %s", raw))
		return Selector{}, false
	}
	if strings.ContainsAny(base, ".#") {
		// compound selector, stays whole and ungrouped
		sel.Complex = true
	}
	sel.Base = base
	return sel, true
}

func (w *walker) attach(sel Selector, decls []Declaration, media string, line int) {
	if sel.Complex {
		w.sheet.Rules = append(w.sheet.Rules, &Rule{Selector: sel, Decls: decls, Media: media, Line: line})
		return
	}

	key := baseKey{base: sel.Base, media: media, class: sel.Class}
	if sel.Pseudo != "" {
		base, ok := w.bases[key]
		if !ok {
			baseSel := sel
			baseSel.Pseudo = ""
			baseSel.Raw = strings.TrimSuffix(sel.Raw, sel.Pseudo)
			base = &Rule{Selector: baseSel, Media: media, Line: line, synthetic: true}
			w.bases[key] = base
			w.sheet.Rules = append(w.sheet.Rules, base)
		}
		base.Nested = append(base.Nested, &Rule{Selector: sel, Decls: decls, Media: media, Line: line})
		return
	}

	if base, ok := w.bases[key]; ok && base.synthetic {
		base.Decls = decls
		base.synthetic = false
		return
	}
	r := &Rule{Selector: sel, Decls: decls, Media: media, Line: line}
	if _, ok := w.bases[key]; !ok {
		w.bases[key] = r
	}
	w.sheet.Rules = append(w.sheet.Rules, r)
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func splitImportant(v string) (string, bool) {
	i := strings.LastIndexByte(v, '!')
	if i < 0 {
		return v, false
	}
	if strings.EqualFold(strings.TrimSpace(v[i+1:]), "important") {
		return strings.TrimSpace(v[:i]), true
	}
	return v, false
}

func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
