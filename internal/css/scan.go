package css

import "strings"

const spanLimit = 40

// scanStructure walks the raw input once and checks that every block, string
// and comment is terminated. These are the only conditions that abort a parse;
// everything else downstream is recoverable. Braces inside comments and
// strings do not count toward block depth.
func scanStructure(src string) *ParseError {
	var openBraces []int

	i := 0
	for i < len(src) {
		c := src[i]

		switch c {
		case '/':
			if i+1 < len(src) && src[i+1] == '*' {
				end := strings.Index(src[i+2:], "*/")
				if end < 0 {
					return newParseError(src, "comment", i)
				}
				i += 2 + end + 2
				continue
			}
		case '"', '\'':
			end, ok := scanString(src, i)
			if !ok {
				return newParseError(src, "string", i)
			}
			i = end + 1
			continue
		case '{':
			openBraces = append(openBraces, i)
		case '}':
			if len(openBraces) > 0 {
				openBraces = openBraces[:len(openBraces)-1]
			}
		}
		i++
	}

	if len(openBraces) > 0 {
		// Report the innermost unclosed block.
		return newParseError(src, "block", openBraces[len(openBraces)-1])
	}
	return nil
}

// scanString returns the index of the closing quote for the string opening at
// src[open]. Backslash escapes the following byte, including an escaped
// newline. A bare newline or end of input before the closing quote means the
// string never terminates.
func scanString(src string, open int) (int, bool) {
	quote := src[open]
	for i := open + 1; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case '\n':
			return 0, false
		case quote:
			return i, true
		}
	}
	return 0, false
}

func newParseError(src, construct string, offset int) *ParseError {
	line, col := positionAt(src, offset)
	return &ParseError{
		Construct: construct,
		Span:      spanAt(src, offset),
		Line:      line,
		Col:       col,
	}
}

// positionAt converts a byte offset into a 1-based line and column.
func positionAt(src string, offset int) (int, int) {
	if offset > len(src) {
		offset = len(src)
	}
	line := 1 + strings.Count(src[:offset], "\n")
	col := offset - strings.LastIndexByte(src[:offset], '\n')
	return line, col
}

// spanAt extracts the offending source text starting at offset, cut at the
// end of the line or spanLimit bytes, whichever comes first.
func spanAt(src string, offset int) string {
	if offset >= len(src) {
		return ""
	}
	end := len(src)
	if nl := strings.IndexByte(src[offset:], '\n'); nl >= 0 {
		end = offset + nl
	}
	if end > offset+spanLimit {
		end = offset + spanLimit
	}
	return strings.TrimRight(src[offset:end], " \t")
}
