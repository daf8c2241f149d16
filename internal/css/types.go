package css

import "fmt"

// Stylesheet is the parsed rule model: top-level rules in source order plus
// keyframe animations collected separately. Warnings accumulate everything
// the parser tolerated but could not fully represent.
type Stylesheet struct {
	Rules     []*Rule
	Keyframes []*Keyframes
	Warnings  []Warning
}

// Rule is one style rule. Pseudo-selector rules (.btn:hover) do not appear at
// the top level; they nest under the base rule for the same selector within
// the same media scope.
type Rule struct {
	Selector Selector
	Decls    []Declaration
	Nested   []*Rule
	Media    string
	Line     int

	synthetic bool
}

// Selector describes the subject of a rule. Base holds the selector text
// without the leading class/id sigil and without the pseudo part. Complex
// selectors (combinators, descendants, compounds) keep their full text in
// Base and are flagged so grouping can route them to the ungrouped bucket.
type Selector struct {
	Raw     string
	Base    string
	Pseudo  string
	Class   bool
	Complex bool
}

// Declaration is a single property: value pair. Important is set when the
// source carried !important; the flag is re-applied at generation time.
type Declaration struct {
	Property  string
	Value     string
	Important bool
	Line      int
}

// Keyframes is a parsed @keyframes block.
type Keyframes struct {
	Name   string
	Frames []Frame
	Line   int
}

// Frame is one frame selector (from, to, 0%, "0%, 100%") with its declarations.
type Frame struct {
	Selector string
	Decls    []Declaration
}

// Warning records a construct the parser skipped or simplified.
type Warning struct {
	Message string
	Span    string
	Line    int
	Col     int
}

func (w Warning) String() string {
	return fmt.Sprintf("%d:%d: %s", w.Line, w.Col, w.Message)
}

// ParseError is fatal: the input is structurally broken beyond recovery.
// Only three constructs qualify: an unterminated block, string or comment.
type ParseError struct {
	Construct string
	Span      string
	Line      int
	Col       int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unterminated %s at line %d, column %d: %q", e.Construct, e.Line, e.Col, e.Span)
}
