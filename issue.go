package stylegen

// Issue represents a single diagnostic in golangci-lint issue format
type Issue struct {
	FromCheck   string       `json:"FromCheck"`   // "css-parser", "generator", "style-check"
	Text        string       `json:"Text"`        // "empty rule .spacer has no declarations"
	Severity    string       `json:"Severity"`    // "", "warning", "error"
	SourceLines []string     `json:"SourceLines"` // Source excerpt at the issue
	Pos         IssuePos     `json:"Pos"`         // Location in the stylesheet
	Replacement *Replacement `json:"Replacement"` // Optional fix suggestion
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "" when the source came from a string
	Line     int    `json:"Line"`     // 1-based
	Column   int    `json:"Column"`   // 1-based
}

// Replacement provides an automated fix suggestion
type Replacement struct {
	NewText      string // "var(--color-primary)"
	InlineLength int    // Length of text to replace
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Issue message formats shared by validation and its tests
const (
	IssueUnterminated      = "unterminated %s prevents conversion"
	IssueEmptyRule         = "empty rule %s has no declarations"
	IssueCalcValue         = "calc() value passes through without token mapping: %s"
	IssueVarReference      = "var() reference is missing the custom property dashes: %s"
	IssueDuplicateProperty = "property %s is declared %d times in one rule; the last value wins"
)
