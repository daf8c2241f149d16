package stylegen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	reporter := &Reporter{}

	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "    color: var(nope);",
			column:     12,
			want:       "           ^", // 11 spaces + caret
		},
		{
			name:       "tabs preserved",
			sourceLine: "\t\tpadding: 8px;",
			column:     11,
			want:       "\t\t        ^", // 2 tabs + 8 spaces + caret
		},
		{
			name:       "start of line",
			sourceLine: ".btn { color: red; }",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^", // Pads to line length only
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reporter.buildCaretIndicator(tt.sourceLine, tt.column)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPrintIssues_Format(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf, printLines: true, printCheckName: true}

	reporter.PrintIssues([]Issue{{
		FromCheck:   "style-check",
		Text:        "empty rule .empty has no declarations",
		Severity:    SeverityWarning,
		SourceLines: []string{".empty {}"},
		Pos:         IssuePos{Filename: "app.css", Line: 5, Column: 1},
	}})

	want := "app.css:5:1: empty rule .empty has no declarations (style-check)\n" +
		"\t.empty {}\n" +
		"\t^\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintIssues_WithoutCheckName(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf}

	reporter.PrintIssues([]Issue{{
		FromCheck: "css-parser",
		Text:      "unexpected '}' skipped",
		Pos:       IssuePos{Filename: "app.css", Line: 2, Column: 3},
	}})

	assert.Equal(t, "app.css:2:3: unexpected '}' skipped\n", buf.String())
}

func TestPrintIssues_WithoutSourceLines(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf, printCheckName: true}

	reporter.PrintIssues([]Issue{{
		FromCheck:   "style-check",
		Text:        "something",
		SourceLines: []string{".x { }"},
		Pos:         IssuePos{Filename: "a.css", Line: 1, Column: 1},
	}})

	assert.NotContains(t, buf.String(), "\t.x { }")
}

func TestPrintIssues_SortsByPosition(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf}

	reporter.PrintIssues([]Issue{
		{Text: "third", Pos: IssuePos{Filename: "b.css", Line: 1, Column: 1}},
		{Text: "second", Pos: IssuePos{Filename: "a.css", Line: 9, Column: 1}},
		{Text: "first", Pos: IssuePos{Filename: "a.css", Line: 2, Column: 4}},
	})

	out := buf.String()
	first := strings.Index(out, "first")
	second := strings.Index(out, "second")
	third := strings.Index(out, "third")
	require.GreaterOrEqual(t, first, 0)
	assert.Less(t, first, second)
	assert.Less(t, second, third)
}

func TestPrintSummary_MixedSeverities(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf}

	reporter.PrintSummary([]Issue{
		{FromCheck: "css-parser", Severity: SeverityError},
		{FromCheck: "css-parser", Severity: SeverityError},
		{FromCheck: "style-check", Severity: SeverityWarning},
	})

	out := buf.String()
	assert.Contains(t, out, "3 issues (2 errors, 1 warning):")
	assert.Contains(t, out, "* css-parser: 2")
	assert.Contains(t, out, "* style-check: 1")
	assert.Contains(t, out, "Hint: Run with --format full")
}

func TestPrintSummary_WarningsOnly(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf}

	reporter.PrintSummary([]Issue{
		{FromCheck: "style-check", Severity: SeverityWarning},
		{FromCheck: "style-check", Severity: SeverityWarning},
	})

	out := buf.String()
	assert.Contains(t, out, "2 issues:")
	assert.NotContains(t, out, "errors")
}

func TestPrintSummary_NoIssues(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf}

	reporter.PrintSummary(nil)

	out := buf.String()
	assert.Contains(t, out, "0 issues:")
	assert.NotContains(t, out, "Hint")
}

func TestPluralizeCount(t *testing.T) {
	assert.Equal(t, "1 issue", pluralizeCount(1, "issue", "issues"))
	assert.Equal(t, "2 issues", pluralizeCount(2, "issue", "issues"))
	assert.Equal(t, "0 issues", pluralizeCount(0, "issue", "issues"))
	assert.Equal(t, "1 declaration", pluralizeCount(1, "declaration", "declarations"))
}

func TestRenderStyle_Disabled(t *testing.T) {
	assert.Equal(t, "plain", RenderStyle(StyleCyan, "plain", false))
}

func TestRenderStyle_EnabledKeepsText(t *testing.T) {
	assert.Contains(t, RenderStyle(StyleRed, "message", true), "message")
}

func TestVerboseReporter_PrintOverview(t *testing.T) {
	var buf bytes.Buffer
	reporter := &VerboseReporter{w: &buf}

	reporter.PrintOverview(sampleReport())

	out := buf.String()
	assert.Contains(t, out, "Stylesheet Overview")
	assert.Contains(t, out, "Framework:          bootstrap")
	assert.Contains(t, out, "Rules:              4")
	assert.Contains(t, out, "Keyframes:          1")
	assert.Contains(t, out, "Media rules:        1")
	assert.Contains(t, out, "Pseudo rules:       2")
	assert.Contains(t, out, "Unique selectors:   5")
	assert.Contains(t, out, "Declarations:       10")
	assert.Contains(t, out, "Unique properties:  6")
}

func TestVerboseReporter_PrintOverview_NoFramework(t *testing.T) {
	var buf bytes.Buffer
	reporter := &VerboseReporter{w: &buf}

	reporter.PrintOverview(&Report{})

	assert.NotContains(t, buf.String(), "Framework:")
}

func TestVerboseReporter_PrintComponents_NaturalOrder(t *testing.T) {
	var buf bytes.Buffer
	reporter := &VerboseReporter{w: &buf}

	reporter.PrintComponents(&Report{
		Components: []ComponentSummary{
			{Name: "nav10", Declarations: 2},
			{Name: "nav2", Declarations: 1},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "components (2)")
	assert.Contains(t, out, "nav2 (1 declaration)")
	assert.Contains(t, out, "nav10 (2 declarations)")
	assert.Less(t, strings.Index(out, "nav2 ("), strings.Index(out, "nav10 ("))
}

func TestVerboseReporter_PrintComponents_VariantsAndUngrouped(t *testing.T) {
	var buf bytes.Buffer
	reporter := &VerboseReporter{w: &buf}

	reporter.PrintComponents(&Report{
		Components: []ComponentSummary{
			{Name: "btn", Variants: []string{"primary", "large"}, Declarations: 6},
			{Name: "body", Declarations: 1, Ungrouped: true},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "btn (6 declarations)")
	assert.Contains(t, out, "primary")
	assert.Contains(t, out, "large")
	assert.Contains(t, out, "body (1 declaration) [ungrouped]")
}

func TestVerboseReporter_PrintComponents_Empty(t *testing.T) {
	var buf bytes.Buffer
	reporter := &VerboseReporter{w: &buf}

	reporter.PrintComponents(&Report{})

	assert.Empty(t, buf.String())
}

func TestVerboseReporter_PrintCoverage(t *testing.T) {
	var buf bytes.Buffer
	reporter := &VerboseReporter{w: &buf}

	reporter.PrintCoverage(&Report{
		Coverage:         50.0,
		MappableValues:   5,
		Declarations:     10,
		CategoryCoverage: map[string]float64{"colors": 100.0, "spacing": 25.0},
	})

	out := buf.String()
	assert.Contains(t, out, "Token Coverage")
	assert.Contains(t, out, "[██████████░░░░░░░░░░] 50.0%")
	assert.Contains(t, out, "5 of 10 values map to design tokens")
	assert.Contains(t, out, "colors")
	assert.Contains(t, out, "100.0%")
	assert.Contains(t, out, "spacing")
	assert.Contains(t, out, "25.0%")
}

func TestProgressBar_Bounds(t *testing.T) {
	var empty bytes.Buffer
	printProgressBar(&empty, 0)
	assert.Contains(t, empty.String(), "[░░░░░░░░░░░░░░░░░░░░] 0.0%")

	var full bytes.Buffer
	printProgressBar(&full, 100)
	assert.Contains(t, full.String(), "[████████████████████] 100.0%")
}
