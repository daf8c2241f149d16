package stylegen

import (
	"io"
	"os"
)

// OutputFormat represents the report output format
type OutputFormat string

const (
	// OutputIssues shows diagnostics only in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows the stylesheet overview and token coverage
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + overview + component tree + coverage
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
	// OutputMarkdown generates a Markdown report (shareable reports)
	OutputMarkdown OutputFormat = "markdown"
)

// ReportConfig controls how diagnostics are printed
type ReportConfig struct {
	PrintSourceLines bool // Show source excerpts with issues (default: true)
	PrintCheckName   bool // Show (css-parser) suffix (default: true)
	UseColors        bool // Force color output (default: auto-detect)
}

// DetermineOutputFormat selects the appropriate output format based on flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit quiet flag wins (exit code only)
	if quiet {
		return OutputIssues // Issues only, will be suppressed by the caller
	}

	// Explicit format flag wins
	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	case "markdown", "md":
		return OutputMarkdown
	}

	// Invalid or empty format falls back to the default
	return DetermineDefaultOutputFormat()
}

// DetermineDefaultOutputFormat returns the default output format: the
// overview summary, which reads well everywhere.
func DetermineDefaultOutputFormat() OutputFormat {
	return OutputSummary
}

// WriteReport writes an analysis report in the specified format
func WriteReport(w io.Writer, report *Report, format OutputFormat, config ReportConfig) {
	switch format {
	case OutputIssues:
		// Issues only (golangci-lint format)
		reporter := NewReporter(w, config)
		reporter.PrintIssues(report.Issues)
		reporter.PrintSummary(report.Issues)

	case OutputSummary:
		// Overview and coverage only (no individual issues)
		useColors := shouldUseColors(config.UseColors)
		verboseReporter := NewVerboseReporter(w, useColors)
		verboseReporter.PrintOverview(report)
		verboseReporter.PrintCoverage(report)

	case OutputFull:
		// Everything: issues + overview + components + coverage
		reporter := NewReporter(w, config)
		reporter.PrintIssues(report.Issues)
		reporter.PrintSummary(report.Issues)

		verboseReporter := NewVerboseReporter(w, reporter.UseColors())
		verboseReporter.PrintOverview(report)
		verboseReporter.PrintComponents(report)
		verboseReporter.PrintCoverage(report)

	case OutputJSON:
		// JSON export
		if err := WriteJSON(w, report); err != nil {
			// Log error but don't crash
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}

	case OutputMarkdown:
		// Markdown report
		if err := WriteMarkdown(w, report); err != nil {
			// Log error but don't crash
			os.Stderr.WriteString("Error writing Markdown: " + err.Error() + "\n")
		}
	}
}
