package stylegen

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// WriteMarkdown writes the analysis report as a shareable Markdown document
func WriteMarkdown(w io.Writer, report *Report) error {
	var sb strings.Builder

	sb.WriteString("# Stylesheet Analysis Report\n\n")
	sb.WriteString(fmt.Sprintf("**Status:** %s\n\n", markdownStatusBadge(report)))

	var errors, warnings int
	for _, issue := range report.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}

	sb.WriteString("## Executive Summary\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| **Token Coverage** | %.1f%% |\n", report.Coverage))
	sb.WriteString(fmt.Sprintf("| **Mappable Values** | %d / %d |\n", report.MappableValues, report.Declarations))
	sb.WriteString(fmt.Sprintf("| **Rules** | %d |\n", report.Rules))
	sb.WriteString(fmt.Sprintf("| **Keyframes** | %d |\n", report.Keyframes))
	sb.WriteString(fmt.Sprintf("| **Components** | %d |\n", len(report.Components)))
	sb.WriteString(fmt.Sprintf("| **Issues** | %d (%d errors, %d warnings) |\n",
		len(report.Issues), errors, warnings))
	if report.Framework != "" {
		sb.WriteString(fmt.Sprintf("| **Framework** | %s |\n", report.Framework))
	}
	sb.WriteString("\n")

	if len(report.CategoryCoverage) > 0 {
		sb.WriteString("## Token Coverage by Category\n\n")
		sb.WriteString("| Category | Coverage |\n")
		sb.WriteString("|----------|----------|\n")
		cats := make([]string, 0, len(report.CategoryCoverage))
		for cat := range report.CategoryCoverage {
			cats = append(cats, cat)
		}
		sort.Strings(cats)
		for _, cat := range cats {
			sb.WriteString(fmt.Sprintf("| %s | %.1f%% |\n", cat, report.CategoryCoverage[cat]))
		}
		sb.WriteString("\n")
	}

	if len(report.Components) > 0 {
		sb.WriteString("## Components\n\n")
		sb.WriteString("| Component | Variants | Declarations |\n")
		sb.WriteString("|-----------|----------|-------------|\n")
		for _, c := range report.Components {
			variants := "-"
			if len(c.Variants) > 0 {
				quoted := make([]string, len(c.Variants))
				for i, v := range c.Variants {
					quoted[i] = "`" + escapeMarkdown(v) + "`"
				}
				variants = strings.Join(quoted, ", ")
			}
			sb.WriteString(fmt.Sprintf("| `%s` | %s | %d |\n",
				escapeMarkdown(c.Name), variants, c.Declarations))
		}
		sb.WriteString("\n")
	}

	if errors > 0 {
		sb.WriteString("## Errors\n\n")
		for _, issue := range report.Issues {
			if issue.Severity != SeverityError {
				continue
			}
			sb.WriteString(fmt.Sprintf("- **%d:%d** %s\n",
				issue.Pos.Line, issue.Pos.Column, escapeMarkdown(issue.Text)))
		}
		sb.WriteString("\n")
	}
	if warnings > 0 {
		sb.WriteString("## Warnings\n\n")
		for _, issue := range report.Issues {
			if issue.Severity != SeverityWarning {
				continue
			}
			sb.WriteString(fmt.Sprintf("- **%d:%d** %s\n",
				issue.Pos.Line, issue.Pos.Column, escapeMarkdown(issue.Text)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("---\n")
	sb.WriteString("*Generated by stylegen v1.0*\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// markdownStatusBadge picks the status line from coverage and error count
func markdownStatusBadge(report *Report) string {
	hasErrors := false
	for _, issue := range report.Issues {
		if issue.Severity == SeverityError {
			hasErrors = true
			break
		}
	}
	switch {
	case hasErrors:
		return "\U0001F534 Needs Attention"
	case report.Coverage >= 80:
		return "\U0001F7E2 Excellent"
	case report.Coverage >= 50:
		return "\U0001F7E1 Good Progress"
	default:
		return "\U0001F534 Needs Attention"
	}
}

// escapeMarkdown escapes pipe characters so values stay inside their table
// cells
func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
