package stylegen

import (
	"encoding/json"
	"io"
	"sort"
	"time"
)

// JSONReport represents the structured JSON export schema
type JSONReport struct {
	Version    string          `json:"version"`
	Timestamp  string          `json:"timestamp"`
	Framework  string          `json:"framework,omitempty"`
	Summary    JSONSummary     `json:"summary"`
	Coverage   JSONCoverage    `json:"coverage"`
	Components []JSONComponent `json:"components"`
	Issues     []JSONIssue     `json:"issues"`
}

// JSONSummary contains stylesheet structure counts
type JSONSummary struct {
	Rules            int `json:"rules"`
	Keyframes        int `json:"keyframes"`
	MediaRules       int `json:"media_rules"`
	PseudoRules      int `json:"pseudo_rules"`
	UniqueSelectors  int `json:"unique_selectors"`
	Declarations     int `json:"declarations"`
	UniqueProperties int `json:"unique_properties"`
}

// JSONCoverage contains token mapping coverage
type JSONCoverage struct {
	Percent        float64            `json:"percent"`
	MappableValues int                `json:"mappable_values"`
	TotalValues    int                `json:"total_values"`
	ByCategory     map[string]float64 `json:"by_category,omitempty"`
}

// JSONComponent represents a grouped component
type JSONComponent struct {
	Name         string   `json:"name"`
	Variants     []string `json:"variants,omitempty"`
	Declarations int      `json:"declarations"`
	Ungrouped    bool     `json:"ungrouped,omitempty"`
}

// JSONIssue represents a single diagnostic
type JSONIssue struct {
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Check    string `json:"check"`
	Source   string `json:"source,omitempty"` // Optional source excerpt
}

// WriteJSON writes the analysis report as JSON
func WriteJSON(w io.Writer, report *Report) error {
	output := buildJSONReport(report)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONReport converts a Report to the JSON schema
func buildJSONReport(report *Report) JSONReport {
	jsonIssues := make([]JSONIssue, len(report.Issues))
	for i, issue := range report.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Check:    issue.FromCheck,
			Source:   source,
		}
	}

	components := make([]JSONComponent, len(report.Components))
	for i, c := range report.Components {
		components[i] = JSONComponent{
			Name:         c.Name,
			Variants:     c.Variants,
			Declarations: c.Declarations,
			Ungrouped:    c.Ungrouped,
		}
	}
	sort.Slice(components, func(i, j int) bool { return components[i].Name < components[j].Name })

	return JSONReport{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Framework: report.Framework,
		Summary: JSONSummary{
			Rules:            report.Rules,
			Keyframes:        report.Keyframes,
			MediaRules:       report.MediaRules,
			PseudoRules:      report.PseudoRules,
			UniqueSelectors:  report.UniqueSelectors,
			Declarations:     report.Declarations,
			UniqueProperties: report.UniqueProperties,
		},
		Coverage: JSONCoverage{
			Percent:        report.Coverage,
			MappableValues: report.MappableValues,
			TotalValues:    report.Declarations,
			ByCategory:     report.CategoryCoverage,
		},
		Components: components,
		Issues:     jsonIssues,
	}
}
