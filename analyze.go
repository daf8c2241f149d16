package stylegen

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/yacobolo/stylegen/internal/css"
	"github.com/yacobolo/stylegen/internal/group"
	"github.com/yacobolo/stylegen/internal/theme"
)

// Report summarizes a stylesheet without generating code.
type Report struct {
	Framework string // detected framework hint, "" when none

	Rules            int
	Keyframes        int
	MediaRules       int // rules carrying a media condition
	PseudoRules      int // pseudo-state rules nested under their base
	UniqueSelectors  int
	Declarations     int
	UniqueProperties int

	Components []ComponentSummary

	// MappableValues counts declaration values the mapping table resolves
	// to design tokens; Coverage is the percentage over all declarations.
	MappableValues   int
	Coverage         float64
	CategoryCoverage map[string]float64

	Issues []Issue // parse warnings encountered on the way
}

// ComponentSummary is the per-component slice of a report.
type ComponentSummary struct {
	Name         string
	Variants     []string
	Declarations int
	Ungrouped    bool
}

// Analyze parses a stylesheet and reports its structure and token coverage.
// Grouping and overlay options shape the report the same way they would
// shape a conversion.
func Analyze(source string, opts Options) (*Report, error) {
	sheet, err := parseSource(source, opts)
	if err != nil {
		return nil, err
	}
	table, err := opts.Overlay.table()
	if err != nil {
		return nil, err
	}

	report := &Report{
		Framework:        group.DetectFramework(source),
		Rules:            len(sheet.Rules),
		Keyframes:        len(sheet.Keyframes),
		CategoryCoverage: make(map[string]float64),
		Issues:           parseIssues(sheet.Warnings),
	}

	selectors := make(map[string]struct{})
	properties := make(map[string]struct{})
	catTotal := make(map[string]int)
	catMapped := make(map[string]int)

	countDecls := func(decls []css.Declaration) {
		for _, d := range decls {
			report.Declarations++
			properties[d.Property] = struct{}{}
			_, mapped := table.Map(d.Property, d.Value)
			if mapped {
				report.MappableValues++
			}
			if cat := theme.PrimaryCategory(d.Property); cat != "" {
				catTotal[cat]++
				if mapped {
					catMapped[cat]++
				}
			}
		}
	}

	for _, r := range sheet.Rules {
		if r.Media != "" {
			report.MediaRules++
		}
		// Bases that only anchor pseudo rules do not count as selectors of
		// their own.
		if len(r.Decls) > 0 || len(r.Nested) == 0 {
			selectors[r.Selector.Raw] = struct{}{}
		}
		countDecls(r.Decls)
		for _, n := range r.Nested {
			report.PseudoRules++
			selectors[n.Selector.Raw] = struct{}{}
			countDecls(n.Decls)
		}
	}
	for _, kf := range sheet.Keyframes {
		for _, f := range kf.Frames {
			countDecls(f.Decls)
		}
	}

	report.UniqueSelectors = len(selectors)
	report.UniqueProperties = len(properties)
	if report.Declarations > 0 {
		report.Coverage = float64(report.MappableValues) / float64(report.Declarations) * 100
	}
	for cat, total := range catTotal {
		report.CategoryCoverage[cat] = float64(catMapped[cat]) / float64(total) * 100
	}

	for _, c := range group.Resolve(sheet.Rules, groupOptions(opts)) {
		report.Components = append(report.Components, summarize(c))
	}
	return report, nil
}

func summarize(c *group.Component) ComponentSummary {
	s := ComponentSummary{Name: c.Name, Ungrouped: c.Ungrouped}
	for _, b := range c.Base {
		s.Declarations += len(b.Decls)
	}
	for _, v := range c.Variants {
		s.Variants = append(s.Variants, v.Name)
		for _, b := range v.Blocks {
			s.Declarations += len(b.Decls)
		}
	}
	return s
}

// Validate lists convertibility problems as issues. Malformed input never
// fails the call: a structurally broken stylesheet comes back as a single
// error-severity issue.
func Validate(source string) ([]Issue, error) {
	sheet, err := css.NewParser(nil).Parse(source)
	if err != nil {
		var perr *css.ParseError
		if errors.As(err, &perr) {
			issue := Issue{
				FromCheck: "css-parser",
				Text:      fmt.Sprintf(IssueUnterminated, perr.Construct),
				Severity:  SeverityError,
				Pos:       IssuePos{Line: perr.Line, Column: perr.Col},
			}
			if perr.Span != "" {
				issue.SourceLines = []string{perr.Span}
			}
			return []Issue{issue}, nil
		}
		return nil, err
	}

	issues := parseIssues(sheet.Warnings)
	for _, r := range sheet.Rules {
		if len(r.Decls) == 0 && len(r.Nested) == 0 {
			issues = append(issues, Issue{
				FromCheck: "style-check",
				Text:      fmt.Sprintf(IssueEmptyRule, r.Selector.Raw),
				Severity:  SeverityWarning,
				Pos:       IssuePos{Line: r.Line, Column: 1},
			})
		}
		issues = append(issues, checkDuplicates(r.Selector.Raw, r.Decls)...)
		issues = append(issues, checkValues(r.Decls)...)
		for _, n := range r.Nested {
			issues = append(issues, checkDuplicates(n.Selector.Raw, n.Decls)...)
			issues = append(issues, checkValues(n.Decls)...)
		}
	}
	for _, kf := range sheet.Keyframes {
		for _, f := range kf.Frames {
			issues = append(issues, checkValues(f.Decls)...)
		}
	}

	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})
	return issues, nil
}

// checkDuplicates flags properties declared more than once in one scope.
func checkDuplicates(scope string, decls []css.Declaration) []Issue {
	counts := make(map[string]int, len(decls))
	last := make(map[string]int, len(decls))
	for _, d := range decls {
		counts[d.Property]++
		last[d.Property] = d.Line
	}

	var issues []Issue
	reported := make(map[string]bool)
	for _, d := range decls {
		n := counts[d.Property]
		if n < 2 || reported[d.Property] {
			continue
		}
		reported[d.Property] = true
		issues = append(issues, Issue{
			FromCheck:   "style-check",
			Text:        fmt.Sprintf(IssueDuplicateProperty, d.Property, n),
			Severity:    SeverityInfo,
			SourceLines: []string{scope},
			Pos:         IssuePos{Line: last[d.Property], Column: 1},
		})
	}
	return issues
}

// checkValues runs the per-declaration value checks: calc() expressions the
// mapper cannot rewrite, and var() references missing the custom property
// dashes.
func checkValues(decls []css.Declaration) []Issue {
	var issues []Issue
	for _, d := range decls {
		if strings.Contains(d.Value, "calc(") {
			issues = append(issues, Issue{
				FromCheck: "style-check",
				Text:      fmt.Sprintf(IssueCalcValue, d.Value),
				Severity:  SeverityInfo,
				Pos:       IssuePos{Line: d.Line, Column: 1},
			})
		}
		issues = append(issues, checkVarReferences(d)...)
	}
	return issues
}

func checkVarReferences(d css.Declaration) []Issue {
	var issues []Issue
	value := d.Value
	for at := 0; ; {
		i := strings.Index(value[at:], "var(")
		if i < 0 {
			break
		}
		at += i + len("var(")
		inner := value[at:]
		if strings.HasPrefix(strings.TrimLeft(inner, " "), "--") {
			continue
		}
		issue := Issue{
			FromCheck:   "style-check",
			Text:        fmt.Sprintf(IssueVarReference, d.Value),
			Severity:    SeverityWarning,
			SourceLines: []string{d.Property + ": " + d.Value},
			Pos:         IssuePos{Line: d.Line, Column: 1},
		}
		if end := strings.IndexByte(inner, ')'); end >= 0 {
			name := strings.TrimSpace(inner[:end])
			issue.Replacement = &Replacement{
				NewText:      "var(--" + name + ")",
				InlineLength: len("var(") + end + 1,
			}
		}
		issues = append(issues, issue)
	}
	return issues
}
