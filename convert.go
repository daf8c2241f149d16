package stylegen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yacobolo/stylegen/internal/css"
	"github.com/yacobolo/stylegen/internal/group"
	"github.com/yacobolo/stylegen/internal/rustgen"
)

// ErrEmptyGroup is returned when grouping handed the generator a component
// with no style blocks. It signals a broken invariant upstream, not bad
// input: parsing never produces such a group.
var ErrEmptyGroup = rustgen.ErrEmptyGroup

// ParseError is fatal: the stylesheet is structurally broken beyond
// recovery. Only an unterminated block, string or comment qualifies;
// everything else degrades to warning issues.
type ParseError struct {
	Construct string // "block", "string" or "comment"
	Span      string // source excerpt at the failure
	Line      int    // 1-based
	Column    int    // 1-based
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unterminated %s at line %d, column %d: %q", e.Construct, e.Line, e.Column, e.Span)
}

// Unit is one generated Rust source file.
type Unit struct {
	Name   string // module name ("button", "styles", "mod")
	Path   string // suggested file name ("button.rs")
	Source string
}

// Result contains the generated units plus everything the pipeline
// reported along the way.
type Result struct {
	Units     []Unit
	Issues    []Issue
	Framework string // detected framework hint, "" when none

	Rules        int
	Keyframes    int
	Components   int
	Constructors int
}

// Convert parses a stylesheet and renders Rust style constructors for it.
// Recoverable problems come back as warning issues on the result; a fatal
// parse error aborts with a *ParseError.
func Convert(source string, opts Options) (*Result, error) {
	sheet, err := parseSource(source, opts)
	if err != nil {
		return nil, err
	}

	comps := group.Resolve(sheet.Rules, groupOptions(opts))

	table, err := opts.Overlay.table()
	if err != nil {
		return nil, err
	}

	gen := rustgen.NewGenerator(table, opts.Logger)
	units, renames, err := gen.Generate(comps, sheet.Keyframes, rustgen.Options{
		SplitModules:     opts.SplitModules,
		IncludeUtilities: opts.IncludeUtilities,
		EmitVariants:     true,
		UnitName:         opts.UnitName,
	})
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	result := &Result{
		Framework:  group.DetectFramework(source),
		Rules:      len(sheet.Rules),
		Keyframes:  len(sheet.Keyframes),
		Components: len(comps),
	}
	for _, u := range units {
		result.Units = append(result.Units, Unit(u))
		result.Constructors += strings.Count(u.Source, "pub fn ")
	}
	result.Issues = append(result.Issues, parseIssues(sheet.Warnings)...)
	for _, text := range renames {
		result.Issues = append(result.Issues, Issue{
			FromCheck: "generator",
			Text:      text,
			Severity:  SeverityWarning,
		})
	}
	return result, nil
}

// parseSource parses one stylesheet, translating the internal fatal error
// into the public type.
func parseSource(source string, opts Options) (*css.Stylesheet, error) {
	sheet, err := css.NewParser(opts.Logger).Parse(source)
	if err != nil {
		var perr *css.ParseError
		if errors.As(err, &perr) {
			return nil, &ParseError{
				Construct: perr.Construct,
				Span:      perr.Span,
				Line:      perr.Line,
				Column:    perr.Col,
			}
		}
		return nil, err
	}
	return sheet, nil
}

func groupOptions(opts Options) group.Options {
	var classifier group.Classifier
	if opts.Framework != "" {
		classifier = group.ClassifierFor(opts.Framework)
	}
	return group.Options{
		GroupComponents: opts.GroupComponents,
		ExtractVariants: opts.ExtractVariants,
		ExtraVariants:   opts.ExtraVariants,
		Classifier:      classifier,
	}
}

// parseIssues converts parser warnings into warning issues.
func parseIssues(warnings []css.Warning) []Issue {
	issues := make([]Issue, 0, len(warnings))
	for _, w := range warnings {
		issue := Issue{
			FromCheck: "css-parser",
			Text:      w.Message,
			Severity:  SeverityWarning,
			Pos:       IssuePos{Line: w.Line, Column: w.Col},
		}
		if w.Span != "" {
			issue.SourceLines = []string{w.Span}
		}
		issues = append(issues, issue)
	}
	return issues
}
