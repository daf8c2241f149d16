package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/stylegen"
)

var validateCmd = &cobra.Command{
	Use:   "validate [source]",
	Short: "List convertibility problems in a stylesheet",
	Long: `Check a stylesheet for constructs that block or degrade conversion:
unterminated blocks, empty rules, malformed var() references, values
that pass through without token mapping.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runValidate,
}

func init() {
	f := validateCmd.Flags()
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.Float64("threshold", 0.0, "Minimum token coverage percentage for strict mode")
	f.Int("max-issues", 0, "Max issues to print (0=unlimited)")
	f.Bool("print-lines", true, "Show source excerpts with issues")
	f.Bool("print-check-name", true, "Show (check) suffix on issues")
}

func runValidate(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	issues, err := stylegen.Validate(string(data))
	if err != nil {
		return fmt.Errorf("validating %s: %w", args[0], err)
	}
	for i := range issues {
		issues[i].Pos.Filename = args[0]
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		shown := issues
		if max := getIntWithFallback("max-issues", "validate.max-issues", 0); max > 0 && len(shown) > max {
			shown = shown[:max]
		}
		reporter := stylegen.NewReporter(os.Stdout, reportConfig())
		reporter.PrintIssues(shown)
		reporter.PrintSummary(issues)
	}

	errorCount := 0
	for _, issue := range issues {
		if issue.Severity == stylegen.SeverityError {
			errorCount++
		}
	}

	// Exit code logic - "Soft Gate" approach
	strict := getBoolWithFallback("strict", "validate.strict", false)
	if strict {
		// Strict mode: any issue fails the build
		if len(issues) > 0 {
			os.Exit(1)
		}

		// Also check coverage threshold if specified
		threshold := getFloat64WithFallback("threshold", "validate.threshold", 0.0)
		if threshold > 0 {
			report, err := stylegen.Analyze(string(data), stylegen.DefaultOptions())
			if err != nil {
				return fmt.Errorf("computing coverage for %s: %w", args[0], err)
			}
			if report.Coverage < threshold {
				if !quiet {
					fmt.Fprintf(os.Stderr, "\nStrict mode: token coverage %.1f%% is below threshold %.1f%%\n",
						report.Coverage, threshold)
				}
				os.Exit(1)
			}
		}
	} else if errorCount > 0 {
		// Default "Soft Gate" mode: only errors fail the build
		os.Exit(1)
	}

	return nil
}
