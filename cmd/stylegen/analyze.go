package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/stylegen"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [source]",
	Short: "Report stylesheet structure and token coverage",
	Long: `Parse a stylesheet and report its structure: rule and keyframe counts,
component grouping, and how much of it maps onto design tokens.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.String("format", "", "Output format: summary|full|issues|json|markdown")
	f.Bool("tree", false, "Print only the component tree")
	f.String("mappings", "", "YAML overlay with extra token mappings")
	f.Bool("components", false, "Group class selectors into components")
	f.Bool("no-variants", false, "Keep variant suffixes as standalone constructors")
	f.StringSlice("variants", nil, "Extra variant names to recognize")
	f.String("framework", "", "Class naming convention: bootstrap|bulma")
}

func runAnalyze(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	opts, err := buildConvertOptions()
	if err != nil {
		return err
	}

	report, err := stylegen.Analyze(string(data), opts)
	if err != nil {
		return fmt.Errorf("analyzing %s: %w", args[0], err)
	}
	for i := range report.Issues {
		report.Issues[i].Pos.Filename = args[0]
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)

	// --tree skips the report and prints just the component tree
	if !quiet && getBoolWithFallback("tree", "analyze.tree", false) {
		colors := stylegen.NewReporter(os.Stdout, reportConfig()).UseColors()
		stylegen.NewVerboseReporter(os.Stdout, colors).PrintComponents(report)
		return nil
	}

	format := stylegen.DetermineOutputFormat(
		getStringWithFallback("format", "analyze.format", ""), quiet)

	if !quiet {
		stylegen.WriteReport(os.Stdout, report, format, reportConfig())
	}
	return nil
}
