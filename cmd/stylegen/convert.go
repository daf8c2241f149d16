package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/yacobolo/stylegen"
)

var convertCmd = &cobra.Command{
	Use:     "convert [source]",
	Aliases: []string{"gen"},
	Short:   "Convert CSS into Rust style constructors",
	Long: `Parse a stylesheet (or every stylesheet under a directory) and write
Rust style constructors with raw values rewritten to design tokens.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runConvert,
}

func init() {
	f := convertCmd.Flags()
	f.StringP("out", "o", "generated", "Output directory for generated files")
	f.Bool("components", false, "Group class selectors into components")
	f.Bool("no-variants", false, "Keep variant suffixes as standalone constructors")
	f.StringSlice("variants", nil, "Extra variant names to recognize")
	f.Bool("utilities", false, "Append the fixed utility constructors")
	f.Bool("split", false, "Write one file per component plus a mod.rs index")
	f.String("unit", "", "Aggregate file stem (default styles)")
	f.String("framework", "", "Class naming convention: bootstrap|bulma")
	f.String("mappings", "", "YAML overlay with extra token mappings")
	f.StringSlice("include", nil, "Glob patterns for stylesheet discovery (directory mode)")
	f.Bool("stdout", false, "Print generated code instead of writing files")
}

func runConvert(cmd *cobra.Command, args []string) error {
	source := "."
	if len(args) > 0 {
		source = args[0]
	}

	opts, err := buildConvertOptions()
	if err != nil {
		return err
	}

	info, err := os.Stat(source)
	if err != nil {
		return fmt.Errorf("reading %s: %w", source, err)
	}
	if info.IsDir() {
		return convertDir(source, opts)
	}
	return convertFile(cmd, source, opts)
}

func convertFile(cmd *cobra.Command, path string, opts stylegen.Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	result, err := stylegen.Convert(string(data), opts)
	if err != nil {
		return fmt.Errorf("converting %s: %w", path, err)
	}

	if toStdout, _ := cmd.Flags().GetBool("stdout"); toStdout {
		for _, unit := range result.Units {
			fmt.Println(unit.Source)
		}
		reportIssues(path, result.Issues)
		return nil
	}

	outDir := getStringWithFallback("out", "convert.out", "generated")
	if err := writeUnits(outDir, result.Units); err != nil {
		return err
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		fmt.Printf("Converted %s: %d constructors in %d files -> %s\n",
			path, result.Constructors, len(result.Units), outDir)
	}
	reportIssues(path, result.Issues)
	return nil
}

func convertDir(root string, opts stylegen.Options) error {
	patterns := k.Strings("include")
	if len(patterns) == 0 {
		patterns = k.Strings("convert.include")
	}

	files, stats, err := stylegen.DiscoverStylesheets(root, patterns)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no stylesheets found under %s", root)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		fmt.Printf("Found %d stylesheets (%d skipped)\n", stats.FilesMatched, stats.FilesSkipped)
	}

	outDir := getStringWithFallback("out", "convert.out", "generated")
	var errs error
	converted := 0
	constructors := 0
	for _, path := range files {
		fileOpts := opts
		target := outDir
		if fileOpts.SplitModules {
			// Per-component files from each sheet land in their own subdirectory
			// so mod.rs indexes do not clobber each other.
			target = filepath.Join(outDir, unitStem(path))
		} else {
			fileOpts.UnitName = unitStem(path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("reading %s: %w", path, err))
			continue
		}
		result, err := stylegen.Convert(string(data), fileOpts)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("converting %s: %w", path, err))
			continue
		}
		if err := writeUnits(target, result.Units); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		converted++
		constructors += result.Constructors
		reportIssues(path, result.Issues)
	}

	if !quiet {
		fmt.Printf("Converted %d of %d stylesheets: %d constructors -> %s\n",
			converted, len(files), constructors, outDir)
	}
	return errs
}

// unitStem derives a Rust-safe module stem from a stylesheet path.
// "Button Styles.css" becomes "button_styles".
func unitStem(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return strings.ReplaceAll(slug.Make(stem), "-", "_")
}

func writeUnits(dir string, units []stylegen.Unit) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	for _, unit := range units {
		path := filepath.Join(dir, unit.Path)
		if err := os.WriteFile(path, []byte(unit.Source), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}

// reportIssues prints conversion issues to stderr so generated code on
// stdout stays pipeable.
func reportIssues(path string, issues []stylegen.Issue) {
	if getBoolWithFallback("quiet", "quiet", false) || len(issues) == 0 {
		return
	}
	for i := range issues {
		issues[i].Pos.Filename = path
	}
	reporter := stylegen.NewReporter(os.Stderr, reportConfig())
	reporter.PrintIssues(issues)
}
