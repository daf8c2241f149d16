package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/stylegen"
)

var previewCmd = &cobra.Command{
	Use:   "preview [source]",
	Short: "Print generated constructors without writing files",
	Long: `Convert a stylesheet in memory and print the generated Rust source to
stdout. Reads from stdin when no source is given or when source is "-".
With --component only the matching module is shown.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runPreview,
}

func init() {
	f := previewCmd.Flags()
	f.String("component", "", "Only show the module for this component")
	f.Bool("components", false, "Group class selectors into components")
	f.Bool("no-variants", false, "Keep variant suffixes as standalone constructors")
	f.StringSlice("variants", nil, "Extra variant names to recognize")
	f.Bool("utilities", false, "Append the fixed utility constructors")
	f.String("mappings", "", "YAML overlay with extra token mappings")
	f.String("framework", "", "Class naming convention: bootstrap|bulma")
}

func runPreview(cmd *cobra.Command, args []string) error {
	source := "-"
	if len(args) > 0 {
		source = args[0]
	}

	var data []byte
	var err error
	if source == "-" {
		source = "stdin"
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", source, err)
	}

	opts, err := buildConvertOptions()
	if err != nil {
		return err
	}

	component, _ := cmd.Flags().GetString("component")
	if component != "" {
		// Per-component filtering needs per-component units.
		opts.SplitModules = true
	}

	result, err := stylegen.Convert(string(data), opts)
	if err != nil {
		return fmt.Errorf("converting %s: %w", source, err)
	}

	colors := getBoolWithFallback("color", "color", false)
	shown := 0
	for _, unit := range result.Units {
		if component != "" && unit.Name != component {
			continue
		}
		header := fmt.Sprintf("// %s", unit.Path)
		fmt.Println(stylegen.RenderStyle(stylegen.StyleCyan, header, colors))
		fmt.Println(unit.Source)
		shown++
	}
	if component != "" && shown == 0 {
		return fmt.Errorf("no component %q in %s", component, source)
	}

	reportIssues(source, result.Issues)
	return nil
}
