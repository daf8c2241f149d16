package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .stylegen.yaml config file",
	Long:  `Create a .stylegen.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".stylegen.yaml"); err == nil && !force {
			return fmt.Errorf(".stylegen.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".stylegen.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .stylegen.yaml")
		return nil
	},
}

const defaultConfig = `# stylegen configuration
# Docs: https://github.com/yacobolo/stylegen

# Shared settings
verbose: false

# Conversion settings
convert:
  out: generated
  include:
    - "**/*.css"
  components: false        # group class selectors into components
  no-variants: false       # keep variant suffixes as standalone constructors
  utilities: false         # append the fixed utility constructors
  split: false             # one file per component plus mod.rs
  unit: styles             # aggregate file stem
  framework: ""            # bootstrap | bulma
  mappings: ""             # YAML overlay with extra token mappings

# Analysis settings
analyze:
  format: summary          # summary | full | issues | json | markdown
  tree: false              # print only the component tree

# Validation settings
validate:
  strict: false
  threshold: 0.0           # minimum token coverage for strict mode
  max-issues: 0            # 0 = unlimited
  print-lines: true
  print-check-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
