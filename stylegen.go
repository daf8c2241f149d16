// Package stylegen converts plain CSS stylesheets into Rust style
// constructors for the stylist crate.
//
// # Conversion
//
// Convert a stylesheet and write the generated units:
//
//	result, err := stylegen.Convert(source, stylegen.DefaultOptions())
//	if err != nil {
//		return err
//	}
//	for _, unit := range result.Units {
//		os.WriteFile(filepath.Join(out, unit.Path), []byte(unit.Source), 0o644)
//	}
//
// Declaration values are rewritten to design tokens on the way through:
// "#007bff" becomes "var(--color-primary)" and "8px 16px" becomes
// "var(--spacing-sm) var(--spacing-md)". A YAML overlay extends or
// overrides the built-in mapping table:
//
//	overlay, err := stylegen.LoadOverlayFile("mappings.yaml")
//	opts := stylegen.DefaultOptions()
//	opts.Overlay = overlay
//
// # Analysis
//
// Analyze reports stylesheet structure and token coverage without
// generating code, and Validate lists convertibility problems as issues:
//
//	report, err := stylegen.Analyze(source, stylegen.DefaultOptions())
//	issues, err := stylegen.Validate(source)
//
// # CLI Tool
//
// stylegen also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/stylegen/cmd/stylegen@latest
package stylegen
