package stylegen

import (
	"fmt"
	"io"
	"sort"

	"github.com/maruel/natural"
	"github.com/xlab/treeprint"
)

// VerboseReporter handles the detailed analysis sections
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintOverview outputs the stylesheet structure counts
func (r *VerboseReporter) PrintOverview(report *Report) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Stylesheet Overview", r.useColors))
	fmt.Fprintln(r.w, "-------------------")

	if report.Framework != "" {
		fmt.Fprintf(r.w, "Framework:          %s\n", report.Framework)
	}
	fmt.Fprintf(r.w, "Rules:              %d\n", report.Rules)
	fmt.Fprintf(r.w, "Keyframes:          %d\n", report.Keyframes)
	fmt.Fprintf(r.w, "Media rules:        %d\n", report.MediaRules)
	fmt.Fprintf(r.w, "Pseudo rules:       %d\n", report.PseudoRules)
	fmt.Fprintf(r.w, "Unique selectors:   %d\n", report.UniqueSelectors)
	fmt.Fprintf(r.w, "Declarations:       %d\n", report.Declarations)
	fmt.Fprintf(r.w, "Unique properties:  %d\n", report.UniqueProperties)
}

// PrintComponents renders the component tree with variants as leaves.
// Components sort naturally so nav2 comes before nav10.
func (r *VerboseReporter) PrintComponents(report *Report) {
	if len(report.Components) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Components", r.useColors))
	fmt.Fprintln(r.w, "----------")

	comps := make([]ComponentSummary, len(report.Components))
	copy(comps, report.Components)
	sort.Slice(comps, func(i, j int) bool {
		return natural.Less(comps[i].Name, comps[j].Name)
	})

	tree := treeprint.NewWithRoot(fmt.Sprintf("components (%d)", len(comps)))
	for _, c := range comps {
		label := fmt.Sprintf("%s (%s)", c.Name, pluralizeCount(c.Declarations, "declaration", "declarations"))
		if c.Ungrouped {
			label += " [ungrouped]"
		}
		branch := tree.AddBranch(label)
		for _, v := range c.Variants {
			branch.AddNode(v)
		}
	}
	fmt.Fprint(r.w, tree.String())
}

// PrintCoverage shows token mapping coverage with a progress bar
func (r *VerboseReporter) PrintCoverage(report *Report) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Token Coverage", r.useColors))
	fmt.Fprintln(r.w, "--------------")
	printProgressBar(r.w, report.Coverage)
	fmt.Fprintf(r.w, "%d of %d values map to design tokens\n", report.MappableValues, report.Declarations)

	if len(report.CategoryCoverage) == 0 {
		return
	}
	cats := make([]string, 0, len(report.CategoryCoverage))
	for cat := range report.CategoryCoverage {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	fmt.Fprintln(r.w, "")
	for _, cat := range cats {
		fmt.Fprintf(r.w, "  %-12s %.1f%%\n", cat, report.CategoryCoverage[cat])
	}
}

// printProgressBar prints a visual progress bar
func printProgressBar(w io.Writer, percentage float64) {
	barWidth := 20
	filled := int(percentage / 100 * float64(barWidth))

	fmt.Fprint(w, "[")
	for i := 0; i < barWidth; i++ {
		if i < filled {
			fmt.Fprint(w, "█")
		} else {
			fmt.Fprint(w, "░")
		}
	}
	fmt.Fprintf(w, "] %.1f%%\n", percentage)
}
