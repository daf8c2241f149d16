package group

import "strings"

// frameworkIndicators maps framework names to content fragments that reveal
// them. Detection walks the list in order and returns the first hit, so a
// sheet mixing conventions resolves the same way every run.
var frameworkIndicators = []struct {
	name       string
	indicators []string
}{
	{"bootstrap", []string{"bootstrap", "btn-", "card-", "navbar-"}},
	{"tailwind", []string{"@tailwind", "tailwind", "prose-"}},
	{"bulma", []string{"bulma", "is-primary", "has-"}},
	{"foundation", []string{"foundation", "callout", "orbit"}},
}

// DetectFramework guesses the CSS framework a stylesheet was written against
// from its raw source. Returns "" when nothing is recognized.
func DetectFramework(source string) string {
	lower := strings.ToLower(source)
	for _, fw := range frameworkIndicators {
		for _, ind := range fw.indicators {
			if strings.Contains(lower, ind) {
				return fw.name
			}
		}
	}
	return ""
}

// Classifier recognizes a framework's class naming convention.
type Classifier interface {
	// Classify splits a selector base that follows the framework's
	// convention into its canonical component name and remaining suffix.
	Classify(base string) (component, rest string, ok bool)
}

// NopClassifier never recognizes anything.
type NopClassifier struct{}

func (NopClassifier) Classify(string) (string, string, bool) { return "", "", false }

// ClassifierFor returns the classifier for a framework name. Frameworks
// without naming families of their own, and unknown names, get the null
// classifier.
func ClassifierFor(framework string) Classifier {
	switch framework {
	case "bootstrap":
		return bootstrapClassifier{}
	case "bulma":
		return bulmaClassifier{}
	}
	return NopClassifier{}
}

// bootstrapFamilies maps bootstrap's class prefixes onto canonical component
// names.
var bootstrapFamilies = map[string]string{
	"btn":    "button",
	"card":   "card",
	"nav":    "navbar",
	"navbar": "navbar",
	"modal":  "modal",
	"form":   "form",
	"input":  "input",
	"table":  "table",
	"alert":  "alert",
	"badge":  "badge",
}

type bootstrapClassifier struct{}

func (bootstrapClassifier) Classify(base string) (string, string, bool) {
	head, rest, _ := strings.Cut(base, "-")
	comp, ok := bootstrapFamilies[head]
	if !ok {
		return "", "", false
	}
	return comp, rest, true
}

// bulmaClassifier strips the is-/has- state prefixes so .is-large classifies
// by what follows the prefix.
type bulmaClassifier struct{}

func (bulmaClassifier) Classify(base string) (string, string, bool) {
	for _, prefix := range []string{"is-", "has-"} {
		if strings.HasPrefix(base, prefix) {
			head, rest, _ := strings.Cut(strings.TrimPrefix(base, prefix), "-")
			return head, rest, true
		}
	}
	return "", "", false
}
