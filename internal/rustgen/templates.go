package rustgen

import (
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
)

const constructorSrc = `/// {{ .Name | replace "_" " " | title }} styles
pub fn {{ .Name }}() -> Style {
    Style::new(
        r#"
{{ .Body }}
    "#,
    )
    .expect("Failed to create {{ .Name }} styles")
}
`

const unitSrc = `//! {{ .Header }}

use stylist::Style;

{{ .Constructors }}`

const indexSrc = `//! Style modules

{{ range .Modules }}pub mod {{ . }};
{{ end }}
// Re-export all component styles
{{ range .Modules }}pub use {{ . }}::*;
{{ end }}`

var (
	constructorTmpl = template.Must(template.New("constructor").Funcs(sprig.FuncMap()).Parse(constructorSrc))
	unitTmpl        = template.Must(template.New("unit").Funcs(sprig.FuncMap()).Parse(unitSrc))
	indexTmpl       = template.Must(template.New("index").Funcs(sprig.FuncMap()).Parse(indexSrc))
)

// title renders a module name as a doc heading: underscores to spaces, each
// word capitalized.
func title(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
