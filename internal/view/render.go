package view

import (
	"fmt"
	"io"
	"text/template"
)

const pageTemplate = `== Budget {{ .Title }} ({{ .Period }}) ==
{{- if .Busy }}
>> Kassenzettel wird verarbeitet ...
{{- end }}

Gesamtbudget:  {{ .Summary.Total }}
Zugewiesen:    {{ .Summary.Allocated }}
Ausgaben:      {{ .Summary.Expenses }}
Verbleibend:   {{ .Summary.Remaining }}
Verfügbar:     {{ .Summary.Spendable }}
{{ range .Categories }}
[{{ .Icon }}] {{ .Name }}  ({{ .ID }})
    Zugewiesen: {{ .Allocated }} | Ausgegeben: {{ .Spent }} | Verbleibend: {{ .Remaining }}{{ if .Overspent }} !{{ end }}
{{- range .Expenses }}
    - {{ .Description }}: {{ .Amount }}  ({{ .ID }})
{{- end }}
{{- if or .Form.Description .Form.Amount }}
    > Neue Ausgabe: {{ .Form.Description }} {{ .Form.Amount }}
{{- end }}
{{ else }}
Keine Kategorien.
{{ end -}}
`

// Renderer writes pages as text.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer returns a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		tmpl: template.Must(template.New("page").Parse(pageTemplate)),
	}
}

// Render replaces the whole output with the page. It does not depend on
// any previous render.
func (r *Renderer) Render(w io.Writer, page Page) error {
	if err := r.tmpl.Execute(w, page); err != nil {
		return fmt.Errorf("rendering page for %s: %w", page.Period, err)
	}

	return nil
}
