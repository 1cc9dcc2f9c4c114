package page

import (
	"bytes"
	"html/template"
)

type ShellData struct {
	Title     string
	CSSHref   string
	InlineCSS template.CSS
	ScriptSrc string
	Body      template.HTML
}

var shellTemplate = template.Must(template.New("shell").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>{{.Title}}</title>
    {{- if .CSSHref}}
    <link rel="stylesheet" href="{{.CSSHref}}" />
    {{- end}}
    {{- if .InlineCSS}}
    <style>{{.InlineCSS}}</style>
    {{- end}}
  </head>
  <body>
{{.Body}}
    {{- if .ScriptSrc}}
    <script src="{{.ScriptSrc}}" defer></script>
    {{- end}}
  </body>
</html>
`))

// RenderHTMLShell wraps already rendered body markup in a full document.
// bodyHTML is trusted and inserted as is.
func RenderHTMLShell(bodyHTML, title, cssHref, scriptSrc string) (string, error) {
	return Render(ShellData{
		Title:     title,
		CSSHref:   cssHref,
		ScriptSrc: scriptSrc,
		Body:      template.HTML(bodyHTML),
	})
}

// RenderStandalone produces a self-contained page with the stylesheet
// inlined and no script. Used by static exports.
func RenderStandalone(bodyHTML, title, css string) (string, error) {
	return Render(ShellData{
		Title:     title,
		InlineCSS: template.CSS(css),
		Body:      template.HTML(bodyHTML),
	})
}

func Render(data ShellData) (string, error) {
	if data.Title == "" {
		data.Title = "Accordion"
	}

	var buf bytes.Buffer
	if err := shellTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
