package page

import (
	"html/template"
)

// ErrorData feeds ErrorTemplate. Message is only shown in dev mode.
type ErrorData struct {
	Message string
	IsDev   bool
}

var ErrorTemplate = template.Must(template.New("error").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>Accordion unavailable</title>
    <style>
      body { font-family: system-ui, sans-serif; max-width: 640px; margin: 64px auto; padding: 0 16px; color: #222; }
      .panel { border: 1px solid #ddd; border-radius: 6px; }
      .panel h1 { margin: 0; padding: 12px 16px; font-size: 1.1rem; border-bottom: 1px solid #ddd; color: #b3261e; }
      .panel p, .panel pre { margin: 0; padding: 12px 16px; }
      .panel pre { background: #f6f6f6; white-space: pre-wrap; }
    </style>
  </head>
  <body>
    <div class="panel open">
      <h1>The accordion could not be rendered</h1>
      {{- if .IsDev}}
      <pre>{{.Message}}</pre>
      {{- else}}
      <p>The panels are temporarily unavailable. Reload the page to try again.</p>
      {{- end}}
    </div>
  </body>
</html>
`))
