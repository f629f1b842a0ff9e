package core

import (
	"bytes"
	"fmt"
	"html/template"
)

var shellTemplate = template.Must(template.New("shell").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>{{.Title}}</title>
    <style>{{.CSS}}</style>
  </head>
  <body>
    <div class="app">
      <aside class="sidebar"><div class="sidebar-content">{{.Sidebar}}</div></aside>
      <main class="block-container layout-{{.Layout}}">{{.Main}}</main>
    </div>
  </body>
</html>
`))

// RenderHTMLShell wraps pre-rendered sidebar and main markup in the page
// shell. The style sheet is written exactly once, in the head.
func RenderHTMLShell(cfg PageConfig, sidebarHTML string, mainHTML string) (string, error) {
	if cfg.Title == "" {
		return "", fmt.Errorf("missing page title")
	}

	layout := cfg.Layout
	if layout == "" {
		layout = LayoutCentered
	}

	var buf bytes.Buffer
	if err := shellTemplate.Execute(&buf, map[string]any{
		"Title":   cfg.Title,
		"CSS":     template.CSS(cfg.CSS),
		"Layout":  string(layout),
		"Sidebar": template.HTML(sidebarHTML),
		"Main":    template.HTML(mainHTML),
	}); err != nil {
		return "", err
	}

	return buf.String(), nil
}
