package core

import (
	"bytes"
	"strings"
	"sync"
	"text/template"

	"github.com/teacat/noire"
)

// Palette holds the theme colors as #rrggbb strings.
type Palette struct {
	Background   string
	Text         string
	Heading      string
	Link         string
	Sidebar      string
	ExpanderHead string
	Expander     string
	Card         string
}

var DefaultPalette = Palette{
	Background:   "#0e1117",
	Text:         "#fff",
	Heading:      "#ff6347",
	Link:         "#f9a825",
	Sidebar:      "#1e2128",
	ExpanderHead: "#fb8500",
	Expander:     "#262b33",
	Card:         "#33383d",
}

// foreground picks a readable text color for bg, muted 80% toward bg.
func foreground(bg string) string {
	fg := noire.NewHex(strings.TrimPrefix(bg, "#")).Foreground()
	return "color-mix(in srgb, #" + strings.TrimPrefix(fg.Hex(), "#") + " 80%, " + bg + ")"
}

var themeTemplate = template.Must(template.New("theme").Parse(`body {
    color: {{.P.Text}};
    background-color: {{.P.Background}};
    font-family: 'Calibri', sans-serif;
    margin: 0;
}
h1, h2, h3, h4 {
    color: {{.P.Heading}};
    font-weight: bold;
}
h1 {
    font-size: 42px;
}
h2 {
    font-size: 32px;
}
h3 {
    font-size: 28px;
}
a {
    color: {{.P.Link}};
    font-weight: bold;
}
.app {
    display: flex;
    min-height: 100vh;
}
.sidebar .sidebar-content {
    background-color: {{.P.Sidebar}};
    color: {{.SidebarText}};
    min-height: 100%;
    padding: 2rem 1.5rem;
}
.sidebar label {
    display: block;
    margin: 0.35rem 0;
    cursor: pointer;
}
details.expander > summary {
    color: {{.P.ExpanderHead}};
}
details.expander {
    background-color: {{.P.Expander}};
}
div.block-container {
    padding: 2rem;
    flex: 1;
}
div.block-container.layout-wide {
    max-width: none;
}
div.block-container.layout-centered {
    max-width: 730px;
    margin: 0 auto;
}
div[data-testid="stBlock"] {
    background-color: {{.P.Card}};
    color: {{.CardText}};
    border-radius: 10px;
    box-shadow: 0px 0px 10px 4px rgba(0,0,0,0.15);
    padding: 20px;
    margin-bottom: 20px;
}
`))

var themeCSS = sync.OnceValue(func() string {
	var buf bytes.Buffer
	err := themeTemplate.Execute(&buf, map[string]any{
		"P":           DefaultPalette,
		"SidebarText": foreground(DefaultPalette.Sidebar),
		"CardText":    foreground(DefaultPalette.Card),
	})
	if err != nil {
		panic("theme: " + err.Error())
	}
	return buf.String()
})

// ThemeCSS returns the site style sheet. It does not depend on the
// selected section.
func ThemeCSS() string {
	return themeCSS()
}
