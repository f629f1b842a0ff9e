package ui

import (
	"html/template"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/namecheck-ai/namecheck/internal/core"
)

// Header is the site title and intro shown above every section.
func Header(intro template.HTML) g.Node {
	return g.Group{
		h.H1(h.Class("site-title"), g.Text(core.SiteTitle)),
		h.Div(h.Class("site-intro"), g.Raw(string(intro))),
	}
}

// Section renders the static block of one section: its heading and body.
func Section(s core.Section, c core.SectionContent, extra ...g.Node) g.Node {
	return h.Section(
		h.ID("section-"+s.Slug()),
		g.Attr("data-testid", "stBlock"),
		h.H2(h.Class("section-heading"), g.Text(c.Heading)),
		g.Raw(string(c.Body)),
		g.Group(extra),
	)
}
