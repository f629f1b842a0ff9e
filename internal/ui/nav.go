// Package ui holds the gomponents building blocks of the page.
package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/namecheck-ai/namecheck/internal/core"
)

// Nav is the sidebar radio control. It always lists every section in
// display order; only the checked option depends on selected. With
// scripts enabled a change navigates to the section path, relative to the
// current page when relative is set (static export); without scripts the
// form submits ?page=<label>.
func Nav(selected core.Section, relative bool) g.Node {
	href := core.Section.Path
	if relative {
		href = func(s core.Section) string { return s.RelativePath(selected) }
	}

	return g.Group{
		h.H1(g.Text(core.SidebarTitle)),
		h.Form(
			h.Method("get"),
			h.Action("/"),
			h.Class("nav"),
			h.FieldSet(
				h.Legend(g.Text(core.NavCaption)),
				g.Map(core.Sections(), func(s core.Section) g.Node {
					id := "nav-" + s.Slug()
					return h.Label(
						h.For(id),
						h.Input(
							h.Type("radio"),
							h.ID(id),
							h.Name(core.NavInputName),
							h.Value(s.Label()),
							g.If(s == selected, h.Checked()),
							g.Attr("data-href", href(s)),
							g.Attr("onchange", "window.location.href = this.dataset.href"),
						),
						g.Text(" "+s.Label()),
					)
				}),
			),
			h.NoScript(h.Button(h.Type("submit"), g.Text("Go"))),
		),
	}
}
