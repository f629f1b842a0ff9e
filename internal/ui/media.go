package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/namecheck-ai/namecheck/internal/core"
)

const (
	PosterHeading     = "Download Poster"
	PosterLinkText    = "Click here to download the poster"
	PosterUnavailable = "The poster is currently unavailable."
)

// Video embeds the player for rawURL and links rawURL itself below it.
func Video(rawURL string) g.Node {
	return g.Group{
		h.H2(g.Text(core.VideoHeading)),
		h.P(g.Text(core.VideoLead)),
		h.Div(
			h.Class("video"),
			g.El("iframe",
				h.Src(core.VideoEmbedURL(rawURL)),
				h.Width("700"),
				h.Height("394"),
				g.Attr("frameborder", "0"),
				g.Attr("allow", "accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture"),
				g.Attr("allowfullscreen"),
			),
		),
		h.P(h.A(h.Href(rawURL), g.Text(rawURL))),
	}
}

// Poster embeds the PDF inline and offers it as a download. Both carry the
// full payload as a data URI.
func Poster(filename string, data []byte) g.Node {
	uri := core.DataURI(filename, data)
	return g.Group{
		h.Div(
			h.Class("poster"),
			g.El("embed",
				h.Src(uri),
				h.Width("700"),
				h.Height("600"),
				h.Type(core.GetContentType(filename)),
			),
		),
		h.P(
			h.A(
				h.Href(uri),
				g.Attr("download", filename),
				g.Text(PosterLinkText),
			),
		),
	}
}

func PosterNotice() g.Node {
	return h.P(h.Class("poster-unavailable"), g.Text(PosterUnavailable))
}
