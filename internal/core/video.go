package core

import (
	"net/url"
	"strings"
)

const (
	VideoURL     = "https://www.youtube.com/watch?v=yhXnLgJJBAA&ab_channel=SareBayraktutan"
	VideoHeading = "Watch Our Project Overview"
	VideoLead    = "Check out this detailed overview of our project on YouTube:"
)

// VideoEmbedURL turns a YouTube watch or short link into its player URL.
// Other URLs are returned unchanged.
func VideoEmbedURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	var id string
	switch strings.TrimPrefix(u.Host, "www.") {
	case "youtube.com", "m.youtube.com":
		if u.Path == "/watch" {
			id = u.Query().Get("v")
		}
	case "youtu.be":
		id = strings.Trim(u.Path, "/")
	}

	if id == "" {
		return raw
	}
	return "https://www.youtube.com/embed/" + url.PathEscape(id)
}
