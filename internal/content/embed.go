package content

import "embed"

// Files holds the site copy: intro.md and one sections/<slug>.md per section.
//
//go:embed intro.md sections/*.md
var Files embed.FS
