package core

import (
	"path/filepath"
	"strings"
)

func NormalizePath(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if path != "/" && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

// ExportPath is the file, relative to the export root, holding the
// rendered section.
func ExportPath(s Section) string {
	if s == DefaultSection() {
		return "index.html"
	}
	return filepath.Join(s.Slug(), "index.html")
}
