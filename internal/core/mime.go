package core

import (
	"encoding/base64"
	"path/filepath"
	"strings"
)

var contentTypes = map[string]string{
	".css":  "text/css",
	".html": "text/html; charset=utf-8",
	".js":   "application/javascript",
	".json": "application/json",
	".pdf":  "application/pdf",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
}

func GetContentType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}

// DataURI encodes data as a base64 data URI typed after name's extension.
func DataURI(name string, data []byte) string {
	mediaType := GetContentType(name)
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = mediaType[:i]
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
