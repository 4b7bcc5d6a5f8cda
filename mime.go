package main

import (
	"mime"
	"path/filepath"
	"strings"
)

func init() {
	// not in the system table on most hosts
	mime.AddExtensionType(".woff2", "application/font-woff2")
}

// contentTypeFor infers a media type from the file extension. Empty string
// means unknown; the caller uploads without a Content-Type header then.
func contentTypeFor(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return ""
	}

	return mime.TypeByExtension(ext)
}
