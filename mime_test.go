package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentTypeForRegisteredWoff2(t *testing.T) {
	assert.Equal(t, "application/font-woff2", contentTypeFor("fonts/icons.woff2"))
}

func TestContentTypeForCommonExtensions(t *testing.T) {
	assert.Contains(t, contentTypeFor("index.html"), "text/html")
	assert.Contains(t, contentTypeFor("style.css"), "text/css")
}

func TestContentTypeForUppercaseExtension(t *testing.T) {
	assert.Contains(t, contentTypeFor("LOGO.HTML"), "text/html")
}

func TestContentTypeForUnknown(t *testing.T) {
	assert.Equal(t, "", contentTypeFor("data.zzxx"))
	assert.Equal(t, "", contentTypeFor("Makefile"))
}
