package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveKeyStripsHTMLExtension(t *testing.T) {
	key, err := deriveKey("/site", "/site/blog/post.html")

	assert.Nil(t, err)
	assert.Equal(t, "blog/post", key)
}

func TestDeriveKeyLeavesOtherExtensionsAlone(t *testing.T) {
	cases := map[string]string{
		"/site/blog/post.htm":   "blog/post.htm",
		"/site/assets/logo.png": "assets/logo.png",
		"/site/style.css":       "style.css",
		"/site/fonts/a.woff2":   "fonts/a.woff2",
	}

	for filePath, expected := range cases {
		key, err := deriveKey("/site", filePath)

		assert.Nil(t, err)
		assert.Equal(t, expected, key)
	}
}

func TestDeriveKeyCaseSensitiveSuffix(t *testing.T) {
	key, err := deriveKey("/site", "/site/INDEX.HTML")

	assert.Nil(t, err)
	assert.Equal(t, "INDEX.HTML", key)
}

func TestDeriveKeyTrailingSlashOnBase(t *testing.T) {
	key, err := deriveKey("/site/", "/site/index.html")

	assert.Nil(t, err)
	assert.Equal(t, "index", key)
}

func TestDeriveKeyRejectsUnsafeBasenames(t *testing.T) {
	unsafe := []string{
		"/site/my file.txt",
		"/site/what?.txt",
		"/site/a&b.css",
		"/site/nested/dir/bad name.html",
	}

	for _, filePath := range unsafe {
		key, err := deriveKey("/site", filePath)

		assert.ErrorIs(t, err, ErrUnsafeKey)
		assert.Equal(t, "", key)
	}
}

func TestDeriveKeyOnlyChecksBasename(t *testing.T) {
	// directory segments are not validated, only the final one
	key, err := deriveKey("/site", "/site/my dir/file.txt")

	assert.Nil(t, err)
	assert.Equal(t, "my dir/file.txt", key)
}
