package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWalkDirectorySkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	modTime := time.Unix(1700000000, 0)
	indexPath := writeSiteFile(t, dir, "index.html", "<html></html>", modTime)
	nestedPath := writeSiteFile(t, dir, "blog/post.html", "<html></html>", modTime)

	fileMap, walkErr := walkDirectory(dir)

	assert.Nil(t, walkErr)
	assert.Len(t, fileMap, 2)
	assert.Contains(t, fileMap, indexPath)
	assert.Contains(t, fileMap, nestedPath)
}

func TestWalkDirectoryMissingPath(t *testing.T) {
	_, walkErr := walkDirectory("/definitely/not/a/real/dir")

	assert.NotNil(t, walkErr)
}
