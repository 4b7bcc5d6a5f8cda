package main

import (
	"errors"
	"path"
	"strings"
)

// ErrUnsafeKey marks files whose basename contains characters the store's
// URL-encoding handles unreliably. Such files are excluded from the sync
// entirely: never uploaded, never counted as local for staleness.
var ErrUnsafeKey = errors.New("filename contains characters unsafe for object keys")

// deriveKey maps a local file path to its remote object key: the path
// relative to basePath with slashes normalized and a single trailing
// ".html" stripped, so published HTML gets extensionless URLs. No other
// extension is rewritten.
func deriveKey(basePath, filePath string) (string, error) {
	relPath := relativePath(basePath, filePath)

	if !safeBasename(path.Base(relPath)) {
		return "", ErrUnsafeKey
	}

	return strings.TrimSuffix(relPath, ".html"), nil
}

// safeBasename reports whether every character is in the URL-safe set
// A-Z a-z 0-9 - _ . ~ /
func safeBasename(name string) bool {
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.' || r == '~' || r == '/':
		default:
			return false
		}
	}

	return true
}
