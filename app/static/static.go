// Package static resolves URL paths under a fixed prefix to files on
// disk, returning the raw bytes and a MIME type guessed from the
// extension.
package static

import (
	"errors"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned for paths outside the prefix, files that do
// not exist, and paths that try to escape the root directory.
var ErrNotFound = errors.New("static: file not found")

type Handler struct {
	root   string
	prefix string
}

// New builds a handler serving files below root for URL paths starting
// with prefix. An empty prefix defaults to "/static/".
func New(root, prefix string) *Handler {
	if prefix == "" {
		prefix = "/static/"
	}
	return &Handler{root: filepath.Clean(root), prefix: prefix}
}

// Matches reports whether path falls under the handler's URL prefix.
func (h *Handler) Matches(path string) bool {
	return strings.HasPrefix(path, h.prefix)
}

// Serve reads the file the URL path maps to and guesses its MIME type,
// falling back to application/octet-stream for unknown extensions.
// Paths resolving outside the root are rejected as not found.
func (h *Handler) Serve(path string) ([]byte, string, error) {
	if !h.Matches(path) {
		return nil, "", ErrNotFound
	}

	rel := strings.TrimPrefix(path, h.prefix)
	full := filepath.Join(h.root, filepath.FromSlash(rel))
	if !strings.HasPrefix(full, h.root+string(filepath.Separator)) {
		return nil, "", ErrNotFound
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return nil, "", ErrNotFound
	}

	mimeType := mime.TypeByExtension(filepath.Ext(full))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return data, mimeType, nil
}
