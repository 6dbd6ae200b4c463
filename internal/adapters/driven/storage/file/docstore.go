// Package file implements driven.DocumentStore over a project
// directory on disk.
package file

import (
	"os"
	"path/filepath"

	"github.com/custodia-labs/cvforge-cli/internal/core/ports/driven"
	"github.com/custodia-labs/cvforge-cli/internal/logger"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore reads and writes text files relative to a project root.
type DocumentStore struct {
	root string
}

// NewDocumentStore creates a store rooted at dir. An empty dir means
// the current working directory.
func NewDocumentStore(dir string) *DocumentStore {
	if dir == "" {
		dir = "."
	}
	return &DocumentStore{root: dir}
}

// Read returns the content of a text file. Missing or unreadable files
// yield ("", false); the condition is logged, not returned, so callers
// can treat an absent document as empty.
func (s *DocumentStore) Read(path string) (string, bool) {
	full := filepath.Join(s.root, filepath.FromSlash(path))

	data, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("file not found: %s", full)
		} else {
			logger.Error("error reading %s: %v", full, err)
		}
		return "", false
	}

	logger.Debug("read %s (%d bytes)", full, len(data))
	return string(data), true
}

// Write stores content at path, creating parent directories as needed.
func (s *DocumentStore) Write(path, content string) error {
	full := filepath.Join(s.root, filepath.FromSlash(path))

	if dir := filepath.Dir(full); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		return err
	}

	logger.Info("generated: %s", full)
	return nil
}

// Exists reports whether a file is present.
func (s *DocumentStore) Exists(path string) bool {
	full := filepath.Join(s.root, filepath.FromSlash(path))
	_, err := os.Stat(full)
	return err == nil
}
