// Package memory provides in-memory implementations of driven ports
// for testing.
package memory

import (
	"sync"

	"github.com/custodia-labs/cvforge-cli/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore
// for testing.
type DocumentStore struct {
	mu    sync.RWMutex
	files map[string]string
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		files: make(map[string]string),
	}
}

// Read returns the content of a stored file.
func (s *DocumentStore) Read(path string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.files[path]
	return content, ok
}

// Write stores content at path.
func (s *DocumentStore) Write(path, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.files[path] = content
	return nil
}

// Exists reports whether a file is present.
func (s *DocumentStore) Exists(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.files[path]
	return ok
}
