package cli

import (
	"context"

	"github.com/custodia-labs/cvforge-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/cvforge-cli/internal/core/domain"
)

// mockResumeBuilder is a driving.ResumeBuilder test double.
type mockResumeBuilder struct {
	path string
	err  error
}

func (m *mockResumeBuilder) Build(_ context.Context) (*domain.Resume, error) {
	if m.err != nil {
		return nil, m.err
	}
	return domain.NewResume(), nil
}

func (m *mockResumeBuilder) Generate(_ context.Context) (string, error) {
	return m.path, m.err
}

// mockSnippetWriter is a driving.SnippetWriter test double.
type mockSnippetWriter struct {
	path    string
	snippet string
	err     error
}

func (m *mockSnippetWriter) Snippet(_ context.Context) (string, error) {
	return m.snippet, m.err
}

func (m *mockSnippetWriter) Generate(_ context.Context) (string, error) {
	return m.path, m.err
}

// setupTestServices injects working mocks and returns a cleanup that
// restores the previous wiring.
func setupTestServices() func() {
	oldResume := resumeBuilder
	oldSnippet := snippetWriter
	oldConfig := configStore

	resumeBuilder = &mockResumeBuilder{path: "docs/resume.json"}
	snippetWriter = &mockSnippetWriter{path: "sections/latest_pr.tex"}
	configStore = memory.NewConfigStore()

	return func() {
		resumeBuilder = oldResume
		snippetWriter = oldSnippet
		configStore = oldConfig
	}
}
