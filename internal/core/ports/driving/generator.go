package driving

import (
	"context"

	"github.com/custodia-labs/cvforge-cli/internal/core/domain"
)

// ResumeBuilder assembles a JSON Resume from LaTeX sections and
// configuration.
type ResumeBuilder interface {
	// Build parses the section sources and returns the assembled resume.
	Build(ctx context.Context) (*domain.Resume, error)

	// Generate builds the resume and writes it to the configured JSON
	// output path. Returns the path written.
	Generate(ctx context.Context) (string, error)
}

// SnippetWriter produces the open-source contribution LaTeX snippet.
type SnippetWriter interface {
	// Snippet returns the \item line for the user's latest merged pull
	// request, or the configured fallback text when no PR is available.
	Snippet(ctx context.Context) (string, error)

	// Generate writes the snippet to the configured .tex output path.
	// Returns the path written.
	Generate(ctx context.Context) (string, error)
}
