package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/cvforge-cli/internal/core/ports/driven"
	"github.com/custodia-labs/cvforge-cli/internal/core/ports/driving"
	"github.com/custodia-labs/cvforge-cli/internal/latex"
)

// Ensure SnippetService implements the interface.
var _ driving.SnippetWriter = (*SnippetService)(nil)

// SnippetService renders the open-source contribution line for the
// user's latest merged pull request.
type SnippetService struct {
	finder driven.PullRequestFinder
	docs   driven.DocumentStore
	config driven.ConfigStore
	log    latex.Logger
}

// NewSnippetService creates a snippet writer. finder and log may be
// nil; without a finder the configured fallback text is always used.
func NewSnippetService(
	finder driven.PullRequestFinder,
	docs driven.DocumentStore,
	config driven.ConfigStore,
	log latex.Logger,
) *SnippetService {
	return &SnippetService{
		finder: finder,
		docs:   docs,
		config: config,
		log:    log,
	}
}

// Snippet returns the \item line for the latest merged pull request.
// Any lookup failure degrades to the configured fallback text; snippet
// generation never fails on network or API errors.
func (s *SnippetService) Snippet(ctx context.Context) (string, error) {
	fallback := getString(s.config, keyFallbackPR, DefaultPRFallback)

	user := s.config.GetString(keyGitHubUser)
	if user == "" {
		s.warn("github.username not configured, using fallback text")
		return fallback, nil
	}

	if s.finder == nil {
		s.warn("pull request lookup not configured, using fallback text")
		return fallback, nil
	}

	pr, err := s.finder.LatestMerged(ctx, user)
	if err != nil {
		s.warn("latest PR lookup failed: %v, using fallback text", err)
		return fallback, nil
	}

	title := latex.EscapeSpecial(pr.Title)
	line := fmt.Sprintf(
		`\item \textbf{Active Contributor:} Latest merged PR — \href{%s}{%s} (\textit{%s})`,
		pr.HTMLURL, pr.Repo, title,
	)
	return line, nil
}

// Generate writes the snippet to the configured .tex output path.
func (s *SnippetService) Generate(ctx context.Context) (string, error) {
	snippet, err := s.Snippet(ctx)
	if err != nil {
		return "", err
	}

	outPath := getString(s.config, keyOutputPR, DefaultOutputPR)
	if err := s.docs.Write(outPath, snippet+"\n"); err != nil {
		return "", fmt.Errorf("write %s: %w", outPath, err)
	}

	return outPath, nil
}

func (s *SnippetService) warn(format string, args ...any) {
	if s.log != nil {
		s.log.Warn(format, args...)
	}
}
