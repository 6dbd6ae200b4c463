package driven

import (
	"context"

	"github.com/custodia-labs/cvforge-cli/internal/core/domain"
)

// PullRequestFinder looks up merged pull requests for a GitHub user.
type PullRequestFinder interface {
	// LatestMerged returns the user's most recently updated merged pull
	// request. Returns domain.ErrNoPullRequests when the user has none.
	LatestMerged(ctx context.Context, user string) (*domain.PullRequest, error)
}
