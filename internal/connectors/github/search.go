package github

import (
	"context"
	"fmt"
	"strings"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/cvforge-cli/internal/core/domain"
	"github.com/custodia-labs/cvforge-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.PullRequestFinder = (*Client)(nil)

// LatestMerged returns the user's most recently updated merged pull
// request. Transient failures are retried up to MaxRetries with a fixed
// delay; quota and auth failures are mapped to domain sentinels.
func (c *Client) LatestMerged(ctx context.Context, user string) (*domain.PullRequest, error) {
	query := fmt.Sprintf("author:%s type:pr is:merged", user)
	opts := &gh.SearchOptions{
		Sort:        "updated",
		Order:       "desc",
		ListOptions: gh.ListOptions{PerPage: 1},
	}

	var lastErr error
	for attempt := 1; attempt <= MaxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		if c.log != nil {
			c.log.Info("fetching latest PR for %s (attempt %d/%d)", user, attempt, MaxRetries)
		}

		result, resp, err := c.gh.Search.Issues(ctx, query, opts)
		if err == nil {
			if resp != nil && c.log != nil {
				c.log.Debug("API rate limit remaining: %d", resp.Rate.Remaining)
			}
			return prFromResult(result)
		}

		lastErr = classify(err)
		if !retryable(err) {
			return nil, fmt.Errorf("search pull requests: %w", lastErr)
		}

		if c.log != nil {
			c.log.Warn("transient GitHub error (attempt %d/%d): %v", attempt, MaxRetries, err)
		}

		if attempt < MaxRetries {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-timeAfter(RetryDelay):
			}
		}
	}

	return nil, fmt.Errorf("search pull requests after %d attempts: %w", MaxRetries, lastErr)
}

// prFromResult maps the first search hit to a domain pull request.
func prFromResult(result *gh.IssuesSearchResult) (*domain.PullRequest, error) {
	if result == nil || len(result.Issues) == 0 {
		return nil, domain.ErrNoPullRequests
	}

	issue := result.Issues[0]
	return &domain.PullRequest{
		Title:   issue.GetTitle(),
		HTMLURL: issue.GetHTMLURL(),
		Repo:    repoPath(issue.GetRepositoryURL()),
	}, nil
}

// repoPath extracts owner/name from an API repository URL of the form
// https://api.github.com/repos/owner/name.
func repoPath(repositoryURL string) string {
	const marker = "/repos/"
	if idx := strings.Index(repositoryURL, marker); idx >= 0 {
		return repositoryURL[idx+len(marker):]
	}
	return repositoryURL
}
