package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoPullRequests indicates the user has no merged pull requests.
	// The snippet falls back to configured text; this is not fatal.
	ErrNoPullRequests = errors.New("no merged pull requests")

	// ErrRateLimited indicates the GitHub API quota is exhausted.
	// Set GITHUB_TOKEN for the authenticated 5000 req/hour limit.
	ErrRateLimited = errors.New("github rate limit exceeded")

	// ErrAuthInvalid indicates the GitHub token was rejected.
	ErrAuthInvalid = errors.New("github authentication invalid")
)
