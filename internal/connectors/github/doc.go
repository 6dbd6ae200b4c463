// Package github implements the driven.PullRequestFinder port on top of
// the GitHub Search API via google/go-github.
//
// Requests are throttled proactively with a token bucket and retried a
// bounded number of times on timeouts and server errors. An optional
// personal access token (GITHUB_TOKEN) raises the API quota from 60 to
// 5000 requests per hour; anonymous access works for public data.
package github
