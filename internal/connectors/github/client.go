package github

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/cvforge-cli/internal/core/domain"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 10 * time.Second

	// MaxRetries is the maximum number of attempts for transient errors.
	MaxRetries = 3

	// RetryDelay is the delay between retries.
	RetryDelay = 2 * time.Second

	// ProactiveRate throttles outgoing requests (~1.2 req/sec) so even
	// repeated invocations stay well inside the anonymous quota.
	ProactiveRate = 1.2
)

// timeAfter is time.After, overridable in tests to avoid real delays.
var timeAfter = time.After

// Client wraps the go-github client with throttling and retry.
type Client struct {
	gh      *gh.Client
	limiter *rate.Limiter
	log     Logger
}

// Logger is the subset of diagnostic levels the connector reports on.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API endpoint.
// Used by tests to target an httptest server.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		if u, err := url.Parse(base); err == nil {
			c.gh.BaseURL = u
		}
	}
}

// WithLogger sets the diagnostic logger. A nil logger disables
// connector diagnostics.
func WithLogger(log Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a GitHub API client. An empty token selects
// anonymous access (60 req/hour); a personal access token raises the
// quota to 5000 req/hour.
func NewClient(token string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var hc *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		hc = oauth2.NewClient(context.Background(), ts)
	} else {
		hc = &http.Client{}
	}
	hc.Timeout = timeout

	c := &Client{
		gh:      gh.NewClient(hc),
		limiter: rate.NewLimiter(rate.Limit(ProactiveRate), 1),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.log != nil {
		if token != "" {
			c.log.Info("using authenticated GitHub API (5000 req/hour)")
		} else {
			c.log.Info("using unauthenticated GitHub API (60 req/hour)")
		}
	}

	return c
}

// retryable reports whether an API error is worth another attempt:
// timeouts, temporary network failures and server-side errors.
func retryable(err error) bool {
	var errResp *gh.ErrorResponse
	if errors.As(err, &errResp) {
		return errResp.Response != nil && errResp.Response.StatusCode >= 500
	}

	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}

	return false
}

// classify maps API errors onto domain sentinels where callers can act
// on them, passing everything else through unchanged.
func classify(err error) error {
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return domain.ErrRateLimited
	}

	var errResp *gh.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		switch errResp.Response.StatusCode {
		case http.StatusUnauthorized:
			return domain.ErrAuthInvalid
		case http.StatusForbidden:
			return domain.ErrRateLimited
		}
	}

	return err
}
