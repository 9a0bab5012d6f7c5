// Package ytdlp wraps the yt-dlp binary as the search and download
// collaborators. All yt-dlp response shapes stay inside this package;
// callers only see match.Candidate values.
package ytdlp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"trackmirror/internal/match"
)

// DefaultBinary is the yt-dlp executable name resolved via PATH.
const DefaultBinary = "yt-dlp"

// ErrBinaryNotFound is returned when the yt-dlp executable cannot be
// located on PATH.
var ErrBinaryNotFound = errors.New("yt-dlp binary not found in PATH")

// searchRetryDelays is the backoff schedule for transient search
// failures. Retries live here, in the collaborator, so the match
// pipeline keeps its no-retry contract.
var searchRetryDelays = []time.Duration{1 * time.Second, 2 * time.Second}

// Client runs yt-dlp searches.
type Client struct {
	binary     string
	maxResults int
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBinary overrides the yt-dlp executable path.
func WithBinary(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.binary = path
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a search client requesting up to maxResults entries
// per query. It verifies the binary is reachable so a missing yt-dlp
// fails at startup instead of on the first track.
func NewClient(maxResults int, opts ...Option) (*Client, error) {
	c := &Client{
		binary:     DefaultBinary,
		maxResults: maxResults,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if _, err := exec.LookPath(c.binary); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBinaryNotFound, err)
	}
	return c, nil
}

// Search runs a ytsearch query and returns the results as candidates in
// the relevance order yt-dlp reports them. Transient failures are
// retried with backoff before the error is surfaced.
func (c *Client) Search(ctx context.Context, query string) ([]match.Candidate, error) {
	target := fmt.Sprintf("ytsearch%d:%s", c.maxResults, query)

	var lastErr error
	for attempt := 0; attempt <= len(searchRetryDelays); attempt++ {
		if attempt > 0 {
			c.logger.Warn("retrying search", "query", query, "attempt", attempt, "error", lastErr)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(searchRetryDelays[attempt-1]):
			}
		}

		out, err := c.runSearch(ctx, target)
		if err == nil {
			return parseSearchResult(out)
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		lastErr = err
	}

	return nil, lastErr
}

// runSearch executes a single yt-dlp metadata query without downloading.
func (c *Client) runSearch(ctx context.Context, target string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.binary,
		"-J",
		"--no-warnings",
		"--no-playlist",
		"--flat-playlist",
		target,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("yt-dlp search: %w: %s", err, firstLine(stderr.Bytes()))
	}
	return stdout.Bytes(), nil
}

func firstLine(b []byte) string {
	if i := bytes.IndexByte(b, '\n'); i != -1 {
		b = b[:i]
	}
	return string(bytes.TrimSpace(b))
}
