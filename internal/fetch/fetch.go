// Package fetch downloads encoder artifacts (ONNX model, vocabulary) over
// HTTP with retry. It backs the reference store's "downloading" phase.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Client downloads files with retry on transient failures.
type Client struct {
	httpClient *http.Client
}

// HTTPError represents a non-2xx HTTP response.
type HTTPError struct {
	StatusCode int
	URL        string
	retryAfter string // Retry-After header value for 429s
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d fetching %s", e.StatusCode, e.URL)
}

// Option configures Client behavior.
type Option func(*Client)

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// New creates a download client.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 5 * time.Minute,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

const maxRetries = 3

// Download fetches url into destPath, creating parent directories as needed.
// The file is written to a temporary path and renamed into place, so a
// partial download never shows up at destPath. Retries on 429 (honoring
// Retry-After) and 5xx with exponential backoff (1s, 2s, 4s), max 3 retries.
func (c *Client) Download(ctx context.Context, url, destPath string) error {
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	var lastErr *HTTPError
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			wait := backoffDelay(attempt, lastErr)
			t := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				t.Stop()
				return ctx.Err()
			case <-t.C:
			}
		}

		retryable, err := c.attempt(ctx, url, destPath)
		if err == nil {
			return nil
		}
		if !retryable {
			return err
		}
		if httpErr, ok := err.(*HTTPError); ok {
			lastErr = httpErr
		}
	}
	return fmt.Errorf("fetch: giving up after %d retries: %w", maxRetries, lastErr)
}

// attempt performs one download try. The bool reports whether the failure is
// worth retrying.
func (c *Client) attempt(ctx context.Context, url, destPath string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("fetch: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		httpErr := &HTTPError{StatusCode: resp.StatusCode, URL: url}
		if resp.StatusCode == http.StatusTooManyRequests {
			httpErr.retryAfter = resp.Header.Get("Retry-After")
			return true, httpErr
		}
		if resp.StatusCode >= 500 {
			return true, httpErr
		}
		return false, httpErr
	}

	tmp, err := os.CreateTemp(filepath.Dir(destPath), filepath.Base(destPath)+".partial-*")
	if err != nil {
		return false, fmt.Errorf("fetch: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return false, fmt.Errorf("fetch: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return false, fmt.Errorf("fetch: %w", err)
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return false, fmt.Errorf("fetch: %w", err)
	}
	return false, nil
}

// backoffDelay computes the wait before the given retry attempt.
// 429 responses with a parseable Retry-After win over exponential backoff.
func backoffDelay(attempt int, lastErr *HTTPError) time.Duration {
	if lastErr != nil && lastErr.retryAfter != "" {
		if secs, err := strconv.Atoi(lastErr.retryAfter); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return time.Duration(1<<(attempt-1)) * time.Second
}
