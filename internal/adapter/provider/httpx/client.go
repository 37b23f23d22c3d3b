// Package httpx is the GET client shared by upstream provider adapters.
package httpx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	defaultTimeout    = 10 * time.Second
	defaultRetryDelay = 500 * time.Millisecond

	// maxBodySize caps upstream bodies; large Wiktionary pages stay well below it.
	maxBodySize = 8 << 20
)

// Cache stores successful response bodies keyed by URL.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

// Options configures a Client. Zero values pick defaults; Cache and Metrics
// are optional.
type Options struct {
	Timeout    time.Duration
	RetryDelay time.Duration
	UserAgent  string
	Cache      Cache
	Metrics    *Metrics
}

// Response is a fully read upstream response.
type Response struct {
	StatusCode int
	Body       []byte
	Cached     bool
}

// Client performs GET requests against one upstream source.
type Client struct {
	source     string
	httpClient *http.Client
	userAgent  string
	retryDelay time.Duration
	cache      Cache
	metrics    *Metrics
	log        *slog.Logger
}

// New creates a Client for the named source ("freedict", "wiktionary", ...).
func New(source string, opts Options, logger *slog.Logger) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = defaultRetryDelay
	}

	return &Client{
		source:     source,
		httpClient: &http.Client{Timeout: opts.Timeout},
		userAgent:  opts.UserAgent,
		retryDelay: opts.RetryDelay,
		cache:      opts.Cache,
		metrics:    opts.Metrics,
		log:        logger.With("adapter", source),
	}
}

// Get fetches rawURL. A cached body is returned as a 200 response. Any status
// code is returned to the caller; only transport failures and 5xx responses
// surviving the retry are errors.
func (c *Client) Get(ctx context.Context, rawURL string) (*Response, error) {
	if c.cache != nil {
		if body, ok := c.cache.Get(ctx, rawURL); ok {
			c.metrics.observe(c.source, outcomeCacheHit, 0)
			return &Response{StatusCode: http.StatusOK, Body: body, Cached: true}, nil
		}
	}

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", c.source, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		c.metrics.observe(c.source, outcomeError, time.Since(start))
		return nil, fmt.Errorf("%s: request failed: %w", c.source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		c.metrics.observe(c.source, outcomeError, time.Since(start))
		return nil, fmt.Errorf("%s: unexpected status %d", c.source, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		c.metrics.observe(c.source, outcomeError, time.Since(start))
		return nil, fmt.Errorf("%s: read body: %w", c.source, err)
	}

	c.metrics.observe(c.source, outcomeForStatus(resp.StatusCode), time.Since(start))

	if resp.StatusCode == http.StatusOK && c.cache != nil {
		c.cache.Set(ctx, rawURL, body)
	}

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "upstream retry",
		slog.String("url", req.URL.String()),
		slog.String("reason", reason),
	)

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(c.retryDelay):
	}

	return c.httpClient.Do(req)
}
