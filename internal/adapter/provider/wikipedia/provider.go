// Package wikipedia fetches page summaries from the Wikipedia REST API.
package wikipedia

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/heartmarshall/wordexplorer/internal/adapter/provider/httpx"
	"github.com/heartmarshall/wordexplorer/internal/provider"
)

const defaultBaseURL = "https://en.wikipedia.org/api/rest_v1"

// Provider fetches encyclopedia summaries.
type Provider struct {
	baseURL string
	client  *httpx.Client
	log     *slog.Logger
}

// NewProvider creates a Provider for the English Wikipedia.
func NewProvider(client *httpx.Client, logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, client, logger)
}

// NewProviderWithURL creates a Provider with a custom REST base URL.
func NewProviderWithURL(baseURL string, client *httpx.Client, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Provider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		log:     logger.With("adapter", "wikipedia"),
	}
}

// FetchSummary returns the summary of the page titled title.
// Returns nil, nil for any non-200 response.
func (p *Provider) FetchSummary(ctx context.Context, title string) (*provider.Summary, error) {
	resp, err := p.client.Get(ctx, p.baseURL+"/page/summary/"+url.PathEscape(title))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		p.log.DebugContext(ctx, "wikipedia summary unavailable",
			slog.String("title", title),
			slog.Int("status", resp.StatusCode),
		)
		return nil, nil
	}

	if !gjson.ValidBytes(resp.Body) {
		return nil, fmt.Errorf("wikipedia: decode json: invalid body")
	}

	root := gjson.ParseBytes(resp.Body)

	return &provider.Summary{
		Extract: root.Get("extract").String(),
		URL:     root.Get("content_urls.desktop.page").String(),
	}, nil
}
