// Package wiktionary fetches raw page wikitext from the MediaWiki action API.
package wiktionary

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"

	"github.com/heartmarshall/wordexplorer/internal/adapter/provider/httpx"
)

const defaultBaseURL = "https://en.wiktionary.org/w/api.php"

// Provider fetches Wiktionary page markup.
type Provider struct {
	baseURL string
	client  *httpx.Client
	log     *slog.Logger
}

// NewProvider creates a Provider for the English Wiktionary.
func NewProvider(client *httpx.Client, logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, client, logger)
}

// NewProviderWithURL creates a Provider with a custom api.php URL.
func NewProviderWithURL(baseURL string, client *httpx.Client, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Provider{
		baseURL: baseURL,
		client:  client,
		log:     logger.With("adapter", "wiktionary"),
	}
}

// FetchWikitext returns the full wikitext of the page titled title.
// Returns "", nil when the API reports an error (missing page) or the
// response carries no wikitext.
func (p *Provider) FetchWikitext(ctx context.Context, title string) (string, error) {
	q := url.Values{}
	q.Set("action", "parse")
	q.Set("page", title)
	q.Set("prop", "wikitext")
	q.Set("format", "json")
	q.Set("formatversion", "2")

	resp, err := p.client.Get(ctx, p.baseURL+"?"+q.Encode())
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("wiktionary: unexpected status %d", resp.StatusCode)
	}

	if !gjson.ValidBytes(resp.Body) {
		return "", fmt.Errorf("wiktionary: decode json: invalid body")
	}

	root := gjson.ParseBytes(resp.Body)

	if apiErr := root.Get("error"); apiErr.Exists() {
		p.log.DebugContext(ctx, "wiktionary page unavailable",
			slog.String("title", title),
			slog.String("code", apiErr.Get("code").String()),
		)
		return "", nil
	}

	wikitext := root.Get("parse.wikitext")
	if wikitext.Type != gjson.String {
		p.log.DebugContext(ctx, "wiktionary response without wikitext", slog.String("title", title))
		return "", nil
	}

	return wikitext.String(), nil
}
