// Package ngram fetches usage-frequency series from the Google Books Ngram
// viewer JSON endpoint.
package ngram

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/heartmarshall/wordexplorer/internal/adapter/provider/httpx"
	"github.com/heartmarshall/wordexplorer/internal/provider"
)

const defaultBaseURL = "https://books.google.com/ngrams/json"

// Query holds the fixed query parameters sent with every request.
type Query struct {
	YearStart int
	YearEnd   int
	Corpus    int
	Smoothing int
}

// DefaultQuery covers 1800-2019 of the English corpus with smoothing 3.
var DefaultQuery = Query{YearStart: 1800, YearEnd: 2019, Corpus: 26, Smoothing: 3}

// Provider fetches n-gram frequency series.
type Provider struct {
	baseURL string
	query   Query
	client  *httpx.Client
	log     *slog.Logger
}

// NewProvider creates a Provider with the default endpoint and query.
func NewProvider(client *httpx.Client, logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, DefaultQuery, client, logger)
}

// NewProviderWithURL creates a Provider with a custom endpoint and query.
func NewProviderWithURL(baseURL string, query Query, client *httpx.Client, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Provider{
		baseURL: baseURL,
		query:   query,
		client:  client,
		log:     logger.With("adapter", "ngram"),
	}
}

// FetchSeries returns one point per year for word, starting at YearStart.
// Returns nil, nil for non-200 responses or an empty result set.
func (p *Provider) FetchSeries(ctx context.Context, word string) ([]provider.NgramPoint, error) {
	q := url.Values{}
	q.Set("content", word)
	q.Set("year_start", strconv.Itoa(p.query.YearStart))
	q.Set("year_end", strconv.Itoa(p.query.YearEnd))
	q.Set("corpus", strconv.Itoa(p.query.Corpus))
	q.Set("smoothing", strconv.Itoa(p.query.Smoothing))

	resp, err := p.client.Get(ctx, p.baseURL+"?"+q.Encode())
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		p.log.DebugContext(ctx, "ngram series unavailable",
			slog.String("word", word),
			slog.Int("status", resp.StatusCode),
		)
		return nil, nil
	}

	if !gjson.ValidBytes(resp.Body) {
		return nil, fmt.Errorf("ngram: decode json: invalid body")
	}

	series := gjson.GetBytes(resp.Body, "0.timeseries")
	if !series.IsArray() {
		return nil, nil
	}

	values := series.Array()
	span := p.query.YearEnd - p.query.YearStart + 1
	if len(values) > span {
		values = values[:span]
	}

	points := make([]provider.NgramPoint, 0, len(values))
	for i, v := range values {
		points = append(points, provider.NgramPoint{
			Year: p.query.YearStart + i,
			Freq: v.Float(),
		})
	}

	return points, nil
}
