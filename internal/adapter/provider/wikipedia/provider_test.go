package wikipedia

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordexplorer/internal/adapter/provider/httpx"
)

func newTestProvider(url string) *Provider {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewProviderWithURL(url, httpx.New("wikipedia", httpx.Options{}, logger), logger)
}

func TestProvider_FetchSummary_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/page/summary/Serendipity", r.URL.Path)
		w.Write([]byte(`{
			"title": "Serendipity",
			"extract": "Serendipity is an unplanned fortunate discovery.",
			"content_urls": {"desktop": {"page": "https://en.wikipedia.org/wiki/Serendipity"}}
		}`))
	}))
	defer srv.Close()

	got, err := newTestProvider(srv.URL).FetchSummary(context.Background(), "Serendipity")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Serendipity is an unplanned fortunate discovery.", got.Extract)
	assert.Equal(t, "https://en.wikipedia.org/wiki/Serendipity", got.URL)
}

func TestProvider_FetchSummary_MissingFields(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"title": "Sonder"}`))
	}))
	defer srv.Close()

	got, err := newTestProvider(srv.URL).FetchSummary(context.Background(), "Sonder")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.Extract)
	assert.Empty(t, got.URL)
}

func TestProvider_FetchSummary_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"type":"not_found"}`))
	}))
	defer srv.Close()

	got, err := newTestProvider(srv.URL).FetchSummary(context.Background(), "qwzx")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProvider_FetchSummary_InvalidJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{broken`))
	}))
	defer srv.Close()

	_, err := newTestProvider(srv.URL).FetchSummary(context.Background(), "x")
	require.Error(t, err)
}
