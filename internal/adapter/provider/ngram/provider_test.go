package ngram

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
	"github.com/heartmarshall/wordexplorer/internal/provider"
)

func newTestProvider(url string, q Query) *Provider {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewProviderWithURL(url, q, httpx.New("ngram", httpx.Options{}, logger), logger)
}

func TestProvider_FetchSeries_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "lacuna", q.Get("content"))
		assert.Equal(t, "1800", q.Get("year_start"))
		assert.Equal(t, "2019", q.Get("year_end"))
		assert.Equal(t, "26", q.Get("corpus"))
		assert.Equal(t, "3", q.Get("smoothing"))
		w.Write([]byte(`[{"ngram":"lacuna","parent":"","type":"NGRAM","timeseries":[1.5e-7,2e-7,2.5e-7]}]`))
	}))
	defer srv.Close()

	got, err := newTestProvider(srv.URL, DefaultQuery).FetchSeries(context.Background(), "lacuna")
	require.NoError(t, err)
	assert.Equal(t, []provider.NgramPoint{
		{Year: 1800, Freq: 1.5e-7},
		{Year: 1801, Freq: 2e-7},
		{Year: 1802, Freq: 2.5e-7},
	}, got)
}

func TestProvider_FetchSeries_BoundedByYearSpan(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"timeseries":[1,2,3,4,5]}]`))
	}))
	defer srv.Close()

	got, err := newTestProvider(srv.URL, Query{YearStart: 2000, YearEnd: 2002}).FetchSeries(context.Background(), "x")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 2002, got[2].Year)
}

func TestProvider_FetchSeries_EmptyResult(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	got, err := newTestProvider(srv.URL, DefaultQuery).FetchSeries(context.Background(), "qwzx")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProvider_FetchSeries_NonOK(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	got, err := newTestProvider(srv.URL, DefaultQuery).FetchSeries(context.Background(), "x")
	require.NoError(t, err)
	assert.Nil(t, got)
}
