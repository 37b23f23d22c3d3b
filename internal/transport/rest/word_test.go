package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordexplorer/internal/domain"
	"github.com/heartmarshall/wordexplorer/internal/etymology"
)

// ---------------------------------------------------------------------------
// Manual mocks (moq-style with func fields)
// ---------------------------------------------------------------------------

type mockWordService struct {
	LookupFunc               func(ctx context.Context, term string) (*domain.WordPage, error)
	GetCombinedEtymologyFunc func(ctx context.Context, word string) (string, bool)
	GetEtymologyFunc         func(markup string) string
}

func (m *mockWordService) Lookup(ctx context.Context, term string) (*domain.WordPage, error) {
	return m.LookupFunc(ctx, term)
}

func (m *mockWordService) GetCombinedEtymology(ctx context.Context, word string) (string, bool) {
	return m.GetCombinedEtymologyFunc(ctx, word)
}

func (m *mockWordService) GetEtymology(markup string) string {
	if m.GetEtymologyFunc == nil {
		return etymology.Extract(markup)
	}
	return m.GetEtymologyFunc(markup)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newTestWordHandler(t *testing.T, svc *mockWordService) *WordHandler {
	t.Helper()
	h, err := NewWordHandler(svc, slog.Default())
	require.NoError(t, err)
	h.now = func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) }
	return h
}

func newTestServer(t *testing.T, svc *mockWordService) *httptest.Server {
	t.Helper()
	h := newTestWordHandler(t, svc)
	srv := httptest.NewServer(NewRouter(h, NewHealthHandler(nil, "test"), nil))
	t.Cleanup(srv.Close)
	return srv
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}
}

func samplePage(term string) *domain.WordPage {
	return &domain.WordPage{
		Term:     term,
		Phonetic: "/səˈriːn/",
		Definitions: []domain.Definition{
			{PartOfSpeech: "adjective", Definition: "Calm and untroubled.", Example: "a serene smile"},
		},
		Wikipedia:           &domain.Summary{Extract: "Serenity is a state...", URL: "https://en.wikipedia.org/wiki/Serenity"},
		Etymology:           "From Latin serenus. | From , from Latin",
		EtymologyProvenance: "both",
		Ngram: []domain.FrequencyPoint{
			{Year: 1800, Freq: 1e-6}, {Year: 1801, Freq: 4e-6}, {Year: 1802, Freq: 2e-6},
		},
		WordOfTheDay: domain.WordOfTheDay{Word: "resplendent", Definition: "richly colorful"},
	}
}

// ---------------------------------------------------------------------------
// Pages
// ---------------------------------------------------------------------------

func TestIndex_ShowsWordOfTheDay(t *testing.T) {
	t.Parallel()

	h := newTestWordHandler(t, &mockWordService{})

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "resplendent")
	assert.Contains(t, rec.Body.String(), `href="/word/resplendent"`)
}

func TestSearch_BlankQuery(t *testing.T) {
	t.Parallel()

	h := newTestWordHandler(t, &mockWordService{})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("q=+++"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), emptyQueryMessage)
}

func TestSearch_Redirects(t *testing.T) {
	t.Parallel()

	h := newTestWordHandler(t, &mockWordService{})

	form := url.Values{"q": {"  ad hoc "}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/word/ad%20hoc", rec.Header().Get("Location"))
}

func TestWordPage_Renders(t *testing.T) {
	t.Parallel()

	var gotTerm string
	srv := newTestServer(t, &mockWordService{
		LookupFunc: func(_ context.Context, term string) (*domain.WordPage, error) {
			gotTerm = term
			return samplePage(term), nil
		},
	})

	resp, err := http.Get(srv.URL + "/word/serene")
	require.NoError(t, err)
	defer resp.Body.Close()

	body := readBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "serene", gotTerm)
	for _, want := range []string{"/səˈriːn/", "Calm and untroubled.", "From Latin serenus.", "Read more on Wikipedia", "<polyline", "peak in 1801"} {
		assert.Contains(t, body, want)
	}
}

func TestWordPage_EscapesMarkup(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &mockWordService{
		LookupFunc: func(_ context.Context, term string) (*domain.WordPage, error) {
			p := samplePage(term)
			p.Etymology = `<script>alert(1)</script>`
			return p, nil
		},
	})

	resp, err := http.Get(srv.URL + "/word/serene")
	require.NoError(t, err)
	defer resp.Body.Close()

	body := readBody(t, resp)

	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestWordPage_BlankTermRedirects(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &mockWordService{
		LookupFunc: func(context.Context, string) (*domain.WordPage, error) {
			t.Error("lookup should not run for a blank term")
			return nil, nil
		},
	})

	for _, path := range []string{"/word/%20%20", "/word/"} {
		resp, err := noRedirectClient().Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusFound, resp.StatusCode, path)
		assert.Equal(t, "/", resp.Header.Get("Location"), path)
	}
}

func TestWordPage_ValidationError(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &mockWordService{
		LookupFunc: func(context.Context, string) (*domain.WordPage, error) {
			return nil, domain.NewValidationError("term", "too long")
		},
	})

	resp, err := http.Get(srv.URL + "/word/" + strings.Repeat("a", 150))
	require.NoError(t, err)
	defer resp.Body.Close()

	body := readBody(t, resp)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "Invalid term: too long.")
}

func TestWordPage_LookupFailure(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &mockWordService{
		LookupFunc: func(context.Context, string) (*domain.WordPage, error) {
			return nil, errors.New("unexpected")
		},
	})

	resp, err := http.Get(srv.URL + "/word/serene")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

// ---------------------------------------------------------------------------
// JSON API
// ---------------------------------------------------------------------------

func TestAPI_GetWord(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &mockWordService{
		LookupFunc: func(_ context.Context, term string) (*domain.WordPage, error) {
			return samplePage(term), nil
		},
	})

	resp, err := http.Get(srv.URL + "/api/v1/words/serene")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got wordResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	assert.Equal(t, "serene", got.Term)
	assert.Equal(t, "both", got.EtymologyProvenance)
	require.Len(t, got.Definitions, 1)
	assert.Equal(t, "adjective", got.Definitions[0].PartOfSpeech)
	require.NotNil(t, got.Wikipedia)
	assert.Len(t, got.Ngram, 3)
	assert.Equal(t, "resplendent", got.WordOfTheDay.Word)
}

func TestAPI_GetWord_EmptyCollectionsAreArrays(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &mockWordService{
		LookupFunc: func(_ context.Context, term string) (*domain.WordPage, error) {
			return &domain.WordPage{Term: term, Etymology: etymology.Unavailable, EtymologyProvenance: "none"}, nil
		},
	})

	resp, err := http.Get(srv.URL + "/api/v1/words/qwzx")
	require.NoError(t, err)
	defer resp.Body.Close()

	var raw map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))

	assert.JSONEq(t, `[]`, string(raw["definitions"]))
	assert.JSONEq(t, `[]`, string(raw["ngram"]))
	assert.JSONEq(t, `null`, string(raw["wikipedia"]))
	assert.JSONEq(t, `"Etymology unavailable."`, string(raw["etymology"]))
}

func TestAPI_GetWord_ValidationError(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &mockWordService{
		LookupFunc: func(context.Context, string) (*domain.WordPage, error) {
			return nil, domain.NewValidationError("term", "too long")
		},
	})

	resp, err := http.Get(srv.URL + "/api/v1/words/x")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_GetEtymology(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		found bool
		want  string
	}{
		{name: "found", text: "Wiktionary: From Latin serenus", found: true, want: `{"word":"serene","etymology":"Wiktionary: From Latin serenus"}`},
		{name: "absent", found: false, want: `{"word":"serene","etymology":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := newTestServer(t, &mockWordService{
				GetCombinedEtymologyFunc: func(_ context.Context, word string) (string, bool) {
					assert.Equal(t, "serene", word)
					return tt.text, tt.found
				},
			})

			resp, err := http.Get(srv.URL + "/api/v1/words/serene/etymology")
			require.NoError(t, err)
			defer resp.Body.Close()

			body := readBody(t, resp)

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.JSONEq(t, tt.want, body)
		})
	}
}

func TestAPI_Extract(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &mockWordService{})

	tests := []struct {
		name       string
		markup     string
		wantStrict *string
		wantPrefix string
	}{
		{
			name:       "strict",
			markup:     "==English==\n===Etymology===\nFrom Middle English serene.\n===Noun===\n",
			wantStrict: ptr("From Middle English serene"),
			wantPrefix: "From Middle English serene",
		},
		{
			name:       "loose only",
			markup:     "===Etymology===From Old French 'essai'.",
			wantPrefix: etymology.SimplifiedPrefix,
		},
		{
			name:       "nothing",
			markup:     "",
			wantPrefix: etymology.Unparseable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp, err := http.Post(srv.URL+"/api/v1/etymology/extract", "text/plain", strings.NewReader(tt.markup))
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, http.StatusOK, resp.StatusCode)

			var got extractResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

			assert.Equal(t, tt.wantStrict, got.Strict)
			assert.True(t, strings.HasPrefix(got.Etymology, tt.wantPrefix), "got %q", got.Etymology)
		})
	}
}

func TestAPI_Extract_TooLarge(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &mockWordService{})

	body := strings.Repeat("a", maxMarkupBytes+1)
	resp, err := http.Post(srv.URL+"/api/v1/etymology/extract", "text/plain", strings.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestRouter_Probes(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, &mockWordService{})

	for _, path := range []string{"/live", "/ready", "/health"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "no metrics route without a handler")
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func TestSparkline(t *testing.T) {
	t.Parallel()

	points, peak := sparkline([]domain.FrequencyPoint{
		{Year: 2000, Freq: 1}, {Year: 2001, Freq: 2}, {Year: 2002, Freq: 0},
	}, 100, 50)

	assert.Equal(t, "0.0,25.0 50.0,0.0 100.0,50.0", points)
	assert.Equal(t, 2001, peak)
}

func TestSparkline_FlatZero(t *testing.T) {
	t.Parallel()

	points, peak := sparkline([]domain.FrequencyPoint{{Year: 2000}, {Year: 2001}}, 100, 50)

	assert.Empty(t, points)
	assert.Zero(t, peak)
}

func TestNewWordView_ShortSeries(t *testing.T) {
	t.Parallel()

	v := newWordView(&domain.WordPage{Ngram: []domain.FrequencyPoint{{Year: 2000, Freq: 1}}})
	assert.Empty(t, v.Sparkline)
}

func ptr(s string) *string { return &s }
