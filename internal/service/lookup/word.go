package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/wordexplorer/internal/domain"
	"github.com/heartmarshall/wordexplorer/internal/provider"
	"github.com/heartmarshall/wordexplorer/internal/service/wotd"
)

// Lookup builds the full word page for term. The four sources are queried
// concurrently; only an invalid term is an error.
func (s *Service) Lookup(ctx context.Context, term string) (*domain.WordPage, error) {
	term, err := domain.ValidateTerm(term)
	if err != nil {
		return nil, fmt.Errorf("lookup: %w", err)
	}

	start := time.Now()

	var (
		markup  string
		rec     *provider.DictionaryRecord
		summary *provider.Summary
		series  []provider.NgramPoint
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		markup = s.fetchWikitext(gctx, term)
		return nil
	})
	g.Go(func() error {
		rec = s.fetchRecord(gctx, term)
		return nil
	})
	g.Go(func() error {
		var err error
		if summary, err = s.wikipedia.FetchSummary(gctx, term); err != nil {
			s.degraded(gctx, "wikipedia", term, err)
			summary = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if series, err = s.ngram.FetchSeries(gctx, term); err != nil {
			s.degraded(gctx, "ngram", term, err)
			series = nil
		}
		return nil
	})
	_ = g.Wait()

	page := buildPage(term, markup, rec, summary, series)
	page.WordOfTheDay = wotd.For(s.now())

	s.log.DebugContext(ctx, "word page assembled",
		slog.String("word", term),
		slog.String("etymology", page.EtymologyProvenance),
		slog.Int("definitions", len(page.Definitions)),
		slog.Duration("duration", time.Since(start)),
	)

	return page, nil
}
