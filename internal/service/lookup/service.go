// Package lookup assembles word pages from the upstream sources and runs the
// etymology pipeline over what they return.
package lookup

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/wordexplorer/internal/provider"
)

type wikitextProvider interface {
	FetchWikitext(ctx context.Context, title string) (string, error)
}

type dictionaryProvider interface {
	FetchRecord(ctx context.Context, word string) (*provider.DictionaryRecord, error)
}

type summaryProvider interface {
	FetchSummary(ctx context.Context, title string) (*provider.Summary, error)
}

type frequencyProvider interface {
	FetchSeries(ctx context.Context, word string) ([]provider.NgramPoint, error)
}

// maxDefinitions caps the senses shown on a word page.
const maxDefinitions = 6

// Service looks words up across all sources. Upstream failures never fail a
// lookup; the affected source is treated as absent and logged.
type Service struct {
	log        *slog.Logger
	wiktionary wikitextProvider
	dictionary dictionaryProvider
	wikipedia  summaryProvider
	ngram      frequencyProvider
	now        func() time.Time
}

// NewService creates a new lookup service.
func NewService(
	logger *slog.Logger,
	wiktionary wikitextProvider,
	dictionary dictionaryProvider,
	wikipedia summaryProvider,
	ngram frequencyProvider,
) *Service {
	return &Service{
		log:        logger.With("service", "lookup"),
		wiktionary: wiktionary,
		dictionary: dictionary,
		wikipedia:  wikipedia,
		ngram:      ngram,
		now:        time.Now,
	}
}

// fetchWikitext returns the page markup, or "" when unavailable.
func (s *Service) fetchWikitext(ctx context.Context, word string) string {
	markup, err := s.wiktionary.FetchWikitext(ctx, word)
	if err != nil {
		s.degraded(ctx, "wiktionary", word, err)
		return ""
	}
	return markup
}

// fetchRecord returns the dictionary record, or nil when unavailable.
func (s *Service) fetchRecord(ctx context.Context, word string) *provider.DictionaryRecord {
	rec, err := s.dictionary.FetchRecord(ctx, word)
	if err != nil {
		s.degraded(ctx, "dictionary", word, err)
		return nil
	}
	return rec
}

func (s *Service) degraded(ctx context.Context, source, word string, err error) {
	s.log.WarnContext(ctx, "source unavailable, continuing without it",
		slog.String("source", source),
		slog.String("word", word),
		slog.String("error", err.Error()),
	)
}
