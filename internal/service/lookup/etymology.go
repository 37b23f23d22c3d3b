package lookup

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/wordexplorer/internal/etymology"
	"github.com/heartmarshall/wordexplorer/internal/provider"
)

const (
	wiktionaryLabel = "Wiktionary: "
	dictionaryLabel = "DictionaryAPI: "
	labelSeparator  = "\n\n"
)

// GetCombinedEtymology fetches the Wiktionary markup and the dictionary
// record for word and returns one labeled segment per source that yielded an
// etymology, separated by a blank line. It reports false when neither did.
func (s *Service) GetCombinedEtymology(ctx context.Context, word string) (string, bool) {
	var (
		markup string
		rec    *provider.DictionaryRecord
	)

	// Each fetch degrades its own failure to absence, so Wait never errors.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		markup = s.fetchWikitext(gctx, word)
		return nil
	})
	g.Go(func() error {
		rec = s.fetchRecord(gctx, word)
		return nil
	})
	_ = g.Wait()

	var segments []string
	if markup != "" {
		if wiki, ok := etymology.ExtractStrict(markup); ok {
			segments = append(segments, wiktionaryLabel+wiki)
		}
	}
	if origin, ok := etymology.ReadOrigin(rec); ok {
		segments = append(segments, dictionaryLabel+origin)
	}

	if len(segments) == 0 {
		return "", false
	}
	return strings.Join(segments, labelSeparator), true
}

// GetEtymology runs the strict extractor over markup and falls back to the
// loose one. It always returns display text.
func (s *Service) GetEtymology(markup string) string {
	return etymology.Extract(markup)
}

// combineSources merges the wiki markup and dictionary record of one lookup.
// The loose extractor's "unparseable" sentinel counts as no wiki etymology.
func combineSources(markup string, rec *provider.DictionaryRecord) etymology.Result {
	var wiki string
	if markup != "" {
		wiki = etymology.Extract(markup)
		if etymology.IsUnparseable(wiki) {
			wiki = ""
		}
	}

	dict, _ := etymology.ReadOrigin(rec)

	return etymology.Combine(wiki, dict)
}
