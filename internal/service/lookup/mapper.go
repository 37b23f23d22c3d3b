package lookup

import (
	"github.com/heartmarshall/wordexplorer/internal/domain"
	"github.com/heartmarshall/wordexplorer/internal/provider"
)

// buildPage maps the raw source results of one lookup into a WordPage.
// Any of markup, rec, summary and series may be absent.
func buildPage(
	term, markup string,
	rec *provider.DictionaryRecord,
	summary *provider.Summary,
	series []provider.NgramPoint,
) *domain.WordPage {
	ety := combineSources(markup, rec)

	page := &domain.WordPage{
		Term:                term,
		Phonetic:            firstTranscription(rec),
		Definitions:         mapDefinitions(rec.Senses()),
		Etymology:           ety.String(),
		EtymologyProvenance: ety.Provenance.String(),
		Ngram:               mapSeries(series),
	}

	if summary != nil {
		page.Wikipedia = &domain.Summary{Extract: summary.Extract, URL: summary.URL}
	}

	return page
}

func firstTranscription(rec *provider.DictionaryRecord) string {
	for _, p := range rec.Pronunciations() {
		if p.Transcription != nil && *p.Transcription != "" {
			return *p.Transcription
		}
	}
	return ""
}

func mapDefinitions(senses []provider.SenseResult) []domain.Definition {
	if len(senses) > maxDefinitions {
		senses = senses[:maxDefinitions]
	}

	defs := make([]domain.Definition, 0, len(senses))
	for _, s := range senses {
		defs = append(defs, domain.Definition{
			PartOfSpeech: s.PartOfSpeech,
			Definition:   s.Definition,
			Example:      s.Example,
		})
	}
	return defs
}

func mapSeries(series []provider.NgramPoint) []domain.FrequencyPoint {
	if len(series) == 0 {
		return nil
	}

	out := make([]domain.FrequencyPoint, len(series))
	for i, p := range series {
		out[i] = domain.FrequencyPoint{Year: p.Year, Freq: p.Freq}
	}
	return out
}
