package freedict

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/heartmarshall/wordexplorer/internal/adapter/provider/httpx"
	"github.com/heartmarshall/wordexplorer/internal/provider"
)

const defaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

// defaultErrorMessage is used when an error object carries no message.
const defaultErrorMessage = "No definition found"

// Provider fetches dictionary data from the FreeDictionary API.
type Provider struct {
	baseURL string
	client  *httpx.Client
	log     *slog.Logger
}

// NewProvider creates a Provider with the default FreeDictionary API URL.
func NewProvider(client *httpx.Client, logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, client, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL.
func NewProviderWithURL(baseURL string, client *httpx.Client, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Provider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		log:     logger.With("adapter", "freedict"),
	}
}

// FetchRecord fetches the dictionary record for word. The response shape is
// resolved here: an entry list, an error object ("No Definitions Found"), or
// anything else. Only transport failures and undecodable bodies are errors.
func (p *Provider) FetchRecord(ctx context.Context, word string) (*provider.DictionaryRecord, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(word)

	p.log.DebugContext(ctx, "freedict request", slog.String("word", word))

	resp, err := p.client.Get(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(resp.Body) {
		return nil, fmt.Errorf("freedict: decode json: invalid body (status %d)", resp.StatusCode)
	}

	rec, err := decodeRecord(resp.Body)
	if err != nil {
		return nil, err
	}

	p.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.Int("status", resp.StatusCode),
		slog.Bool("cached", resp.Cached),
		slog.Int("entries", len(rec.Entries)),
	)

	if resp.StatusCode != http.StatusOK && rec.Kind == provider.RecordEntry {
		return nil, fmt.Errorf("freedict: unexpected status %d", resp.StatusCode)
	}

	return rec, nil
}

// decodeRecord inspects the top-level JSON shape and maps it to a record.
func decodeRecord(body []byte) (*provider.DictionaryRecord, error) {
	root := gjson.ParseBytes(body)

	switch {
	case root.IsArray():
		var entries []apiEntry
		if err := json.Unmarshal(body, &entries); err != nil {
			return nil, fmt.Errorf("freedict: decode json: %w", err)
		}
		if len(entries) == 0 {
			return &provider.DictionaryRecord{Kind: provider.RecordUnrecognized}, nil
		}
		return mapAPIResponse(entries), nil

	case root.IsObject():
		msg := root.Get("message").String()
		if msg == "" {
			msg = root.Get("title").String()
		}
		if msg == "" {
			msg = defaultErrorMessage
		}
		return &provider.DictionaryRecord{Kind: provider.RecordError, Message: msg}, nil

	default:
		return &provider.DictionaryRecord{Kind: provider.RecordUnrecognized}, nil
	}
}

// mapAPIResponse converts the API entries into a provider.DictionaryRecord.
// Entries stay separate; DictionaryRecord merges senses and pronunciations
// on demand.
func mapAPIResponse(entries []apiEntry) *provider.DictionaryRecord {
	rec := &provider.DictionaryRecord{
		Kind:    provider.RecordEntry,
		Entries: make([]provider.DictionaryEntry, 0, len(entries)),
	}

	for _, e := range entries {
		entry := provider.DictionaryEntry{
			Word:     e.Word,
			Origin:   e.Origin,
			Meanings: make([]provider.Meaning, 0, len(e.Meanings)),
		}

		for _, m := range e.Meanings {
			meaning := provider.Meaning{
				PartOfSpeech: m.PartOfSpeech,
				Definitions:  make([]provider.Definition, 0, len(m.Definitions)),
			}
			for _, d := range m.Definitions {
				meaning.Definitions = append(meaning.Definitions, provider.Definition{
					Definition: d.Definition,
					Example:    d.Example,
					Etymology:  d.Etymology,
					Origin:     d.Origin,
				})
			}
			entry.Meanings = append(entry.Meanings, meaning)
		}

		for _, ph := range e.Phonetics {
			if pron := mapPhonetic(ph); pron != nil {
				entry.Pronunciations = append(entry.Pronunciations, *pron)
			}
		}

		rec.Entries = append(rec.Entries, entry)
	}

	return rec
}

// mapPhonetic converts an API phonetic to a PronunciationResult.
// Returns nil if both text and audio are empty.
func mapPhonetic(ph apiPhonetic) *provider.PronunciationResult {
	if ph.Text == "" && ph.Audio == "" {
		return nil
	}

	pron := &provider.PronunciationResult{}

	if ph.Text != "" {
		t := ph.Text
		pron.Transcription = &t
	}

	if ph.Audio != "" {
		a := ph.Audio
		pron.AudioURL = &a
		pron.Region = inferRegion(ph.Audio)
	}

	return pron
}

// inferRegion attempts to determine the pronunciation region from the audio URL.
func inferRegion(audioURL string) *string {
	lower := strings.ToLower(audioURL)
	if strings.Contains(lower, "-us.") || strings.Contains(lower, "-us-") {
		r := "US"
		return &r
	}
	if strings.Contains(lower, "-uk.") || strings.Contains(lower, "-uk-") {
		r := "UK"
		return &r
	}
	return nil
}
