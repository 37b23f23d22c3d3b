package provider

// RecordKind tells which shape a dictionary API response had.
type RecordKind int

const (
	// RecordUnrecognized is any body that is neither an entry list nor an
	// error object.
	RecordUnrecognized RecordKind = iota
	// RecordEntry is a successful lookup with at least one entry.
	RecordEntry
	// RecordError is an error object such as "No Definitions Found".
	RecordError
)

// DictionaryRecord is the structured result from a dictionary API provider.
// The response shape is resolved once, at ingestion.
type DictionaryRecord struct {
	Kind    RecordKind
	Entries []DictionaryEntry
	Message string
}

// Primary returns the first entry of a RecordEntry, or nil.
func (r *DictionaryRecord) Primary() *DictionaryEntry {
	if r == nil || r.Kind != RecordEntry || len(r.Entries) == 0 {
		return nil
	}
	return &r.Entries[0]
}

// Senses flattens the definitions of every entry, in order.
func (r *DictionaryRecord) Senses() []SenseResult {
	if r == nil || r.Kind != RecordEntry {
		return nil
	}

	var senses []SenseResult
	for _, e := range r.Entries {
		for _, m := range e.Meanings {
			for _, d := range m.Definitions {
				senses = append(senses, SenseResult{
					PartOfSpeech: m.PartOfSpeech,
					Definition:   d.Definition,
					Example:      d.Example,
				})
			}
		}
	}
	return senses
}

// Pronunciations returns pronunciations of every entry, deduplicated by
// transcription. A later duplicate donates its audio to an earlier entry
// that had none.
func (r *DictionaryRecord) Pronunciations() []PronunciationResult {
	if r == nil || r.Kind != RecordEntry {
		return nil
	}

	var out []PronunciationResult
	seen := make(map[string]int)

	for _, e := range r.Entries {
		for _, p := range e.Pronunciations {
			if p.Transcription != nil {
				if idx, ok := seen[*p.Transcription]; ok {
					if out[idx].AudioURL == nil && p.AudioURL != nil {
						out[idx].AudioURL = p.AudioURL
						out[idx].Region = p.Region
					}
					continue
				}
				seen[*p.Transcription] = len(out)
			}
			out = append(out, p)
		}
	}
	return out
}

// DictionaryEntry is one entry of a dictionary response.
type DictionaryEntry struct {
	Word           string
	Origin         string
	Meanings       []Meaning
	Pronunciations []PronunciationResult
}

// Meaning groups definitions sharing a part of speech.
type Meaning struct {
	PartOfSpeech string
	Definitions  []Definition
}

// Definition is a single definition. Etymology and Origin are nil when the
// field was missing from the response.
type Definition struct {
	Definition string
	Example    string
	Etymology  *string
	Origin     *string
}

// SenseResult is a flattened definition with its part of speech.
type SenseResult struct {
	PartOfSpeech string
	Definition   string
	Example      string
}

// PronunciationResult represents pronunciation data from an external dictionary.
type PronunciationResult struct {
	Transcription *string
	AudioURL      *string
	Region        *string
}

// Summary is an encyclopedia page summary.
type Summary struct {
	Extract string
	URL     string
}

// NgramPoint is one year of a usage-frequency series.
type NgramPoint struct {
	Year int
	Freq float64
}
