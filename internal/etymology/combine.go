package etymology

import "strings"

// Unavailable is the display text when no source produced an etymology.
const Unavailable = "Etymology unavailable."

// combineSeparator joins the dictionary and wiki parts of a combined result.
const combineSeparator = " | "

// Provenance records which sources contributed to a Result.
type Provenance int

const (
	ProvenanceNone Provenance = iota
	ProvenanceWiki
	ProvenanceDict
	ProvenanceBoth
)

func (p Provenance) String() string {
	switch p {
	case ProvenanceWiki:
		return "wiki"
	case ProvenanceDict:
		return "dict"
	case ProvenanceBoth:
		return "both"
	default:
		return "none"
	}
}

// Result is a combined etymology. The zero value means unavailable.
type Result struct {
	Text       string
	Provenance Provenance
}

// Found reports whether any source contributed text.
func (r Result) Found() bool {
	return r.Provenance != ProvenanceNone
}

// String returns the display text, or Unavailable.
func (r Result) String() string {
	if !r.Found() {
		return Unavailable
	}
	return r.Text
}

// Combine merges a wiki-derived and a dictionary-derived etymology. Empty
// (or blank) input counts as absent. The dictionary text comes first; the
// wiki text is appended after " | " unless the dictionary text already
// contains it.
func Combine(wiki, dict string) Result {
	wiki = strings.TrimSpace(wiki)
	dict = strings.TrimSpace(dict)

	switch {
	case wiki == "" && dict == "":
		return Result{}
	case dict == "":
		return Result{Text: wiki, Provenance: ProvenanceWiki}
	case wiki == "" || strings.Contains(dict, wiki):
		return Result{Text: dict, Provenance: ProvenanceDict}
	default:
		return Result{Text: dict + combineSeparator + wiki, Provenance: ProvenanceBoth}
	}
}
