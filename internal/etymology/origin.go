package etymology

import "github.com/heartmarshall/wordexplorer/internal/provider"

// definitionFields lists the per-definition fields consulted by ReadOrigin,
// in priority order.
var definitionFields = []func(provider.Definition) *string{
	func(d provider.Definition) *string { return d.Etymology },
	func(d provider.Definition) *string { return d.Origin },
}

// ReadOrigin pulls etymology text out of a dictionary record.
//
// A non-empty top-level origin wins. Otherwise meanings and their definitions
// are scanned in order, and the first definition carrying an etymology (or,
// failing that, an origin) field decides the result. A field that is present
// but empty still ends the search and yields absence.
func ReadOrigin(rec *provider.DictionaryRecord) (string, bool) {
	if rec == nil {
		return "", false
	}

	entry := rec.Primary()
	if entry == nil {
		return "", false
	}

	if entry.Origin != "" {
		return entry.Origin, true
	}

	for _, m := range entry.Meanings {
		for _, d := range m.Definitions {
			for _, field := range definitionFields {
				if v := field(d); v != nil {
					return *v, *v != ""
				}
			}
		}
	}

	return "", false
}
