package etymology

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultLanguage is the only language section the strict extractor reads.
	DefaultLanguage = "english"

	etymologyPrefix = "etymology"

	// minUsefulRunes separates real prose from leftover punctuation.
	minUsefulRunes = 10

	// maxLooseRunes bounds the body of a simplified extract.
	maxLooseRunes = 300

	// SimplifiedPrefix marks output of the loose extractor.
	SimplifiedPrefix = "(Simplified extract) "

	// Unparseable is returned by ExtractLoose and Extract when nothing usable
	// was found.
	Unparseable = "Etymology unavailable or too complex to parse."
)

// looseEtymologyRe finds the first "===Etymology===" block anywhere in the
// page, regardless of which language section it belongs to.
var looseEtymologyRe = regexp.MustCompile(`(?s)===Etymology===(.*?)(?:===|\z)`)

// ExtractStrict returns the cleaned first "Etymology*" subsection of the
// English section of a page.
func ExtractStrict(markup string) (string, bool) {
	return extractStrict(markup, DefaultLanguage)
}

func extractStrict(markup, language string) (string, bool) {
	if markup == "" {
		return "", false
	}

	section, ok := FindLanguageSection(markup, language)
	if !ok {
		return "", false
	}

	block, ok := FindSubsectionByPrefix(section, etymologyPrefix)
	if !ok {
		return "", false
	}

	clean := Sanitize(block)
	return clean, clean != ""
}

// ExtractLoose is the structure-agnostic fallback. It takes the first
// "===Etymology===" block of the full page, cleans it with a single template
// pass, and returns it tagged with SimplifiedPrefix and cut to 300 runes.
// It never reports absence: Unparseable is returned instead.
func ExtractLoose(markup string) string {
	if markup == "" {
		return Unparseable
	}

	m := looseEtymologyRe.FindStringSubmatch(markup)
	if m == nil {
		return Unparseable
	}

	raw := stripTemplatesOnce(m[1])
	raw = htmlTagRe.ReplaceAllString(raw, "")
	raw = rewriteLinks(raw)
	raw = strings.TrimSpace(collapseSpace(raw))

	if utf8.RuneCountInString(raw) <= minUsefulRunes {
		return Unparseable
	}

	return SimplifiedPrefix + truncateRunes(raw, maxLooseRunes) + "..."
}

// Extract runs the strict extractor and falls back to ExtractLoose when the
// strict result is absent or too short to be real content.
func Extract(markup string) string {
	if clean, ok := ExtractStrict(markup); ok && utf8.RuneCountInString(clean) > minUsefulRunes {
		return clean
	}
	return ExtractLoose(markup)
}

// IsUnparseable reports whether s is the sentinel returned when no etymology
// could be extracted.
func IsUnparseable(s string) bool {
	return s == Unparseable
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
