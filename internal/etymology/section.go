package etymology

import (
	"regexp"
	"strings"
)

// Header patterns match a whole line holding exactly N '=' on each side of
// the title. The title may not start or end with '=', so a level-3 header is
// never mistaken for a level-2 one.
var (
	languageHeaderRe = regexp.MustCompile(`(?m)^==[ \t]*([^=\n](?:.*[^=\n])?)[ \t]*==[ \t\r]*$`)
	subHeaderRe      = regexp.MustCompile(`^===[ \t]*([^=\n](?:.*[^=\n])?)[ \t]*===[ \t\r]*$`)

	// deepHeaderRe matches any header of level 3 or deeper. Each one ends
	// the preceding sub-section body.
	deepHeaderRe = regexp.MustCompile(`(?m)^={3,}[^=\n].*={3,}[ \t\r]*$`)
)

// Section is a titled block of markup. Body runs from the end of the header
// line up to the next header of the same level or the end of the text; a
// sub-section body also stops at a deeper header such as "====Noun====".
type Section struct {
	Name string
	Body string
}

// LanguageSections splits markup on level-2 headers ("== English ==").
// Text before the first header is dropped.
func LanguageSections(markup string) []Section {
	return splitSections(markup, languageHeaderRe)
}

// SubSections splits a language section body on level-3 headers
// ("===Etymology 1==="). Deeper headers are boundaries but never name a
// sub-section.
func SubSections(body string) []Section {
	bounds := deepHeaderRe.FindAllStringIndex(body, -1)

	var sections []Section
	for i, b := range bounds {
		m := subHeaderRe.FindStringSubmatch(body[b[0]:b[1]])
		if m == nil {
			continue
		}
		end := len(body)
		if i+1 < len(bounds) {
			end = bounds[i+1][0]
		}
		sections = append(sections, Section{
			Name: strings.TrimSpace(m[1]),
			Body: body[b[1]:end],
		})
	}
	return sections
}

func splitSections(text string, header *regexp.Regexp) []Section {
	matches := header.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	sections := make([]Section, 0, len(matches))
	for i, m := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		sections = append(sections, Section{
			Name: strings.TrimSpace(text[m[2]:m[3]]),
			Body: text[m[1]:end],
		})
	}
	return sections
}

// FindLanguageSection returns the body of the first level-2 section whose
// title equals language, ignoring case and surrounding space.
func FindLanguageSection(markup, language string) (string, bool) {
	language = strings.TrimSpace(language)
	for _, s := range LanguageSections(markup) {
		if strings.EqualFold(s.Name, language) {
			return s.Body, s.Body != ""
		}
	}
	return "", false
}

// FindSubsectionByPrefix returns the body of the first level-3 section whose
// lower-cased title starts with prefix.
func FindSubsectionByPrefix(body, prefix string) (string, bool) {
	prefix = strings.ToLower(prefix)
	for _, s := range SubSections(body) {
		if strings.HasPrefix(strings.ToLower(s.Name), prefix) {
			return s.Body, s.Body != ""
		}
	}
	return "", false
}
