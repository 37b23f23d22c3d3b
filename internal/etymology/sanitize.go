package etymology

import (
	"regexp"
	"strings"
)

var (
	templateRe   = regexp.MustCompile(`\{\{[^{}]*\}\}`)
	pipedLinkRe  = regexp.MustCompile(`\[\[[^|\]]*\|([^\]]+)\]\]`)
	bareLinkRe   = regexp.MustCompile(`\[\[([^\]]+)\]\]`)
	refBlockRe   = regexp.MustCompile(`(?s)<ref(?:\s[^>]*[^/>])?\s*>.*?</ref>`)
	htmlTagRe    = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// trimCutset is stripped from both ends of sanitized text.
const trimCutset = " ,.:;"

// Sanitize turns a block of wiki markup into plain prose.
//
// Steps run in a fixed order: templates, wikilinks, <ref> blocks, remaining
// tags, then whitespace collapsing and trimming of " ,.:;" at both ends.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}

	text = stripTemplates(text)
	text = rewriteLinks(text)
	text = refBlockRe.ReplaceAllString(text, "")
	text = htmlTagRe.ReplaceAllString(text, "")

	return strings.Trim(collapseSpace(text), trimCutset)
}

// stripTemplates removes {{...}} templates innermost first until a pass
// changes nothing. Each pass shrinks the text, so the loop is bounded by the
// nesting depth.
func stripTemplates(text string) string {
	for {
		next := templateRe.ReplaceAllString(text, "")
		if next == text {
			return text
		}
		text = next
	}
}

// stripTemplatesOnce removes only innermost templates, leaving the outer
// remains of nested ones in place.
func stripTemplatesOnce(text string) string {
	return templateRe.ReplaceAllString(text, "")
}

// rewriteLinks replaces [[target|display]] with display and [[target]] with
// target. Piped links go first so the bare pattern never sees the pipe.
func rewriteLinks(text string) string {
	text = pipedLinkRe.ReplaceAllString(text, "$1")
	return bareLinkRe.ReplaceAllString(text, "$1")
}

func collapseSpace(text string) string {
	return whitespaceRe.ReplaceAllString(text, " ")
}
