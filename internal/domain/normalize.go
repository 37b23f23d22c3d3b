package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// maxTermLength bounds a lookup term in runes.
const maxTermLength = 100

// NormalizeTerm prepares a user-supplied lookup term:
//   - trims leading/trailing whitespace
//   - compresses inner whitespace runs into one space
//   - applies Unicode NFC so composed and decomposed input hit the same page
//
// Case is preserved: Wiktionary and Wikipedia titles are case-sensitive.
func NormalizeTerm(term string) string {
	term = strings.Join(strings.Fields(term), " ")
	if term == "" {
		return ""
	}
	return norm.NFC.String(term)
}

// ValidateTerm normalizes term and checks it is usable for a lookup.
func ValidateTerm(term string) (string, error) {
	term = NormalizeTerm(term)
	if term == "" {
		return "", NewValidationError("term", "required")
	}
	if len([]rune(term)) > maxTermLength {
		return "", NewValidationError("term", "too long")
	}
	return term, nil
}
