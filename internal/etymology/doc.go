// Package etymology extracts etymology prose from Wiktionary markup and
// dictionary records and merges the results into a single display string.
//
// Every function in this package is pure: no I/O, no shared state. Absence is
// reported as ("", false), never as an error, because most words legitimately
// lack a recognisable etymology section.
package etymology
