// Package wotd picks the word of the day and keeps its page warm in the
// response cache.
package wotd

import (
	"time"

	"github.com/heartmarshall/wordexplorer/internal/domain"
)

// unixEpochOrdinal is the proleptic Gregorian ordinal of 1970-01-01, counting
// 0001-01-01 as day 1.
const unixEpochOrdinal = 719163

// Ordinal returns the proleptic Gregorian day number of t's calendar date in
// t's location, with 0001-01-01 as 1.
func Ordinal(t time.Time) int {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(midnight.Unix()/86400) + unixEpochOrdinal
}

// For returns the word of the day for t's calendar date.
func For(t time.Time) domain.WordOfTheDay {
	i := Ordinal(t) % len(words)
	if i < 0 {
		i += len(words)
	}
	return words[i]
}

// Today returns the word of the day for the local date.
func Today() domain.WordOfTheDay {
	return For(time.Now())
}

// Words returns a copy of the rotation.
func Words() []domain.WordOfTheDay {
	out := make([]domain.WordOfTheDay, len(words))
	copy(out, words)
	return out
}
