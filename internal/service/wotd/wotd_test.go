package wotd

import (
	"testing"
	"time"
)

func TestOrdinal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{name: "first day", date: time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC), want: 1},
		{name: "unix epoch", date: time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), want: 719163},
		{name: "2024 new year", date: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), want: 738886},
		{name: "late evening same date", date: time.Date(2024, 1, 1, 23, 59, 59, 0, time.UTC), want: 738886},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Ordinal(tt.date); got != tt.want {
				t.Errorf("Ordinal(%v) = %d, want %d", tt.date, got, tt.want)
			}
		})
	}
}

func TestOrdinal_UsesLocalDate(t *testing.T) {
	t.Parallel()

	// 2024-01-02 01:00 in UTC+5 is still 2024-01-01 in UTC; the local date wins.
	loc := time.FixedZone("UTC+5", 5*60*60)
	local := time.Date(2024, 1, 2, 1, 0, 0, 0, loc)

	if got := Ordinal(local); got != 738887 {
		t.Errorf("Ordinal = %d, want 738887", got)
	}
}

func TestFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		date time.Time
		want string
	}{
		{date: time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), want: "sonder"},
		{date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), want: "resplendent"},
		{date: time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), want: "cacophony"},
	}

	for _, tt := range tests {
		if got := For(tt.date).Word; got != tt.want {
			t.Errorf("For(%s) = %q, want %q", tt.date.Format(time.DateOnly), got, tt.want)
		}
	}
}

func TestFor_RotatesDaily(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	seen := make(map[string]bool)
	for i := range len(words) {
		seen[For(start.AddDate(0, 0, i)).Word] = true
	}

	if len(seen) != len(words) {
		t.Errorf("%d consecutive days gave %d distinct words, want %d", len(words), len(seen), len(words))
	}
	if For(start) != For(start.AddDate(0, 0, len(words))) {
		t.Error("rotation should repeat after len(words) days")
	}
}

func TestWords_ReturnsCopy(t *testing.T) {
	t.Parallel()

	w := Words()
	w[0].Word = "changed"

	if words[0].Word != "serendipity" {
		t.Errorf("Words() must not expose the rotation; words[0] = %q", words[0].Word)
	}
	if len(w) != 30 {
		t.Errorf("len(Words()) = %d, want 30", len(w))
	}
}
