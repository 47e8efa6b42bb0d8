package matchday

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/goserg/powerrank/internal/domain"
)

// Parse reads the leading integer of a matchday tag ("12", " 3.", "7. Spieltag").
// ok is false for empty, non-numeric, non-positive and out of range tags.
func Parse(tag string) (int, bool) {
	tag = strings.TrimSpace(tag)
	end := 0
	for end < len(tag) && unicode.IsDigit(rune(tag[end])) {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(tag[:end])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Entry is a match with its resolved matchday ordinal.
type Entry struct {
	Match    domain.Match
	Matchday int
	// Synthetic is set when the tag was missing and the ordinal was carried
	// forward from the previous match.
	Synthetic bool
}

// Resolve assigns an ordinal to each match. A valid tag is taken as is, a
// missing one becomes one more than the previous ordinal. The fold runs over
// the matches in (date, id) order so the result does not depend on input
// order. The returned entries are sorted by (matchday, date, id).
func Resolve(matches []domain.Match) []Entry {
	entries := make([]Entry, len(matches))
	for i := range matches {
		entries[i] = Entry{Match: matches[i]}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return byDateID(entries[i].Match, entries[j].Match)
	})

	last := 0
	for i := range entries {
		if n, ok := Parse(entries[i].Match.MatchdayTag); ok {
			entries[i].Matchday = n
		} else {
			entries[i].Matchday = last + 1
			entries[i].Synthetic = true
		}
		last = entries[i].Matchday
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Matchday != entries[j].Matchday {
			return entries[i].Matchday < entries[j].Matchday
		}
		return byDateID(entries[i].Match, entries[j].Match)
	})
	return entries
}

// Played filters matches down to played ones and orders them
// chronologically.
func Played(matches []domain.Match) []Entry {
	played := make([]domain.Match, 0, len(matches))
	for _, m := range matches {
		if m.Played() {
			played = append(played, m)
		}
	}
	return Resolve(played)
}

func byDateID(a, b domain.Match) bool {
	if a.MatchDate != b.MatchDate {
		return a.MatchDate < b.MatchDate
	}
	return a.ID < b.ID
}
