package matchday

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goserg/powerrank/internal/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		tag    string
		want   int
		wantOk bool
	}{
		{tag: "12", want: 12, wantOk: true},
		{tag: " 3.", want: 3, wantOk: true},
		{tag: "7. Spieltag", want: 7, wantOk: true},
		{tag: "", wantOk: false},
		{tag: "abc", wantOk: false},
		{tag: "0", wantOk: false},
		{tag: "-2", wantOk: false},
		{tag: "1234567890", want: 1234567890, wantOk: true},
		{tag: "99999999999999999999", wantOk: false},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, ok := Parse(tt.tag)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func ids(entries []Entry) []string {
	out := make([]string, len(entries))
	for i := range entries {
		out[i] = entries[i].Match.ID
	}
	return out
}

func days(entries []Entry) []int {
	out := make([]int, len(entries))
	for i := range entries {
		out[i] = entries[i].Matchday
	}
	return out
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		matches  []domain.Match
		wantIDs  []string
		wantDays []int
	}{
		{
			name: "tags order before dates",
			matches: []domain.Match{
				{ID: "a", MatchdayTag: "3", MatchDate: "2024-09-01"},
				{ID: "b", MatchdayTag: "1", MatchDate: "2024-09-20"},
				{ID: "c", MatchdayTag: "2", MatchDate: "2024-09-10"},
			},
			wantIDs:  []string{"b", "c", "a"},
			wantDays: []int{1, 2, 3},
		},
		{
			name: "ties by date then id",
			matches: []domain.Match{
				{ID: "z", MatchdayTag: "1", MatchDate: "2024-09-02"},
				{ID: "y", MatchdayTag: "1", MatchDate: "2024-09-01"},
				{ID: "x", MatchdayTag: "1", MatchDate: "2024-09-01"},
			},
			wantIDs:  []string{"x", "y", "z"},
			wantDays: []int{1, 1, 1},
		},
		{
			name: "missing tags carry forward",
			matches: []domain.Match{
				{ID: "m1", MatchdayTag: "1", MatchDate: "2024-09-01"},
				{ID: "m2", MatchDate: "2024-09-08"},
				{ID: "m3", MatchdayTag: "x", MatchDate: "2024-09-15"},
				{ID: "m4", MatchdayTag: "5", MatchDate: "2024-09-22"},
				{ID: "m5", MatchDate: "2024-09-29"},
			},
			wantIDs:  []string{"m1", "m2", "m3", "m4", "m5"},
			wantDays: []int{1, 2, 3, 5, 6},
		},
		{
			name: "no tags at all",
			matches: []domain.Match{
				{ID: "2"},
				{ID: "1"},
			},
			wantIDs:  []string{"1", "2"},
			wantDays: []int{1, 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.matches)
			assert.Equal(t, tt.wantIDs, ids(got))
			assert.Equal(t, tt.wantDays, days(got))
		})
	}
}

func TestResolve_InputOrderIndependent(t *testing.T) {
	a := []domain.Match{
		{ID: "m1", MatchdayTag: "1", MatchDate: "2024-09-01"},
		{ID: "m2", MatchDate: "2024-09-08"},
		{ID: "m3", MatchdayTag: "4", MatchDate: "2024-09-15"},
	}
	b := []domain.Match{a[2], a[0], a[1]}
	assert.Equal(t, Resolve(a), Resolve(b))
}

func TestPlayed(t *testing.T) {
	got := Played([]domain.Match{
		{ID: "1", Status: domain.MatchPlayed, MatchdayTag: "1"},
		{ID: "2", Status: domain.MatchNotPlayed, MatchdayTag: "2"},
		{ID: "3", Status: domain.MatchPlayed, MatchdayTag: "3"},
	})
	assert.Equal(t, []string{"1", "3"}, ids(got))
	assert.False(t, got[0].Synthetic)
}
