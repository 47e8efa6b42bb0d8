// Package recommend suggests power balanced groups.
package recommend

import (
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/goserg/powerrank/internal/domain"
)

type Group struct {
	Index int                `json:"index"`
	Teams []domain.TeamPower `json:"teams"`
}

var romanSuffixes = mapset.NewSet("i", "ii", "iii", "iv", "v", "vi", "vii", "viii", "ix", "x")

// Balanced fills groups in order with teams sorted by power. Group sizes differ
// by at most one, the first groups take the remainder. A team skips groups that
// already hold a team of the same club while another group still has room.
func Balanced(sorted []domain.TeamPower, numGroups int) []Group {
	if numGroups <= 0 {
		numGroups = 1
	}

	sizes := make([]int, numGroups)
	for i := range sizes {
		sizes[i] = len(sorted) / numGroups
		if i < len(sorted)%numGroups {
			sizes[i]++
		}
	}

	groups := make([]Group, numGroups)
	clubs := make([]mapset.Set[string], numGroups)
	for i := range groups {
		groups[i].Index = i + 1
		groups[i].Teams = []domain.TeamPower{}
		clubs[i] = mapset.NewThreadUnsafeSet[string]()
	}

	hasRoom := func(i int) bool { return len(groups[i].Teams) < sizes[i] }
	assign := func(tp domain.TeamPower, i int, club string) {
		groups[i].Teams = append(groups[i].Teams, tp)
		if club != "" {
			clubs[i].Add(club)
		}
	}

	for _, tp := range sorted {
		club := ClubKey(tp.Team.TeamName)
		target := -1
		for i := range groups {
			if !hasRoom(i) {
				continue
			}
			if club == "" || !clubs[i].Contains(club) {
				target = i
				break
			}
		}
		if target < 0 {
			for i := range groups {
				if hasRoom(i) {
					target = i
					break
				}
			}
		}
		if target >= 0 {
			assign(tp, target, club)
		}
	}
	return groups
}

// ClubKey strips trailing team numbers ("II", "2") from a lowercased name.
func ClubKey(name string) string {
	tokens := strings.Fields(strings.ToLower(name))
	for len(tokens) > 1 {
		last := tokens[len(tokens)-1]
		if _, err := strconv.Atoi(last); err != nil && !romanSuffixes.Contains(last) {
			break
		}
		tokens = tokens[:len(tokens)-1]
	}
	return strings.Join(tokens, " ")
}
