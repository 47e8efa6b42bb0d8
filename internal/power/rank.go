package power

import (
	"sort"

	"github.com/goserg/powerrank/internal/domain"
)

// Scope selects which score a ranking is built on.
type Scope int

const (
	Overall Scope = iota
	Group
)

func (s Scope) score(tp domain.TeamPower) float64 {
	if s == Group {
		return tp.Group.Score
	}
	return tp.Overall.Score
}

// Less reports whether a ranks before b: teams with games first, then
// score, goal difference, points and goals scored, all descending.
func Less(a, b domain.TeamPower, scope Scope) bool {
	if a.Team.HasGames() != b.Team.HasGames() {
		return a.Team.HasGames()
	}
	if sa, sb := scope.score(a), scope.score(b); sa != sb {
		return sa > sb
	}
	if a.Team.GoalDifference() != b.Team.GoalDifference() {
		return a.Team.GoalDifference() > b.Team.GoalDifference()
	}
	if a.Team.Points != b.Team.Points {
		return a.Team.Points > b.Team.Points
	}
	return a.Team.GoalsFor > b.Team.GoalsFor
}

// Rank returns a sorted copy of teams with Team.Rank set to the 1-based
// position. Full ties keep input order.
func Rank(teams []domain.TeamPower, scope Scope) []domain.TeamPower {
	ranked := make([]domain.TeamPower, len(teams))
	copy(ranked, teams)
	sort.SliceStable(ranked, func(i, j int) bool {
		return Less(ranked[i], ranked[j], scope)
	})
	for i := range ranked {
		ranked[i].Team.Rank = i + 1
	}
	return ranked
}

// Positions maps team id to its 1-based position in an already ranked list.
func Positions(ranked []domain.TeamPower) map[string]int {
	pos := make(map[string]int, len(ranked))
	for i, tp := range ranked {
		pos[tp.Team.TeamID] = i + 1
	}
	return pos
}
