// Package power computes the base PowerScore of teams: offense, defense and
// dominance per game, min-max normalized within a comparison population and
// combined with fixed weights.
package power

import (
	"github.com/goserg/powerrank/internal/domain"
	"github.com/goserg/powerrank/internal/normalize"
	"github.com/goserg/powerrank/internal/weights"

	mapset "github.com/deckarep/golang-set/v2"
)

// Weights combine the normalized metrics into the base PowerScore.
var Weights = weights.Weights{Off: 0.4, Def: 0.4, Dom: 0.2}

// Raw returns the per-game metrics of a team. A team without games has all
// metrics at zero.
func Raw(goalsFor, goalsAgainst, games int) domain.Metrics {
	if games <= 0 {
		return domain.Metrics{}
	}
	g := float64(games)
	return domain.Metrics{
		Offense:   float64(goalsFor) / g,
		Defense:   1 - float64(goalsAgainst)/g,
		Dominance: float64(goalsFor-goalsAgainst) / g,
	}
}

// MetricBounds holds the population bounds of each metric.
type MetricBounds struct {
	Offense   normalize.Bounds
	Defense   normalize.Bounds
	Dominance normalize.Bounds
}

// Scale normalizes m against the bounds.
func (b MetricBounds) Scale(m domain.Metrics) domain.Metrics {
	return domain.Metrics{
		Offense:   b.Offense.Scale(m.Offense),
		Defense:   b.Defense.Scale(m.Defense),
		Dominance: b.Dominance.Scale(m.Dominance),
	}
}

// BoundsOf computes the metric bounds of raw values.
func BoundsOf(raws []domain.Metrics) MetricBounds {
	off := make([]float64, len(raws))
	def := make([]float64, len(raws))
	dom := make([]float64, len(raws))
	for i, m := range raws {
		off[i], def[i], dom[i] = m.Offense, m.Defense, m.Dominance
	}
	return MetricBounds{
		Offense:   normalize.Of(off),
		Defense:   normalize.Of(def),
		Dominance: normalize.Of(dom),
	}
}

// Bounds returns the bounds over every team with at least one game.
func Bounds(teams []domain.TeamStats) MetricBounds {
	return boundsOf(teams, ActiveTeams(teams))
}

func boundsOf(teams []domain.TeamStats, active mapset.Set[string]) MetricBounds {
	raws := make([]domain.Metrics, 0, len(teams))
	for _, team := range teams {
		if active.Contains(team.TeamID) {
			raws = append(raws, Raw(team.GoalsFor, team.GoalsAgainst, team.Games))
		}
	}
	return BoundsOf(raws)
}

// Compute scores every team against the population formed by teams.
// Teams without games stay out of the population, get neutral normalized
// metrics and a zero score.
func Compute(teams []domain.TeamStats) map[string]domain.PowerScore {
	scores := make(map[string]domain.PowerScore, len(teams))
	active := ActiveTeams(teams)
	bounds := boundsOf(teams, active)
	for _, team := range teams {
		if !active.Contains(team.TeamID) {
			scores[team.TeamID] = domain.PowerScore{
				Normalized: domain.Metrics{Offense: normalize.Neutral, Defense: normalize.Neutral, Dominance: normalize.Neutral},
			}
			continue
		}
		raw := Raw(team.GoalsFor, team.GoalsAgainst, team.Games)
		n := bounds.Scale(raw)
		scores[team.TeamID] = domain.PowerScore{
			Raw:        raw,
			Normalized: n,
			Score:      Weights.Combine(n.Offense, n.Defense, n.Dominance),
		}
	}
	return scores
}

// Calculate computes group and overall scores for every team and returns
// them in overall order with Rank set to the overall position.
func Calculate(teams []domain.TeamStats) []domain.TeamPower {
	overall := Compute(teams)

	byGroup := make(map[string][]domain.TeamStats)
	for _, team := range teams {
		byGroup[team.GroupID] = append(byGroup[team.GroupID], team)
	}
	group := make(map[string]map[string]domain.PowerScore, len(byGroup))
	for id, members := range byGroup {
		group[id] = Compute(members)
	}

	result := make([]domain.TeamPower, 0, len(teams))
	for _, team := range teams {
		result = append(result, domain.TeamPower{
			Team:    team,
			Group:   group[team.GroupID][team.TeamID],
			Overall: overall[team.TeamID],
		})
	}
	return Rank(result, Overall)
}

// GroupTable returns the teams of groupID ranked by their group score.
func GroupTable(teams []domain.TeamPower, groupID string) []domain.TeamPower {
	members := make([]domain.TeamPower, 0)
	for _, tp := range teams {
		if tp.Team.GroupID == groupID {
			members = append(members, tp)
		}
	}
	return Rank(members, Group)
}

// ActiveTeams returns the ids of teams with at least one game.
func ActiveTeams(teams []domain.TeamStats) mapset.Set[string] {
	active := mapset.NewThreadUnsafeSet[string]()
	for _, team := range teams {
		if team.HasGames() {
			active.Add(team.TeamID)
		}
	}
	return active
}
