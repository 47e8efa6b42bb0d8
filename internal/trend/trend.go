// Package trend replays a team's season match by match into a series of
// cumulative, normalized metrics.
package trend

import (
	"fmt"

	"github.com/goserg/powerrank/internal/domain"
	"github.com/goserg/powerrank/internal/matchday"
	"github.com/goserg/powerrank/internal/power"
)

type Metric string

const (
	Power     Metric = "power"
	Offense   Metric = "offense"
	Defense   Metric = "defense"
	Dominance Metric = "dominance"
)

func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case "":
		return Power, nil
	case Power, Offense, Defense, Dominance:
		return Metric(s), nil
	}
	return "", fmt.Errorf("unknown trend metric %q", s)
}

// Value picks the metric out of a point.
func (m Metric) Value(p domain.TrendPoint) float64 {
	switch m {
	case Offense:
		return p.Offense
	case Defense:
		return p.Defense
	case Dominance:
		return p.Dominance
	default:
		return p.Power
	}
}

// Build emits one point per played match of teamID. matches may hold the
// fixtures of other teams, the matchday ordinals only follow teamID's own.
// Each point holds the season-to-date metrics normalized against bounds,
// which are the final bounds over all teams and stay fixed for the whole
// series.
func Build(teamID string, matches []domain.Match, bounds power.MetricBounds) []domain.TrendPoint {
	ordered := matchday.Played(domain.FilterTeam(matches, teamID))
	points := make([]domain.TrendPoint, 0, len(ordered))

	var games, goalsFor, goalsAgainst int
	for _, e := range ordered {
		gf, ga, _, ok := e.Match.Side(teamID)
		if !ok {
			continue
		}
		games++
		goalsFor += gf
		goalsAgainst += ga

		n := bounds.Scale(power.Raw(goalsFor, goalsAgainst, games))
		points = append(points, domain.TrendPoint{
			Matchday:  e.Matchday,
			Offense:   n.Offense,
			Defense:   n.Defense,
			Dominance: n.Dominance,
			Power:     power.Weights.Combine(n.Offense, n.Defense, n.Dominance),
		})
	}
	return points
}

// Series is Build reduced to the chosen metric, as (matchday, value) pairs.
type Series struct {
	TeamID string    `json:"teamId"`
	Metric Metric    `json:"metric"`
	X      []int     `json:"x"`
	Y      []float64 `json:"y"`
}

func Project(teamID string, points []domain.TrendPoint, metric Metric) Series {
	s := Series{
		TeamID: teamID,
		Metric: metric,
		X:      make([]int, len(points)),
		Y:      make([]float64, len(points)),
	}
	for i, p := range points {
		s.X[i] = p.Matchday
		s.Y[i] = metric.Value(p)
	}
	return s
}
