// Package enhanced computes the Enhanced PowerRank: recency weighted match
// metrics with capped goal difference, adjusted for strength of schedule and
// a group based play-strength prior.
package enhanced

import (
	"math"
	"regexp"
	"sort"
	"strconv"

	"github.com/goserg/powerrank/internal/domain"
	"github.com/goserg/powerrank/internal/matchday"
	"github.com/goserg/powerrank/internal/normalize"
	"github.com/goserg/powerrank/internal/power"
)

// neutralSoS is the schedule strength of a team with no rated opponent.
const neutralSoS = 0.5

type matchLine struct {
	goalsFor     float64
	goalsAgainst float64
	goalDiff     float64
	opponent     float64
	known        bool
}

type row struct {
	team   domain.TeamStats
	games  int
	raw    domain.Metrics
	sosAvg float64
}

// Calculate ranks teams by enhanced power. matches may contain fixtures of
// any team and status, only played matches of each team are used.
// basePower maps team id to its overall base PowerScore, opponents missing
// from it are left out of the schedule average.
func Calculate(teams []domain.TeamStats, matches []domain.Match, basePower map[string]float64, cfg domain.EnhancedConfig) []domain.EnhancedResult {
	s := sanitize(cfg)

	rows := make([]row, len(teams))
	active := make([]domain.Metrics, 0, len(teams))
	for i, team := range teams {
		rows[i] = aggregate(team, domain.FilterTeam(matches, team.TeamID), basePower, s)
		if rows[i].games > 0 {
			active = append(active, rows[i].raw)
		}
	}
	bounds := power.BoundsOf(active)

	results := make([]domain.EnhancedResult, len(rows))
	for i, r := range rows {
		res := domain.EnhancedResult{
			TeamID:                 r.team.TeamID,
			TeamName:               r.team.TeamName,
			GroupID:                r.team.GroupID,
			GroupName:              r.team.GroupName,
			Games:                  r.games,
			HasGames:               r.games > 0,
			Raw:                    r.raw,
			Normalized:             domain.Metrics{Offense: normalize.Neutral, Defense: normalize.Neutral, Dominance: normalize.Neutral},
			SoSAverage:             r.sosAvg,
			SoSMultiplier:          1,
			PlayStrengthMultiplier: PlayStrengthMultiplier(r.team.GroupID, cfg),
			BasePower:              basePower[r.team.TeamID],
		}
		if res.HasGames {
			res.SoSMultiplier = SoSMultiplier(r.sosAvg, cfg)
			res.Normalized = bounds.Scale(r.raw)
			base := s.weights.Combine(res.Normalized.Offense, res.Normalized.Defense, res.Normalized.Dominance)
			res.EnhancedPower = base * res.SoSMultiplier * res.PlayStrengthMultiplier
		}
		results[i] = res
	}
	Sort(results)
	return results
}

func aggregate(team domain.TeamStats, matches []domain.Match, basePower map[string]float64, s settings) row {
	ordered := matchday.Played(matches)
	r := row{team: team, games: len(ordered), sosAvg: neutralSoS}
	if r.games == 0 {
		return r
	}

	lines := make([]matchLine, 0, len(ordered))
	for _, e := range ordered {
		gf, ga, opponentID, ok := e.Match.Side(team.TeamID)
		if !ok {
			continue
		}
		gd := min(s.cap, max(-s.cap, gf-ga))
		p, known := basePower[opponentID]
		lines = append(lines, matchLine{
			goalsFor:     float64(gf),
			goalsAgainst: float64(ga),
			goalDiff:     float64(gd),
			opponent:     p,
			known:        known,
		})
	}
	r.games = len(lines)
	if r.games == 0 {
		return r
	}

	var wSum, gfSum, gaSum, gdSum, sosSum float64
	var sosCount int
	n := len(lines)
	for i, l := range lines {
		w := math.Pow(s.decay, float64(n-1-i))
		wSum += w
		gfSum += w * l.goalsFor
		gaSum += w * l.goalsAgainst
		gdSum += w * l.goalDiff
		if l.known {
			sosSum += l.opponent
			sosCount++
		}
	}
	r.raw = domain.Metrics{
		Offense:   gfSum / wSum,
		Defense:   1 - gaSum/wSum,
		Dominance: gdSum / wSum,
	}
	if sosCount > 0 {
		r.sosAvg = sosSum / float64(sosCount)
	}
	return r
}

// SoSMultiplier is 1 + k*(sosAvg-0.5), clamped into the configured bounds
// taken in either order.
func SoSMultiplier(sosAvg float64, cfg domain.EnhancedConfig) float64 {
	s := sanitize(cfg)
	m := 1 + s.sosK*(sosAvg-neutralSoS)
	if math.IsNaN(m) {
		m = 1
	}
	return math.Max(s.sosLo, math.Min(s.sosHi, m))
}

var groupNumber = regexp.MustCompile(`\d+`)

// GroupNumber extracts the first integer in a group id ("group7" -> 7).
func GroupNumber(groupID string) (int, bool) {
	digits := groupNumber.FindString(groupID)
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

// PlayStrengthMultiplier rewards group 1 and penalizes groups 7 and up.
// The result always lies in [MinPlayStrength, MaxPlayStrength].
func PlayStrengthMultiplier(groupID string, cfg domain.EnhancedConfig) float64 {
	s := sanitize(cfg)
	m := 1.0
	if n, ok := GroupNumber(groupID); ok {
		switch {
		case n == 1:
			m = 1 + s.bonus
		case n >= 7:
			m = 1 - s.penalty
		}
	}
	return math.Max(MinPlayStrength, math.Min(MaxPlayStrength, m))
}

// Sort orders results: teams with games first, then enhanced power, base
// power and team name.
func Sort(results []domain.EnhancedResult) {
	names := normalize.NameCollator()
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.HasGames != b.HasGames {
			return a.HasGames
		}
		if a.EnhancedPower != b.EnhancedPower {
			return a.EnhancedPower > b.EnhancedPower
		}
		if a.BasePower != b.BasePower {
			return a.BasePower > b.BasePower
		}
		return names.CompareString(a.TeamName, b.TeamName) < 0
	})
}
