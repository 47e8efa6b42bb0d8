package power

import (
	"strings"

	"github.com/goserg/powerrank/internal/domain"
)

type aggregate struct {
	games        int
	wins         int
	draws        int
	losses       int
	goalsFor     int
	goalsAgainst int
}

// ApplyMatchAggregates returns a copy of teams whose games, results and
// goals are rebuilt from the played matches. Teams that appear in no played
// match keep their values.
func ApplyMatchAggregates(teams []domain.TeamStats, matches []domain.Match) []domain.TeamStats {
	aggregates := aggregateMatches(matches)
	updated := make([]domain.TeamStats, len(teams))
	for i, team := range teams {
		if agg, ok := aggregates[strings.TrimSpace(team.TeamID)]; ok {
			team.Games = agg.games
			team.Wins = agg.wins
			team.Draws = agg.draws
			team.Losses = agg.losses
			team.GoalsFor = agg.goalsFor
			team.GoalsAgainst = agg.goalsAgainst
			team.GoalDiff = agg.goalsFor - agg.goalsAgainst
		}
		updated[i] = team
	}
	return updated
}

func aggregateMatches(matches []domain.Match) map[string]aggregate {
	stats := make(map[string]aggregate)
	for _, match := range matches {
		if !match.Played() {
			continue
		}
		home := stats[match.HomeTeamID]
		away := stats[match.AwayTeamID]

		home.games++
		away.games++
		home.goalsFor += match.HomeScore
		home.goalsAgainst += match.AwayScore
		away.goalsFor += match.AwayScore
		away.goalsAgainst += match.HomeScore

		switch {
		case match.HomeScore > match.AwayScore:
			home.wins++
			away.losses++
		case match.HomeScore < match.AwayScore:
			home.losses++
			away.wins++
		default:
			home.draws++
			away.draws++
		}

		stats[match.HomeTeamID] = home
		stats[match.AwayTeamID] = away
	}
	return stats
}
