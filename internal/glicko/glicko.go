// Package glicko rates teams with Glicko-2, one rating period per matchday.
package glicko

import (
	glicko2 "github.com/zelenin/go-glicko2"

	"github.com/goserg/powerrank/internal/domain"
	"github.com/goserg/powerrank/internal/matchday"
)

const (
	DefaultRating     = 1500
	DefaultDeviation  = 350
	DefaultVolatility = 0.06
)

type Rater struct {
	rating     float64
	deviation  float64
	volatility float64
}

func New() *Rater {
	return &Rater{
		rating:     DefaultRating,
		deviation:  DefaultDeviation,
		volatility: DefaultVolatility,
	}
}

func (r *Rater) Ratings(teams []domain.TeamStats, matches []domain.Match) []domain.RatingEntry {
	players := make(map[string]*glicko2.Player, len(teams))
	games := make(map[string]int, len(teams))
	player := func(id string) *glicko2.Player {
		p, ok := players[id]
		if !ok {
			p = glicko2.NewPlayer(glicko2.NewRating(r.rating, r.deviation, r.volatility))
			players[id] = p
		}
		return p
	}

	var (
		period  *glicko2.RatingPeriod
		current int
		added   map[string]bool
	)
	flush := func() {
		if period != nil {
			period.Calculate()
		}
	}
	for _, e := range matchday.Played(matches) {
		m := e.Match
		if m.HomeTeamID == "" || m.AwayTeamID == "" {
			continue
		}
		if period == nil || e.Matchday != current {
			flush()
			period = glicko2.NewRatingPeriod()
			current = e.Matchday
			added = make(map[string]bool)
		}
		home, away := player(m.HomeTeamID), player(m.AwayTeamID)
		for id, p := range map[string]*glicko2.Player{m.HomeTeamID: home, m.AwayTeamID: away} {
			if !added[id] {
				period.AddPlayer(p)
				added[id] = true
			}
		}
		period.AddMatch(home, away, result(m.HomeScore, m.AwayScore))
		games[m.HomeTeamID]++
		games[m.AwayTeamID]++
	}
	flush()

	entries := make([]domain.RatingEntry, 0, len(teams))
	for _, team := range teams {
		rating := r.rating
		if p, ok := players[team.TeamID]; ok {
			rating = p.Rating().R()
		}
		entries = append(entries, domain.RatingEntry{
			TeamID:   team.TeamID,
			TeamName: team.TeamName,
			GroupID:  team.GroupID,
			Rating:   rating,
			Games:    games[team.TeamID],
		})
	}
	return entries
}

func result(home, away int) glicko2.MatchResult {
	switch {
	case home > away:
		return glicko2.MATCH_RESULT_WIN
	case home < away:
		return glicko2.MATCH_RESULT_LOSS
	default:
		return glicko2.MATCH_RESULT_DRAW
	}
}
