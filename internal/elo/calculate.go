package elo

import (
	"math"
	"sort"

	"github.com/goserg/powerrank/internal/domain"
)

type Points float64

const (
	Win  Points = 1
	Draw Points = 0.5
	Lose Points = 0
)

const (
	DefaultInitial = 1500
	DefaultK       = 20
	maxMargin      = 3
)

// Calculate new rating.
// Ra - team A rating.
// Rb - team B rating.
// K - coefficient.
// Sa - points: 1 for win; 0.5 for draw; 0 for lose.
// margin - goal margin multiplier, 1 for a one goal game.
func Calculate(Ra, Rb, K float64, Sa Points, margin float64) float64 {
	Ea := expected(Ra, Rb)
	return Ra + K*margin*(float64(Sa)-Ea)
}

func expected(ra, rb float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (rb-ra)/400.0))
}

// Margin grows by half a point per extra goal of a decided match, up to 3.
func Margin(goalDiff int) float64 {
	d := math.Abs(float64(goalDiff))
	if d <= 1 {
		return 1
	}
	return math.Min(maxMargin, 1+0.5*(d-1))
}

type Calculator struct {
	initial float64
	k       float64
}

func New(initial, k float64) *Calculator {
	if initial <= 0 {
		initial = DefaultInitial
	}
	if k <= 0 {
		k = DefaultK
	}
	return &Calculator{initial: initial, k: k}
}

type result struct {
	rating float64
	games  int
}

// Ratings replays the played matches in id order and returns one entry per
// team. Teams that never played keep the initial rating.
func (c *Calculator) Ratings(teams []domain.TeamStats, matches []domain.Match) []domain.RatingEntry {
	ordered := make([]domain.Match, len(matches))
	copy(ordered, matches)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ID < ordered[j].ID
	})

	ratings := make(map[string]result)
	get := func(id string) result {
		if r, ok := ratings[id]; ok {
			return r
		}
		return result{rating: c.initial}
	}
	for _, m := range ordered {
		if !m.Played() || m.HomeTeamID == "" || m.AwayTeamID == "" {
			continue
		}
		home, away := get(m.HomeTeamID), get(m.AwayTeamID)
		gd := m.HomeScore - m.AwayScore

		sa := Draw
		switch {
		case gd > 0:
			sa = Win
		case gd < 0:
			sa = Lose
		}
		margin := 1.0
		if sa != Draw {
			margin = Margin(gd)
		}
		next := Calculate(home.rating, away.rating, c.k, sa, margin)
		delta := next - home.rating
		home.rating = next
		away.rating -= delta
		home.games++
		away.games++
		ratings[m.HomeTeamID] = home
		ratings[m.AwayTeamID] = away
	}

	entries := make([]domain.RatingEntry, 0, len(teams))
	for _, team := range teams {
		r := get(team.TeamID)
		entries = append(entries, domain.RatingEntry{
			TeamID:   team.TeamID,
			TeamName: team.TeamName,
			GroupID:  team.GroupID,
			Rating:   r.rating,
			Games:    r.games,
		})
	}
	return entries
}
