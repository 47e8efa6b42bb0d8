package power

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserg/powerrank/internal/domain"
)

func team(id, group string, games, gf, ga, points int) domain.TeamStats {
	return domain.TeamStats{
		TeamID:       id,
		TeamName:     id,
		GroupID:      group,
		Games:        games,
		GoalsFor:     gf,
		GoalsAgainst: ga,
		GoalDiff:     gf - ga,
		Points:       points,
	}
}

func TestRaw(t *testing.T) {
	got := Raw(12, 4, 4)
	assert.InDelta(t, 3.0, got.Offense, 1e-12)
	assert.InDelta(t, 0.0, got.Defense, 1e-12)
	assert.InDelta(t, 2.0, got.Dominance, 1e-12)

	assert.Equal(t, domain.Metrics{}, Raw(5, 1, 0))
}

func TestCompute(t *testing.T) {
	teams := []domain.TeamStats{
		team("a", "group1", 2, 8, 0, 6),
		team("b", "group1", 2, 2, 2, 3),
		team("c", "group1", 2, 0, 8, 0),
		team("idle", "group1", 0, 0, 0, 0),
	}
	scores := Compute(teams)
	require.Len(t, scores, 4)

	a := scores["a"]
	assert.Equal(t, domain.Metrics{Offense: 1, Defense: 1, Dominance: 1}, a.Normalized)
	assert.InDelta(t, 1.0, a.Score, 1e-12)

	c := scores["c"]
	assert.Equal(t, domain.Metrics{}, c.Normalized)
	assert.InDelta(t, 0.0, c.Score, 1e-12)

	b := scores["b"]
	assert.InDelta(t, 0.25, b.Normalized.Offense, 1e-12)
	assert.InDelta(t, 0.75, b.Normalized.Defense, 1e-12)
	assert.InDelta(t, 0.5, b.Normalized.Dominance, 1e-12)
	assert.InDelta(t, 0.4*0.25+0.4*0.75+0.2*0.5, b.Score, 1e-12)

	idle := scores["idle"]
	assert.Equal(t, domain.Metrics{Offense: 0.5, Defense: 0.5, Dominance: 0.5}, idle.Normalized)
	assert.Equal(t, 0.0, idle.Score)
}

func TestCompute_SingleTeam(t *testing.T) {
	scores := Compute([]domain.TeamStats{team("solo", "group1", 3, 5, 1, 7)})
	assert.Equal(t, domain.Metrics{Offense: 0.5, Defense: 0.5, Dominance: 0.5}, scores["solo"].Normalized)
	assert.InDelta(t, 0.5, scores["solo"].Score, 1e-12)
}

func TestCalculate_Scopes(t *testing.T) {
	teams := []domain.TeamStats{
		team("a1", "group1", 2, 4, 2, 4),
		team("a2", "group1", 2, 2, 4, 1),
		team("b1", "group2", 2, 10, 0, 6),
		team("b2", "group2", 2, 0, 10, 0),
	}
	got := Calculate(teams)
	require.Len(t, got, 4)

	assert.Equal(t, "b1", got[0].Team.TeamID)
	assert.Equal(t, 1, got[0].Team.Rank)
	assert.Equal(t, "b2", got[3].Team.TeamID)

	byID := map[string]domain.TeamPower{}
	for _, tp := range got {
		byID[tp.Team.TeamID] = tp
	}
	// a1 tops its own group but not the overall table.
	assert.InDelta(t, 1.0, byID["a1"].Group.Score, 1e-12)
	assert.Less(t, byID["a1"].Overall.Score, 1.0)

	table := GroupTable(got, "group1")
	require.Len(t, table, 2)
	assert.Equal(t, "a1", table[0].Team.TeamID)
	assert.Equal(t, 1, table[0].Team.Rank)
	assert.Equal(t, 2, table[1].Team.Rank)
}

func TestRank_TieBreaks(t *testing.T) {
	mk := func(id string, score float64, games, gf, ga, points int) domain.TeamPower {
		return domain.TeamPower{Team: team(id, "g", games, gf, ga, points), Overall: domain.PowerScore{Score: score}}
	}
	tests := []struct {
		name  string
		teams []domain.TeamPower
		want  []string
	}{
		{
			name:  "score first",
			teams: []domain.TeamPower{mk("a", 0.2, 1, 9, 0, 3), mk("b", 0.8, 1, 0, 0, 1)},
			want:  []string{"b", "a"},
		},
		{
			name:  "goal difference",
			teams: []domain.TeamPower{mk("a", 0.5, 2, 3, 2, 6), mk("b", 0.5, 2, 4, 1, 3)},
			want:  []string{"b", "a"},
		},
		{
			name:  "points",
			teams: []domain.TeamPower{mk("a", 0.5, 2, 3, 1, 3), mk("b", 0.5, 2, 3, 1, 4)},
			want:  []string{"b", "a"},
		},
		{
			name:  "goals for",
			teams: []domain.TeamPower{mk("a", 0.5, 2, 3, 1, 4), mk("b", 0.5, 2, 5, 3, 4)},
			want:  []string{"b", "a"},
		},
		{
			name:  "full tie keeps input order",
			teams: []domain.TeamPower{mk("x", 0.5, 2, 3, 1, 4), mk("y", 0.5, 2, 3, 1, 4), mk("w", 0.5, 2, 3, 1, 4)},
			want:  []string{"x", "y", "w"},
		},
		{
			name:  "teams without games go last",
			teams: []domain.TeamPower{mk("idle", 0.9, 0, 0, 0, 9), mk("a", 0.1, 1, 0, 3, 0)},
			want:  []string{"a", "idle"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rank(tt.teams, Overall)
			ids := make([]string, len(got))
			for i := range got {
				ids[i] = got[i].Team.TeamID
				assert.Equal(t, i+1, got[i].Team.Rank)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestApplyMatchAggregates(t *testing.T) {
	teams := []domain.TeamStats{
		{TeamID: "h", Games: 9, Points: 4},
		{TeamID: "a", Games: 9},
		{TeamID: "untouched", Games: 5, GoalsFor: 7},
	}
	matches := []domain.Match{
		{HomeTeamID: "h", AwayTeamID: "a", HomeScore: 3, AwayScore: 1, Status: domain.MatchPlayed},
		{HomeTeamID: "a", AwayTeamID: "h", HomeScore: 2, AwayScore: 2, Status: domain.MatchPlayed},
		{HomeTeamID: "h", AwayTeamID: "a", HomeScore: 0, AwayScore: 0, Status: domain.MatchNotPlayed},
	}
	got := ApplyMatchAggregates(teams, matches)

	assert.Equal(t, domain.TeamStats{TeamID: "h", Games: 2, Wins: 1, Draws: 1, GoalsFor: 5, GoalsAgainst: 3, GoalDiff: 2, Points: 4}, got[0])
	assert.Equal(t, domain.TeamStats{TeamID: "a", Games: 2, Losses: 1, Draws: 1, GoalsFor: 3, GoalsAgainst: 5, GoalDiff: -2}, got[1])
	assert.Equal(t, teams[2], got[2])
	assert.Equal(t, 9, teams[0].Games, "input must not be mutated")
}

func TestActiveTeams(t *testing.T) {
	active := ActiveTeams([]domain.TeamStats{team("a", "g", 1, 0, 0, 0), team("b", "g", 0, 0, 0, 0)})
	assert.True(t, active.Contains("a"))
	assert.False(t, active.Contains("b"))
}
