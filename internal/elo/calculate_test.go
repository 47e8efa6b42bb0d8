package elo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserg/powerrank/internal/domain"
)

func TestCalculate(t *testing.T) {
	type args struct {
		Ra float64
		Rb float64
		K  float64
		Sa Points
	}
	tests := []struct {
		name string
		args args
		want float64
	}{
		{
			name: "same rating draw",
			args: args{
				Ra: 1000,
				Rb: 1000,
				K:  40,
				Sa: Draw,
			},
			want: 1000,
		},
		{
			name: "same rating win",
			args: args{
				Ra: 1000,
				Rb: 1000,
				K:  40,
				Sa: Win,
			},
			want: 1020,
		},
		{
			name: "same rating lose",
			args: args{
				Ra: 1000,
				Rb: 1000,
				K:  40,
				Sa: Lose,
			},
			want: 980,
		},
		{
			name: "top rating draw",
			args: args{
				Ra: 1100,
				Rb: 1000,
				K:  40,
				Sa: Draw,
			},
			want: 1094,
		},
		{
			name: "top rating win",
			args: args{
				Ra: 1100,
				Rb: 1000,
				K:  40,
				Sa: Win,
			},
			want: 1114,
		},
		{
			name: "top rating lose",
			args: args{
				Ra: 1100,
				Rb: 1000,
				K:  40,
				Sa: Lose,
			},
			want: 1074,
		},
		{
			name: "bottom rating draw",
			args: args{
				Ra: 1000,
				Rb: 1100,
				K:  40,
				Sa: Draw,
			},
			want: 1006,
		},
		{
			name: "bottom rating win",
			args: args{
				Ra: 1000,
				Rb: 1100,
				K:  40,
				Sa: Win,
			},
			want: 1026,
		},
		{
			name: "bottom rating lose",
			args: args{
				Ra: 1000,
				Rb: 1100,
				K:  40,
				Sa: Lose,
			},
			want: 986,
		},
		{
			name: "close rating draw",
			args: args{
				Ra: 944,
				Rb: 938,
				K:  40,
				Sa: Draw,
			},
			want: 944,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := math.Round(Calculate(tt.args.Ra, tt.args.Rb, tt.args.K, tt.args.Sa, 1)); got != tt.want {
				t.Errorf("Calculate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMargin(t *testing.T) {
	assert.Equal(t, 1.0, Margin(0))
	assert.Equal(t, 1.0, Margin(-1))
	assert.Equal(t, 1.5, Margin(2))
	assert.Equal(t, 2.0, Margin(-3))
	assert.Equal(t, 3.0, Margin(9))
}

func TestCalculator_Ratings(t *testing.T) {
	teams := []domain.TeamStats{
		{TeamID: "a", TeamName: "A"},
		{TeamID: "b", TeamName: "B"},
		{TeamID: "idle", TeamName: "Idle"},
	}
	matches := []domain.Match{
		{ID: "2", HomeTeamID: "b", AwayTeamID: "a", HomeScore: 1, AwayScore: 1, Status: domain.MatchPlayed},
		{ID: "1", HomeTeamID: "a", AwayTeamID: "b", HomeScore: 3, AwayScore: 0, Status: domain.MatchPlayed},
		{ID: "3", HomeTeamID: "a", AwayTeamID: "idle", Status: domain.MatchNotPlayed},
		{ID: "4", HomeTeamID: "a", AwayTeamID: "", HomeScore: 5, Status: domain.MatchPlayed},
	}
	got := New(DefaultInitial, DefaultK).Ratings(teams, matches)
	require.Len(t, got, 3)

	// 3:0 at equal ratings: 20 * 2 * 0.5
	first := 1520.0
	ea := 1.0 / (1.0 + math.Pow(10, (1480.0-first)/400.0))
	draw := 20 * (0.5 - ea)

	assert.InDelta(t, first+draw, got[0].Rating, 1e-9)
	assert.Equal(t, 2, got[0].Games)
	assert.InDelta(t, 3000-first-draw, got[1].Rating, 1e-9)
	assert.Equal(t, domain.RatingEntry{TeamID: "idle", TeamName: "Idle", Rating: DefaultInitial}, got[2])
}
