package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/goserg/powerrank/gen/model"
)

func TestQueries_SelectPlaceholders(t *testing.T) {
	q := queries{}
	tests := []struct {
		name  string
		query string
		args  []interface{}
		want  []string
	}{
		{name: "groups", want: []string{"FROM public.league_groups", "league_groups.snapshot_id = $1", "ORDER BY league_groups.position ASC"}},
		{name: "teams", want: []string{"FROM public.team_stats", "team_stats.snapshot_id = $1"}},
		{name: "matches", want: []string{"FROM public.matches", "matches.snapshot_id = $1"}},
	}
	tests[0].query, tests[0].args = q.Groups("s1").Sql()
	tests[1].query, tests[1].args = q.Teams("s1").Sql()
	tests[2].query, tests[2].args = q.Matches("s1").Sql()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, part := range tt.want {
				assert.Contains(t, tt.query, part)
			}
			assert.NotContains(t, tt.query, "?")
			assert.Equal(t, []interface{}{"s1"}, tt.args)
		})
	}
}

func TestQueries_Latest(t *testing.T) {
	query, args := queries{}.LatestSnapshot().Sql()
	assert.Contains(t, query, "snapshots.created_at DESC")
	assert.Contains(t, query, "LIMIT $1")
	assert.Len(t, args, 1)
}

func TestQueries_InsertNumbersEveryValue(t *testing.T) {
	matches := []model.Matches{
		{SnapshotID: "s1", ID: "m1", Status: "played", Position: 0},
		{SnapshotID: "s1", ID: "m2", Status: "not_played", Position: 1},
	}
	query, args := queries{}.InsertMatches(matches).Sql()
	assert.Contains(t, query, "INSERT INTO public.matches")
	assert.Contains(t, query, "$28")
	assert.NotContains(t, query, "$29")
	assert.Len(t, args, 28)

	query, args = queries{}.InsertSnapshot(model.Snapshots{ID: "s1", CreatedAt: time.Now()}).Sql()
	assert.Contains(t, query, "INSERT INTO public.snapshots")
	assert.Contains(t, query, "$2")
	assert.Len(t, args, 2)
}
