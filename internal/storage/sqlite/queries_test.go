package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goserg/powerrank/gen/model"
)

func TestQueries_Select(t *testing.T) {
	query, args := queries{}.Groups("s1").Sql()
	assert.Contains(t, query, "league_groups.snapshot_id = ?")
	assert.Contains(t, query, "ORDER BY league_groups.position ASC")
	assert.NotContains(t, query, "$1")
	assert.Equal(t, []interface{}{"s1"}, args)
}

func TestQueries_Insert(t *testing.T) {
	teams := []model.TeamStats{
		{SnapshotID: "s1", GroupID: "group1", TeamID: "a"},
		{SnapshotID: "s1", GroupID: "group1", TeamID: "b", Position: 1},
	}
	query, args := queries{}.InsertTeams(teams).Sql()
	assert.Contains(t, query, "INSERT INTO team_stats")
	assert.Len(t, args, 30)
}
