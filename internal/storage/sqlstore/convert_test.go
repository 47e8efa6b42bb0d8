package sqlstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserg/powerrank/gen/model"
	"github.com/goserg/powerrank/internal/domain"
)

func TestConvertGroups(t *testing.T) {
	scraped := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	groups := []domain.GroupSnapshot{
		{
			Group: domain.Group{ID: "group1", Name: "Gr. 1", ScrapedAt: scraped},
			Teams: []domain.TeamStats{
				{GroupID: "group1", TeamID: "a", TeamName: "A", Games: 1, GoalsFor: 2},
				{GroupID: "group1", TeamID: "b", TeamName: "B", Games: 1, GoalsAgainst: 2},
			},
			Matches: []domain.Match{
				{ID: "m1", GroupID: "group1", HomeTeamID: "a", AwayTeamID: "b", HomeScore: 2, Status: domain.MatchPlayed},
			},
		},
		{
			Group:   domain.Group{ID: "group2", Name: "Gr. 2", ScrapedAt: scraped},
			Teams:   []domain.TeamStats{{GroupID: "group2", TeamID: "c", TeamName: "C"}},
			Matches: []domain.Match{},
		},
	}

	dbGroups, dbTeams, dbMatches := convertGroupsToModel("s1", groups)
	require.Len(t, dbGroups, 2)
	assert.Equal(t, []int32{0, 1, 2}, []int32{dbTeams[0].Position, dbTeams[1].Position, dbTeams[2].Position})
	assert.Equal(t, int32(1), dbGroups[1].Position)
	assert.Equal(t, "s1", dbMatches[0].SnapshotID)

	assert.Equal(t, groups, convertGroups(dbGroups, dbTeams, dbMatches))
}

func TestConvertGroups_DropsOrphans(t *testing.T) {
	got := convertGroups(
		[]model.LeagueGroups{{ID: "group1"}},
		[]model.TeamStats{{GroupID: "group9", TeamID: "x"}},
		[]model.Matches{{GroupID: "group9", ID: "m"}},
	)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Teams)
	assert.Empty(t, got[0].Matches)
}

func TestConvertSnapshot(t *testing.T) {
	_, err := convertSnapshot(model.Snapshots{ID: "not-a-uuid"})
	assert.Error(t, err)

	s, err := convertSnapshot(model.Snapshots{ID: "8c0b4f4e-8d54-4c86-9a4b-4d7b0f3b9d10"})
	require.NoError(t, err)
	assert.Equal(t, "8c0b4f4e-8d54-4c86-9a4b-4d7b0f3b9d10", s.ID.String())
}
