package sqlite

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserg/powerrank/internal/domain"
	"github.com/goserg/powerrank/internal/storage"
)

func newStorage(t *testing.T) *Storage {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	s, err := New(filepath.Join(t.TempDir(), "powerrank.sqlite"), log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStorage_LatestSnapshotEmpty(t *testing.T) {
	s := newStorage(t)
	_, err := s.LatestSnapshot(context.Background())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStorage_SaveAndLoad(t *testing.T) {
	s := newStorage(t)
	ctx := context.Background()
	scraped := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)

	groups := []domain.GroupSnapshot{
		{
			Group: domain.Group{ID: "group1", Name: "Gr. 1", ScrapedAt: scraped},
			Teams: []domain.TeamStats{
				{GroupID: "group1", GroupName: "Gr. 1", TeamID: "a", TeamName: "A", Rank: 1, Games: 1, Wins: 1, GoalsFor: 3, GoalDiff: 3, Points: 3},
				{GroupID: "group1", GroupName: "Gr. 1", TeamID: "b", TeamName: "B", Rank: 2, Games: 1, Losses: 1, GoalsAgainst: 3, GoalDiff: -3},
			},
			Matches: []domain.Match{
				{ID: "m1", GroupID: "group1", HomeTeamID: "a", HomeTeam: "A", AwayTeamID: "b", AwayTeam: "B",
					HomeScore: 3, Status: domain.MatchPlayed, MatchDate: "2024-09-01", MatchdayTag: "1"},
				{ID: "m2", GroupID: "group1", HomeTeamID: "b", HomeTeam: "B", AwayTeamID: "a", AwayTeam: "A",
					Status: domain.MatchNotPlayed, Note: "abgesagt"},
			},
		},
		{
			Group:   domain.Group{ID: "group2", Name: "Gr. 2", ScrapedAt: scraped},
			Teams:   []domain.TeamStats{},
			Matches: []domain.Match{},
		},
	}

	first, err := s.SaveSnapshot(ctx, groups)
	require.NoError(t, err)

	latest, err := s.LatestSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, latest.ID)
	require.Len(t, latest.Groups, 2)
	assert.Equal(t, "group1", latest.Groups[0].Group.ID)
	assert.True(t, scraped.Equal(latest.Groups[0].Group.ScrapedAt))
	assert.Equal(t, groups[0].Teams, latest.Groups[0].Teams)
	assert.Equal(t, groups[0].Matches, latest.Groups[0].Matches)
	assert.Empty(t, latest.Groups[1].Teams)

	second, err := s.SaveSnapshot(ctx, groups[:1])
	require.NoError(t, err)
	latest, err = s.LatestSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
	assert.Len(t, latest.Groups, 1)

	list, err := s.ListSnapshots(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
}
