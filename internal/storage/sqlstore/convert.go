package sqlstore

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/goserg/powerrank/gen/model"
	"github.com/goserg/powerrank/internal/domain"
)

// convertGroupsToModel flattens groups into table rows. Position keeps the
// input order of groups, teams and matches.
func convertGroupsToModel(snapshotID string, groups []domain.GroupSnapshot) ([]model.LeagueGroups, []model.TeamStats, []model.Matches) {
	var (
		dbGroups  = make([]model.LeagueGroups, 0, len(groups))
		dbTeams   []model.TeamStats
		dbMatches []model.Matches
	)
	for i, g := range groups {
		dbGroups = append(dbGroups, model.LeagueGroups{
			SnapshotID: snapshotID,
			ID:         g.Group.ID,
			Name:       g.Group.Name,
			ScrapedAt:  g.Group.ScrapedAt.UTC(),
			Position:   int32(i),
		})
		for _, t := range g.Teams {
			dbTeams = append(dbTeams, model.TeamStats{
				SnapshotID:   snapshotID,
				GroupID:      g.Group.ID,
				GroupName:    t.GroupName,
				TeamID:       t.TeamID,
				TeamName:     t.TeamName,
				Rank:         int32(t.Rank),
				Games:        int32(t.Games),
				Wins:         int32(t.Wins),
				Draws:        int32(t.Draws),
				Losses:       int32(t.Losses),
				GoalsFor:     int32(t.GoalsFor),
				GoalsAgainst: int32(t.GoalsAgainst),
				GoalDiff:     int32(t.GoalDiff),
				Points:       int32(t.Points),
				Position:     int32(len(dbTeams)),
			})
		}
		for _, m := range g.Matches {
			dbMatches = append(dbMatches, model.Matches{
				SnapshotID:  snapshotID,
				ID:          m.ID,
				GroupID:     g.Group.ID,
				HomeTeamID:  m.HomeTeamID,
				HomeTeam:    m.HomeTeam,
				AwayTeamID:  m.AwayTeamID,
				AwayTeam:    m.AwayTeam,
				HomeScore:   int32(m.HomeScore),
				AwayScore:   int32(m.AwayScore),
				Status:      string(m.Status),
				Note:        m.Note,
				MatchDate:   m.MatchDate,
				MatchdayTag: m.MatchdayTag,
				Position:    int32(len(dbMatches)),
			})
		}
	}
	return dbGroups, dbTeams, dbMatches
}

func convertSnapshot(dbSnapshot model.Snapshots) (domain.Snapshot, error) {
	id, err := uuid.Parse(dbSnapshot.ID)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("snapshot id %q: %w", dbSnapshot.ID, err)
	}
	return domain.Snapshot{
		ID:        id,
		CreatedAt: dbSnapshot.CreatedAt,
	}, nil
}

// convertGroups rebuilds groups from rows already sorted by position. Rows
// of a group missing from dbGroups are dropped.
func convertGroups(dbGroups []model.LeagueGroups, dbTeams []model.TeamStats, dbMatches []model.Matches) []domain.GroupSnapshot {
	groups := make([]domain.GroupSnapshot, 0, len(dbGroups))
	index := make(map[string]int, len(dbGroups))
	for _, g := range dbGroups {
		index[g.ID] = len(groups)
		groups = append(groups, domain.GroupSnapshot{
			Group: domain.Group{
				ID:        g.ID,
				Name:      g.Name,
				ScrapedAt: g.ScrapedAt,
			},
			Teams:   []domain.TeamStats{},
			Matches: []domain.Match{},
		})
	}
	for _, t := range dbTeams {
		i, ok := index[t.GroupID]
		if !ok {
			continue
		}
		groups[i].Teams = append(groups[i].Teams, domain.TeamStats{
			GroupID:      t.GroupID,
			GroupName:    t.GroupName,
			TeamID:       t.TeamID,
			TeamName:     t.TeamName,
			Rank:         int(t.Rank),
			Games:        int(t.Games),
			Wins:         int(t.Wins),
			Draws:        int(t.Draws),
			Losses:       int(t.Losses),
			GoalsFor:     int(t.GoalsFor),
			GoalsAgainst: int(t.GoalsAgainst),
			GoalDiff:     int(t.GoalDiff),
			Points:       int(t.Points),
		})
	}
	for _, m := range dbMatches {
		i, ok := index[m.GroupID]
		if !ok {
			continue
		}
		groups[i].Matches = append(groups[i].Matches, domain.Match{
			ID:          m.ID,
			GroupID:     m.GroupID,
			HomeTeamID:  m.HomeTeamID,
			HomeTeam:    m.HomeTeam,
			AwayTeamID:  m.AwayTeamID,
			AwayTeam:    m.AwayTeam,
			HomeScore:   int(m.HomeScore),
			AwayScore:   int(m.AwayScore),
			Status:      domain.MatchStatus(m.Status),
			Note:        m.Note,
			MatchDate:   m.MatchDate,
			MatchdayTag: m.MatchdayTag,
		})
	}
	return groups
}
