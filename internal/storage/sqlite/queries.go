package sqlite

import (
	"github.com/go-jet/jet/v2/sqlite"

	"github.com/goserg/powerrank/gen/model"
	"github.com/goserg/powerrank/gen/table"
	"github.com/goserg/powerrank/internal/storage/sqlstore"
)

type queries struct{}

var _ sqlstore.Queries = queries{}

func (queries) InsertSnapshot(snapshot model.Snapshots) sqlstore.Statement {
	return table.Snapshots.INSERT(table.Snapshots.AllColumns).MODEL(snapshot)
}

func (queries) InsertGroups(groups []model.LeagueGroups) sqlstore.Statement {
	return table.LeagueGroups.INSERT(table.LeagueGroups.AllColumns).MODELS(groups)
}

func (queries) InsertTeams(teams []model.TeamStats) sqlstore.Statement {
	return table.TeamStats.INSERT(table.TeamStats.AllColumns).MODELS(teams)
}

func (queries) InsertMatches(matches []model.Matches) sqlstore.Statement {
	return table.Matches.INSERT(table.Matches.AllColumns).MODELS(matches)
}

func (queries) LatestSnapshot() sqlstore.Statement {
	return sqlite.SELECT(table.Snapshots.AllColumns).
		FROM(table.Snapshots).
		ORDER_BY(table.Snapshots.CreatedAt.DESC(), table.Snapshots.ID.DESC()).
		LIMIT(1)
}

func (queries) Snapshots() sqlstore.Statement {
	return sqlite.SELECT(table.Snapshots.AllColumns).
		FROM(table.Snapshots).
		ORDER_BY(table.Snapshots.CreatedAt.DESC(), table.Snapshots.ID.DESC())
}

func (queries) Groups(snapshotID string) sqlstore.Statement {
	return sqlite.SELECT(table.LeagueGroups.AllColumns).
		FROM(table.LeagueGroups).
		WHERE(table.LeagueGroups.SnapshotID.EQ(sqlite.String(snapshotID))).
		ORDER_BY(table.LeagueGroups.Position.ASC())
}

func (queries) Teams(snapshotID string) sqlstore.Statement {
	return sqlite.SELECT(table.TeamStats.AllColumns).
		FROM(table.TeamStats).
		WHERE(table.TeamStats.SnapshotID.EQ(sqlite.String(snapshotID))).
		ORDER_BY(table.TeamStats.Position.ASC())
}

func (queries) Matches(snapshotID string) sqlstore.Statement {
	return sqlite.SELECT(table.Matches.AllColumns).
		FROM(table.Matches).
		WHERE(table.Matches.SnapshotID.EQ(sqlite.String(snapshotID))).
		ORDER_BY(table.Matches.Position.ASC())
}
