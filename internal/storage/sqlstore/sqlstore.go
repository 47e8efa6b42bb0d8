// Package sqlstore implements storage.SnapshotStorage over database/sql and
// go-jet. The sqlite and postgres packages only supply the jet statements
// of their dialect.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/goserg/powerrank/gen/model"
	"github.com/goserg/powerrank/internal/domain"
	"github.com/goserg/powerrank/internal/storage"
)

// Statement is the part of a jet statement the store runs.
type Statement interface {
	Sql() (query string, args []interface{})
	QueryContext(ctx context.Context, db qrm.Queryable, destination interface{}) error
	ExecContext(ctx context.Context, db qrm.Executable) (sql.Result, error)
}

// Queries builds the statements of one SQL dialect.
type Queries interface {
	InsertSnapshot(snapshot model.Snapshots) Statement
	InsertGroups(groups []model.LeagueGroups) Statement
	InsertTeams(teams []model.TeamStats) Statement
	InsertMatches(matches []model.Matches) Statement

	LatestSnapshot() Statement
	Snapshots() Statement
	Groups(snapshotID string) Statement
	Teams(snapshotID string) Statement
	Matches(snapshotID string) Statement
}

type Store struct {
	db      *sql.DB
	queries Queries
	log     *logrus.Entry
}

var _ storage.SnapshotStorage = (*Store)(nil)

func New(db *sql.DB, queries Queries, log *logrus.Entry) *Store {
	return &Store{db: db, queries: queries, log: log}
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) SaveSnapshot(ctx context.Context, groups []domain.GroupSnapshot) (domain.Snapshot, error) {
	snapshot := domain.Snapshot{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Groups:    groups,
	}
	dbGroups, dbTeams, dbMatches := convertGroupsToModel(snapshot.ID.String(), groups)
	err := inTxSimple(ctx, s.db, func(tx *sql.Tx) error {
		_, err := s.queries.InsertSnapshot(model.Snapshots{
			ID:        snapshot.ID.String(),
			CreatedAt: snapshot.CreatedAt,
		}).ExecContext(ctx, tx)
		if err != nil {
			return err
		}
		if len(dbGroups) > 0 {
			if _, err := s.queries.InsertGroups(dbGroups).ExecContext(ctx, tx); err != nil {
				return fmt.Errorf("groups: %w", err)
			}
		}
		if len(dbTeams) > 0 {
			if _, err := s.queries.InsertTeams(dbTeams).ExecContext(ctx, tx); err != nil {
				return fmt.Errorf("teams: %w", err)
			}
		}
		if len(dbMatches) > 0 {
			if _, err := s.queries.InsertMatches(dbMatches).ExecContext(ctx, tx); err != nil {
				return fmt.Errorf("matches: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("save snapshot: %w", err)
	}
	s.log.WithFields(logrus.Fields{
		"snapshot": snapshot.ID,
		"groups":   len(groups),
	}).Debug("snapshot saved")
	return snapshot, nil
}

func (s *Store) LatestSnapshot(ctx context.Context) (domain.Snapshot, error) {
	var dbSnapshot model.Snapshots
	err := s.queries.LatestSnapshot().QueryContext(ctx, s.db, &dbSnapshot)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Snapshot{}, storage.ErrNotFound
		}
		return domain.Snapshot{}, err
	}
	snapshot, err := convertSnapshot(dbSnapshot)
	if err != nil {
		return domain.Snapshot{}, err
	}
	snapshot.Groups, err = s.loadGroups(ctx, dbSnapshot.ID)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return snapshot, nil
}

func (s *Store) ListSnapshots(ctx context.Context) ([]domain.Snapshot, error) {
	var dbSnapshots []model.Snapshots
	if err := s.queries.Snapshots().QueryContext(ctx, s.db, &dbSnapshots); err != nil {
		return nil, err
	}
	snapshots := make([]domain.Snapshot, 0, len(dbSnapshots))
	for _, dbSnapshot := range dbSnapshots {
		snapshot, err := convertSnapshot(dbSnapshot)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, nil
}

func (s *Store) loadGroups(ctx context.Context, snapshotID string) ([]domain.GroupSnapshot, error) {
	var dbGroups []model.LeagueGroups
	if err := s.queries.Groups(snapshotID).QueryContext(ctx, s.db, &dbGroups); err != nil {
		return nil, fmt.Errorf("groups: %w", err)
	}
	var dbTeams []model.TeamStats
	if err := s.queries.Teams(snapshotID).QueryContext(ctx, s.db, &dbTeams); err != nil {
		return nil, fmt.Errorf("teams: %w", err)
	}
	var dbMatches []model.Matches
	if err := s.queries.Matches(snapshotID).QueryContext(ctx, s.db, &dbMatches); err != nil {
		return nil, fmt.Errorf("matches: %w", err)
	}
	return convertGroups(dbGroups, dbTeams, dbMatches), nil
}

func inTx[T any](ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) (T, error)) (T, error) {
	var zero T
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return zero, err
	}
	value, err := fn(tx)
	if err != nil {
		return zero, errors.Join(err, tx.Rollback())
	}
	return value, tx.Commit()
}

func inTxSimple(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	_, err := inTx(ctx, db, func(tx *sql.Tx) (struct{}, error) { return struct{}{}, fn(tx) })
	return err
}
