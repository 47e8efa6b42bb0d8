package storage

import (
	"context"
	"errors"

	"github.com/goserg/powerrank/internal/domain"
)

var ErrNotFound = errors.New("not found")

type SnapshotStorage interface {
	// SaveSnapshot stores groups as a new snapshot and makes it the latest one.
	SaveSnapshot(ctx context.Context, groups []domain.GroupSnapshot) (domain.Snapshot, error)
	// LatestSnapshot returns ErrNotFound when nothing was saved yet.
	LatestSnapshot(ctx context.Context) (domain.Snapshot, error)
	ListSnapshots(ctx context.Context) ([]domain.Snapshot, error)
	Close() error
}
