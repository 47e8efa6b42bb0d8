package sqlite

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/goserg/powerrank/internal/migrate"
	"github.com/goserg/powerrank/internal/storage/sqlstore"
)

type Storage struct {
	*sqlstore.Store
}

// New opens the sqlite file and applies pending migrations.
func New(file string, log *logrus.Logger) (*Storage, error) {
	db, err := sql.Open("sqlite3", "file:"+file+"?cache=shared&_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	err = db.Ping()
	if err != nil {
		return nil, err
	}
	if err := migrate.UpSqlite(db); err != nil {
		return nil, err
	}
	return &Storage{
		Store: sqlstore.New(db, queries{}, log.WithField("from", "sqlite")),
	}, nil
}
