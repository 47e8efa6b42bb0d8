package migrate

import (
	"database/sql"
	"errors"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	embedded "github.com/goserg/powerrank"
)

func UpSqlite(db *sql.DB) error {
	databaseDriver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return err
	}
	return up(embedded.SqliteMigrations, "migrations/sqlite3", "sqlite3", databaseDriver)
}

func UpPostgres(db *sql.DB) error {
	databaseDriver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return err
	}
	return up(embedded.PostgresMigrations, "migrations/postgres", "postgres", databaseDriver)
}

func up(fsys fs.FS, path, name string, databaseDriver database.Driver) error {
	sourceDriver, err := iofs.New(fsys, path)
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", sourceDriver, name, databaseDriver)
	if err != nil {
		return err
	}
	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
