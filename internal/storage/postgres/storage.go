package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strconv"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/goserg/powerrank/internal/migrate"
	"github.com/goserg/powerrank/internal/storage/sqlstore"
)

type Config struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port" validate:"omitempty,min=1,max=65535"`
	DBName   string `toml:"db_name"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	SSLMode  string `toml:"ssl_mode"`
}

type Storage struct {
	*sqlstore.Store
}

func New(ctx context.Context, config Config, log *logrus.Logger) (*Storage, error) {
	db, err := sql.Open("postgres", NewURLConnectionString(config))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	if err := migrate.UpPostgres(db); err != nil {
		return nil, fmt.Errorf("migrating: %w", err)
	}
	return &Storage{
		Store: sqlstore.New(db, queries{}, log.WithField("from", "postgres")),
	}, nil
}

func NewURLConnectionString(config Config) string {
	v := make(url.Values)
	if config.SSLMode != "" {
		v.Set("sslmode", config.SSLMode)
	}
	u := url.URL{
		Scheme:   "postgres",
		Host:     config.Host + ":" + strconv.Itoa(config.Port),
		Path:     config.DBName,
		User:     url.UserPassword(config.Username, config.Password),
		RawQuery: v.Encode(),
	}
	return u.String()
}
