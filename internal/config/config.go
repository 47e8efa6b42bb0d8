package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/goserg/powerrank/internal/domain"
	"github.com/goserg/powerrank/internal/storage/postgres"
)

const (
	DriverSqlite   = "sqlite3"
	DriverPostgres = "postgres"

	SourceElo     = "elo"
	SourceGlicko2 = "glicko2"
)

type TgBot struct {
	Enabled          bool    `toml:"enabled"`
	TelegramApiToken string  `toml:"telegram_apitoken" validate:"required_if=Enabled true"`
	Admins           []int64 `toml:"admins"`
}

type Server struct {
	Host           string `toml:"host"`
	Port           int    `toml:"port" validate:"min=1,max=65535"`
	Debug          bool   `toml:"debug_mode"`
	LogLevel       string `toml:"log_level" validate:"omitempty,oneof=trace debug info warn error"`
	ApiTokenSecret string `toml:"api_token_secret"`
}

type Storage struct {
	Driver     string          `toml:"driver" validate:"oneof=sqlite3 postgres"`
	SqliteFile string          `toml:"sqlite_file" validate:"required_if=Driver sqlite3"`
	Postgres   postgres.Config `toml:"postgres"`
}

type Compare struct {
	InactivePrefix string  `toml:"inactive_prefix"`
	RatingSource   string  `toml:"rating_source" validate:"oneof=elo glicko2"`
	EloInitial     float64 `toml:"elo_initial" validate:"gt=0"`
	EloK           float64 `toml:"elo_k" validate:"gt=0"`
}

type ServerFile struct {
	Server   Server                `toml:"server"`
	Storage  Storage               `toml:"storage"`
	Enhanced domain.EnhancedConfig `toml:"enhanced"`
	Compare  Compare               `toml:"compare"`
}

type Config struct {
	TgBot    TgBot
	Server   Server
	Storage  Storage
	Enhanced domain.EnhancedConfig
	Compare  Compare
}

func defaults() ServerFile {
	return ServerFile{
		Server: Server{
			Host:     "localhost",
			Port:     3000,
			LogLevel: "info",
		},
		Storage: Storage{
			Driver:     DriverSqlite,
			SqliteFile: "powerrank.sqlite",
		},
		Enhanced: domain.DefaultEnhancedConfig(),
		Compare: Compare{
			InactivePrefix: "zg.",
			RatingSource:   SourceElo,
			EloInitial:     1500,
			EloK:           20,
		},
	}
}

// New reads server.toml and bot.toml from dir. Keys missing from the files
// keep their defaults.
func New(dir string) (Config, error) {
	tgBotCfg := TgBot{}
	_, err := toml.DecodeFile(filepath.Join(dir, "bot.toml"), &tgBotCfg)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("bot config: %w", err)
	}
	token := os.Getenv("TELEGRAM_APITOKEN")
	if token != "" {
		tgBotCfg.TelegramApiToken = token
	}

	serverCfg := defaults()
	_, err = toml.DecodeFile(filepath.Join(dir, "server.toml"), &serverCfg)
	if err != nil {
		return Config{}, fmt.Errorf("server config: %w", err)
	}

	cfg := Config{
		TgBot:    tgBotCfg,
		Server:   serverCfg.Server,
		Storage:  serverCfg.Storage,
		Enhanced: serverCfg.Enhanced,
		Compare:  serverCfg.Compare,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	for _, section := range []any{c.TgBot, c.Server, c.Storage, c.Enhanced, c.Compare} {
		err := validate.Struct(section)
		if err == nil {
			continue
		}
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			errs = append(errs, fmt.Errorf("%s: failed %q check", fe.Namespace(), fe.Tag()))
		}
	}
	return errors.Join(errs...)
}
