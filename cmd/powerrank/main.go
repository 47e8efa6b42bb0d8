package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/goserg/powerrank/internal/cache/mem"
	"github.com/goserg/powerrank/internal/compare"
	"github.com/goserg/powerrank/internal/config"
	"github.com/goserg/powerrank/internal/elo"
	"github.com/goserg/powerrank/internal/glicko"
	"github.com/goserg/powerrank/internal/logger"
	"github.com/goserg/powerrank/internal/service"
	"github.com/goserg/powerrank/internal/storage"
	"github.com/goserg/powerrank/internal/storage/postgres"
	"github.com/goserg/powerrank/internal/storage/sqlite"
	"github.com/goserg/powerrank/internal/tgbot"
	"github.com/goserg/powerrank/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	var (
		configDir   string
		migrateOnly bool
	)
	flag.StringVar(&configDir, "config", "configs", "directory with server.toml and bot.toml")
	flag.BoolVar(&migrateOnly, "migrate", false, "apply storage migrations and exit")
	flag.Parse()

	cfg, err := config.New(configDir)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.LogLevel)
	if cfg.Server.Debug {
		log.SetLevel(logrus.TraceLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := newStorage(ctx, cfg.Storage, log)
	if err != nil {
		return err
	}
	defer st.Close()
	if migrateOnly {
		log.Info("migrations applied")
		return nil
	}

	svc := service.New(
		st,
		mem.New(),
		newRatingSource(cfg.Compare),
		compare.New(cfg.Compare.InactivePrefix),
		cfg.Enhanced,
		log,
	)
	if err := svc.Load(ctx); err != nil {
		return err
	}

	if cfg.TgBot.Enabled {
		bot, err := tgbot.New(svc, cfg, log)
		if err != nil {
			return err
		}
		go bot.Run()
		defer bot.Stop()
	}

	server := web.New(svc, cfg.Server, log)
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve()
	}()
	log.WithField("port", cfg.Server.Port).Info("server started")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		return server.Shutdown()
	}
}

func newStorage(ctx context.Context, cfg config.Storage, log *logrus.Logger) (storage.SnapshotStorage, error) {
	switch cfg.Driver {
	case config.DriverSqlite:
		return sqlite.New(cfg.SqliteFile, log)
	case config.DriverPostgres:
		return postgres.New(ctx, cfg.Postgres, log)
	}
	return nil, errors.New("unknown storage driver " + cfg.Driver)
}

func newRatingSource(cfg config.Compare) service.RatingSource {
	if cfg.RatingSource == config.SourceGlicko2 {
		return glicko.New()
	}
	return elo.New(cfg.EloInitial, cfg.EloK)
}
