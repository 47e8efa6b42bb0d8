package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/goserg/powerrank/internal/config"
	"github.com/goserg/powerrank/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

// run prints an api token for the write endpoints, signed with the secret
// from server.toml.
func run() error {
	var (
		configDir string
		subject   string
		ttl       time.Duration
	)
	flag.StringVar(&configDir, "config", "configs", "directory with server.toml")
	flag.StringVar(&subject, "subject", "cli", "token subject")
	flag.DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if ttl <= 0 {
		return errors.New("ttl must be positive")
	}
	cfg, err := config.New(configDir)
	if err != nil {
		return err
	}
	token, err := web.GenerateToken(cfg.Server.ApiTokenSecret, subject, ttl)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
