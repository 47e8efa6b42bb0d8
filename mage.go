//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	jetOutput        = "gen"
	sqliteJetFile    = "powerrank.sqlite"
	postgresDSNEnv   = "POWERRANK_PG_DSN"
	serverBin        = "./bin/powerrank"
	tokengenBin      = "./bin/tokengen"
	migrationsIgnore = "schema_migrations"
)

const (
	toolsDir     = "tools/"
	toolsModfile = toolsDir + "go.mod"
	toolsBinDir  = toolsDir + "bin/"
	lintTool     = toolsBinDir + "golangci-lint"
	jetTool      = toolsBinDir + "jet"
)

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds server and token generator binaries
func Build() error {
	mg.Deps(goModDownload)
	if err := sh.Run("go", "build", "-o", serverBin, "./cmd/powerrank"); err != nil {
		return err
	}
	return sh.Run("go", "build", "-o", tokengenBin, "./cmd/tokengen")
}

// Run starts server with configs/
func Run() error {
	mg.Deps(Build)
	return sh.Run(serverBin, "-config", "configs")
}

// Token prints an api token for the import endpoint
func Token() error {
	mg.Deps(Build)
	return sh.RunV(tokengenBin, "-config", "configs")
}

// GenJet regenerates gen/ from the migrated sqlite schema, and from postgres
// when POWERRANK_PG_DSN is set.
func GenJet() error {
	mg.Deps(Build, buildJetTool)
	if err := sh.Run(serverBin, "-config", "configs", "-migrate"); err != nil {
		return err
	}
	if err := sh.Run(jetTool,
		"-source", "sqlite",
		"-dsn", sqliteJetFile,
		"-path", jetOutput,
		"-ignore-tables", migrationsIgnore,
	); err != nil {
		return err
	}
	dsn := os.Getenv(postgresDSNEnv)
	if dsn == "" {
		return nil
	}
	return sh.Run(jetTool,
		"-dsn", dsn,
		"-schema", "public",
		"-path", jetOutput,
		"-ignore-tables", migrationsIgnore,
	)
}

func buildJetTool() error {
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "build", "-modfile", toolsModfile, "-o", jetTool, "github.com/go-jet/jet/v2/cmd/jet")
}

// Test runs unit tests
func Test() error {
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "test", "./...")
}

func Lint() error {
	mg.Deps(buildLintTool)
	return sh.Run(lintTool, "run", "./...")
}

func buildLintTool() error {
	return sh.Run(
		"go", "build",
		"-modfile", toolsModfile,
		"-o", lintTool,
		"github.com/golangci/golangci-lint/cmd/golangci-lint",
	)
}
