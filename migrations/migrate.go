// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the schema for both supported drivers and
// applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// Driver names accepted by Migrate. They match the database/sql driver names.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

var (
	ErrNilDB             = errors.New("db is nil")
	ErrUnsupportedDriver = errors.New("unsupported driver")
)

// Migrate applies every pending migration for driver. Goose progress lines
// are forwarded to log; a nil log silences them.
func Migrate(db *sql.DB, driver string, log *logger.Logger) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	dir, dialect, err := dialectFor(driver)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	goose.SetBaseFS(embedMigrations)
	if log == nil {
		goose.SetLogger(goose.NopLogger())
	} else {
		goose.SetLogger(gooseLogger{log})
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func dialectFor(driver string) (dir, dialect string, err error) {
	switch driver {
	case DriverSQLite:
		return "sqlite", "sqlite3", nil
	case DriverPostgres:
		return "postgres", "postgres", nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// gooseLogger adapts the zerolog wrapper to goose.Logger.
type gooseLogger struct {
	log *logger.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Info().Str("func", "migrations.Migrate").Msgf(format, v...)
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Fatal().Str("func", "migrations.Migrate").Msgf(format, v...)
}
